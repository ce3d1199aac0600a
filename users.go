package linear

import (
	"context"
	"slices"
)

// UsersService provides access to Linear users.
type UsersService struct {
	transport Transport
}

type userConnection struct {
	Nodes    []User   `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

// Get fetches a single user by ID.
func (s *UsersService) Get(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		User *User `json:"user"`
	}
	if err := s.transport.Execute(ctx, queryUser, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.User == nil {
		return nil, &NotFoundError{Resource: "user", ID: id}
	}
	return data.User, nil
}

// UserListOptions filters List. TeamID is applied client-side since the
// users query has no team filter.
type UserListOptions struct {
	TeamID          string
	IncludeArchived bool
	IncludeDisabled bool

	// PageSize sets the per-page fetch size, defaultPageSize when zero.
	PageSize int
}

// List returns all users matching opts, fetching every page.
func (s *UsersService) List(ctx context.Context, opts UserListOptions) ([]User, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	variables := map[string]interface{}{
		"first":           pageSize,
		"after":           nil,
		"includeArchived": opts.IncludeArchived,
		"includeDisabled": opts.IncludeDisabled,
	}

	var all []User
	for {
		var data struct {
			Users userConnection `json:"users"`
		}
		if err := s.transport.Execute(ctx, queryUsers, variables, &data); err != nil {
			return nil, err
		}
		for _, user := range data.Users.Nodes {
			if opts.TeamID != "" && !slices.Contains(user.TeamIDs(), opts.TeamID) {
				continue
			}
			all = append(all, user)
		}

		page := data.Users.PageInfo
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		variables["after"] = *page.EndCursor
	}
	return all, nil
}

// Me returns the authenticated user.
func (s *UsersService) Me(ctx context.Context) (*User, error) {
	var data struct {
		Viewer *User `json:"viewer"`
	}
	if err := s.transport.Execute(ctx, queryMe, nil, &data); err != nil {
		return nil, err
	}
	if data.Viewer == nil {
		return nil, &OperationError{Resource: "viewer", Op: "resolve"}
	}
	return data.Viewer, nil
}
