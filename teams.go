package linear

import "context"

// TeamsService provides access to Linear teams.
type TeamsService struct {
	transport Transport
}

type teamConnection struct {
	Nodes    []Team   `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

// Get fetches a single team by ID or key.
func (s *TeamsService) Get(ctx context.Context, id string) (*Team, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		Team *Team `json:"team"`
	}
	if err := s.transport.Execute(ctx, queryTeam, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Team == nil {
		return nil, &NotFoundError{Resource: "team", ID: id}
	}
	return data.Team, nil
}

// TeamListOptions controls List.
type TeamListOptions struct {
	IncludeArchived bool

	// PageSize sets the per-page fetch size, defaultPageSize when zero.
	PageSize int
}

// List returns all teams, fetching every page.
func (s *TeamsService) List(ctx context.Context, opts TeamListOptions) ([]Team, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	variables := map[string]interface{}{
		"first":           pageSize,
		"after":           nil,
		"includeArchived": opts.IncludeArchived,
	}

	var all []Team
	for {
		var data struct {
			Teams teamConnection `json:"teams"`
		}
		if err := s.transport.Execute(ctx, queryTeams, variables, &data); err != nil {
			return nil, err
		}
		all = append(all, data.Teams.Nodes...)

		page := data.Teams.PageInfo
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		variables["after"] = *page.EndCursor
	}
	return all, nil
}
