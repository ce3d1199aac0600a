package linear

import "context"

// IssuesService provides access to Linear issues.
type IssuesService struct {
	transport Transport
}

type issueConnection struct {
	Nodes    []Issue  `json:"nodes"`
	PageInfo PageInfo `json:"pageInfo"`
}

// Get fetches a single issue by ID or by identifier such as "ENG-123".
func (s *IssuesService) Get(ctx context.Context, id string) (*Issue, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		Issue *Issue `json:"issue"`
	}
	if err := s.transport.Execute(ctx, queryIssue, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Issue == nil {
		return nil, &NotFoundError{Resource: "issue", ID: id}
	}
	return data.Issue, nil
}

// IssueListOptions filters List. Zero values mean no filter; PriorityNone
// cannot be filtered on, matching the API's filter semantics.
type IssueListOptions struct {
	TeamID          string
	AssigneeID      string
	CreatorID       string
	State           WorkflowStateType
	Priority        IssuePriority
	IncludeArchived bool

	// PageSize sets the per-page fetch size, defaultPageSize when zero.
	PageSize int
}

// List returns all issues matching opts in server order, fetching every
// page. Each page is one transport round trip.
func (s *IssuesService) List(ctx context.Context, opts IssueListOptions) ([]Issue, error) {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	variables := map[string]interface{}{
		"first":  pageSize,
		"after":  nil,
		"filter": buildIssueFilter(opts),
	}

	var all []Issue
	for {
		var data struct {
			Issues issueConnection `json:"issues"`
		}
		if err := s.transport.Execute(ctx, queryIssues, variables, &data); err != nil {
			return nil, err
		}
		all = append(all, data.Issues.Nodes...)

		page := data.Issues.PageInfo
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		variables["after"] = *page.EndCursor
	}
	return all, nil
}

func buildIssueFilter(opts IssueListOptions) map[string]interface{} {
	filter := map[string]interface{}{}
	if opts.TeamID != "" {
		filter["team"] = map[string]interface{}{"id": map[string]interface{}{"eq": opts.TeamID}}
	}
	if opts.AssigneeID != "" {
		filter["assignee"] = map[string]interface{}{"id": map[string]interface{}{"eq": opts.AssigneeID}}
	}
	if opts.CreatorID != "" {
		filter["creator"] = map[string]interface{}{"id": map[string]interface{}{"eq": opts.CreatorID}}
	}
	if opts.State != "" {
		filter["state"] = map[string]interface{}{"type": map[string]interface{}{"eq": string(opts.State)}}
	}
	if opts.Priority != PriorityNone {
		filter["priority"] = map[string]interface{}{"eq": int(opts.Priority)}
	}
	if !opts.IncludeArchived {
		filter["archivedAt"] = map[string]interface{}{"null": true}
	}
	if len(filter) == 0 {
		return nil
	}
	return filter
}

// IssueCreateInput carries the fields for Create. Title and TeamID are
// required; the remaining fields are sent only when set.
type IssueCreateInput struct {
	Title       string
	TeamID      string
	Description string
	StateID     string
	Priority    IssuePriority
	AssigneeID  string
	ParentID    string
	Estimate    *float64
	DueDate     string
	LabelIDs    []string
}

func (in IssueCreateInput) variables() map[string]interface{} {
	input := map[string]interface{}{
		"title":  in.Title,
		"teamId": in.TeamID,
	}
	if in.Description != "" {
		input["description"] = in.Description
	}
	if in.StateID != "" {
		input["stateId"] = in.StateID
	}
	if in.Priority != PriorityNone {
		input["priority"] = int(in.Priority)
	}
	if in.AssigneeID != "" {
		input["assigneeId"] = in.AssigneeID
	}
	if in.ParentID != "" {
		input["parentId"] = in.ParentID
	}
	if in.Estimate != nil {
		input["estimate"] = *in.Estimate
	}
	if in.DueDate != "" {
		input["dueDate"] = in.DueDate
	}
	if len(in.LabelIDs) > 0 {
		input["labelIds"] = in.LabelIDs
	}
	return map[string]interface{}{"input": input}
}

// Create creates a new issue and returns it with its server-assigned
// identifiers.
func (s *IssuesService) Create(ctx context.Context, input IssueCreateInput) (*Issue, error) {
	if input.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if input.TeamID == "" {
		return nil, &ValidationError{Field: "team id", Reason: "must not be empty"}
	}

	var data struct {
		IssueCreate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueCreate"`
	}
	if err := s.transport.Execute(ctx, mutationIssueCreate, input.variables(), &data); err != nil {
		return nil, err
	}
	if !data.IssueCreate.Success || data.IssueCreate.Issue == nil {
		return nil, &OperationError{Resource: "issue", Op: "create"}
	}
	return data.IssueCreate.Issue, nil
}

// IssueUpdateInput patches an issue. Nil fields are left untouched; a
// non-nil LabelIDs replaces the label set.
type IssueUpdateInput struct {
	Title       *string
	Description *string
	StateID     *string
	Priority    *IssuePriority
	AssigneeID  *string
	ParentID    *string
	Estimate    *float64
	DueDate     *string
	LabelIDs    []string
}

func (in IssueUpdateInput) variables(id string) map[string]interface{} {
	input := map[string]interface{}{}
	if in.Title != nil {
		input["title"] = *in.Title
	}
	if in.Description != nil {
		input["description"] = *in.Description
	}
	if in.StateID != nil {
		input["stateId"] = *in.StateID
	}
	if in.Priority != nil {
		input["priority"] = int(*in.Priority)
	}
	if in.AssigneeID != nil {
		input["assigneeId"] = *in.AssigneeID
	}
	if in.ParentID != nil {
		input["parentId"] = *in.ParentID
	}
	if in.Estimate != nil {
		input["estimate"] = *in.Estimate
	}
	if in.DueDate != nil {
		input["dueDate"] = *in.DueDate
	}
	if in.LabelIDs != nil {
		input["labelIds"] = in.LabelIDs
	}
	return map[string]interface{}{"id": id, "input": input}
}

// Update patches the supplied fields of an issue and returns the updated
// entity.
func (s *IssuesService) Update(ctx context.Context, id string, input IssueUpdateInput) (*Issue, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		IssueUpdate struct {
			Success bool   `json:"success"`
			Issue   *Issue `json:"issue"`
		} `json:"issueUpdate"`
	}
	if err := s.transport.Execute(ctx, mutationIssueUpdate, input.variables(id), &data); err != nil {
		return nil, err
	}
	if !data.IssueUpdate.Success || data.IssueUpdate.Issue == nil {
		return nil, &OperationError{Resource: "issue", Op: "update", ID: id}
	}
	return data.IssueUpdate.Issue, nil
}

// Delete deletes an issue.
func (s *IssuesService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		IssueDelete struct {
			Success bool `json:"success"`
		} `json:"issueDelete"`
	}
	if err := s.transport.Execute(ctx, mutationIssueDelete, map[string]interface{}{"id": id}, &data); err != nil {
		return err
	}
	if !data.IssueDelete.Success {
		return &OperationError{Resource: "issue", Op: "delete", ID: id}
	}
	return nil
}
