package linear

import "context"

// CommentsService provides access to comments on Linear issues.
type CommentsService struct {
	transport Transport
}

type commentConnection struct {
	Nodes    []Comment `json:"nodes"`
	PageInfo PageInfo  `json:"pageInfo"`
}

// Get fetches a single comment by ID.
func (s *CommentsService) Get(ctx context.Context, id string) (*Comment, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		Comment *Comment `json:"comment"`
	}
	if err := s.transport.Execute(ctx, queryComment, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Comment == nil {
		return nil, &NotFoundError{Resource: "comment", ID: id}
	}
	return data.Comment, nil
}

// CommentCreateInput carries the fields for Create. IssueID and Body are
// required; ParentID turns the comment into a reply.
type CommentCreateInput struct {
	IssueID  string
	Body     string
	ParentID string
}

// Create posts a new comment on an issue.
func (s *CommentsService) Create(ctx context.Context, input CommentCreateInput) (*Comment, error) {
	if input.IssueID == "" {
		return nil, &ValidationError{Field: "issue id", Reason: "must not be empty"}
	}
	if input.Body == "" {
		return nil, &ValidationError{Field: "body", Reason: "must not be empty"}
	}

	fields := map[string]interface{}{
		"issueId": input.IssueID,
		"body":    input.Body,
	}
	if input.ParentID != "" {
		fields["parentId"] = input.ParentID
	}

	var data struct {
		CommentCreate struct {
			Success bool     `json:"success"`
			Comment *Comment `json:"comment"`
		} `json:"commentCreate"`
	}
	if err := s.transport.Execute(ctx, mutationCommentCreate, map[string]interface{}{"input": fields}, &data); err != nil {
		return nil, err
	}
	if !data.CommentCreate.Success || data.CommentCreate.Comment == nil {
		return nil, &OperationError{Resource: "comment", Op: "create"}
	}
	return data.CommentCreate.Comment, nil
}

// Update replaces the body of an existing comment.
func (s *CommentsService) Update(ctx context.Context, id, body string) (*Comment, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if body == "" {
		return nil, &ValidationError{Field: "body", Reason: "must not be empty"}
	}

	variables := map[string]interface{}{
		"id":    id,
		"input": map[string]interface{}{"body": body},
	}

	var data struct {
		CommentUpdate struct {
			Success bool     `json:"success"`
			Comment *Comment `json:"comment"`
		} `json:"commentUpdate"`
	}
	if err := s.transport.Execute(ctx, mutationCommentUpdate, variables, &data); err != nil {
		return nil, err
	}
	if !data.CommentUpdate.Success || data.CommentUpdate.Comment == nil {
		return nil, &OperationError{Resource: "comment", Op: "update", ID: id}
	}
	return data.CommentUpdate.Comment, nil
}

// Delete deletes a comment.
func (s *CommentsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		CommentDelete struct {
			Success bool `json:"success"`
		} `json:"commentDelete"`
	}
	if err := s.transport.Execute(ctx, mutationCommentDelete, map[string]interface{}{"id": id}, &data); err != nil {
		return err
	}
	if !data.CommentDelete.Success {
		return &OperationError{Resource: "comment", Op: "delete", ID: id}
	}
	return nil
}

// CommentListOptions controls ListForIssue.
type CommentListOptions struct {
	// PageSize sets the per-page fetch size, defaultPageSize when zero.
	PageSize int
}

// ListForIssue returns all comments on an issue in server order, fetching
// every page. A nonexistent issue yields a NotFoundError.
func (s *CommentsService) ListForIssue(ctx context.Context, issueID string, opts CommentListOptions) ([]Comment, error) {
	if issueID == "" {
		return nil, &ValidationError{Field: "issue id", Reason: "must not be empty"}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	variables := map[string]interface{}{
		"issueId": issueID,
		"first":   pageSize,
		"after":   nil,
	}

	var all []Comment
	for {
		var data struct {
			Issue *struct {
				Comments commentConnection `json:"comments"`
			} `json:"issue"`
		}
		if err := s.transport.Execute(ctx, queryIssueComments, variables, &data); err != nil {
			return nil, err
		}
		if data.Issue == nil {
			return nil, &NotFoundError{Resource: "issue", ID: issueID}
		}
		all = append(all, data.Issue.Comments.Nodes...)

		page := data.Issue.Comments.PageInfo
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		variables["after"] = *page.EndCursor
	}
	return all, nil
}
