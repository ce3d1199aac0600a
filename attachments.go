package linear

import "context"

// AttachmentsService provides access to attachments, the links Linear pins
// to an issue (pull requests, documents, plain URLs).
type AttachmentsService struct {
	transport Transport
}

type attachmentConnection struct {
	Nodes    []Attachment `json:"nodes"`
	PageInfo PageInfo     `json:"pageInfo"`
}

// Get fetches a single attachment by ID.
func (s *AttachmentsService) Get(ctx context.Context, id string) (*Attachment, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		Attachment *Attachment `json:"attachment"`
	}
	if err := s.transport.Execute(ctx, queryAttachment, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.Attachment == nil {
		return nil, &NotFoundError{Resource: "attachment", ID: id}
	}
	return data.Attachment, nil
}

// AttachmentCreateInput carries the fields for CreateURL and
// CreateFromSource. IssueID and URL are required. Title defaults to the URL
// for plain links and is mandatory for every other source. SourceType
// refines the source, e.g. "pullRequest" for a SourceGitHub attachment.
type AttachmentCreateInput struct {
	IssueID    string
	URL        string
	Title      string
	Subtitle   string
	SourceType string
	Metadata   map[string]interface{}
}

// CreateURL attaches a plain link to an issue. The attachment is tagged with
// the generic "url" source.
func (s *AttachmentsService) CreateURL(ctx context.Context, input AttachmentCreateInput) (*Attachment, error) {
	if input.IssueID == "" {
		return nil, &ValidationError{Field: "issue id", Reason: "must not be empty"}
	}
	if input.URL == "" {
		return nil, &ValidationError{Field: "url", Reason: "must not be empty"}
	}

	title := input.Title
	if title == "" {
		title = input.URL
	}

	metadata := make(map[string]interface{}, len(input.Metadata)+1)
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	metadata["source"] = string(SourceURL)

	fields := map[string]interface{}{
		"issueId":  input.IssueID,
		"url":      input.URL,
		"title":    title,
		"metadata": metadata,
	}
	if input.Subtitle != "" {
		fields["subtitle"] = input.Subtitle
	}
	return s.create(ctx, fields)
}

// CreateFromSource attaches a link tagged with a known integration source
// such as SourceGitHub or SourceFigma. SourceURL delegates to CreateURL;
// every other source requires an explicit title.
func (s *AttachmentsService) CreateFromSource(ctx context.Context, source AttachmentSource, input AttachmentCreateInput) (*Attachment, error) {
	if source == SourceURL {
		return s.CreateURL(ctx, input)
	}
	if input.IssueID == "" {
		return nil, &ValidationError{Field: "issue id", Reason: "must not be empty"}
	}
	if input.URL == "" {
		return nil, &ValidationError{Field: "url", Reason: "must not be empty"}
	}
	if input.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty for source " + string(source)}
	}

	metadata := make(map[string]interface{}, len(input.Metadata)+2)
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	metadata["source"] = string(source)
	if input.SourceType != "" {
		metadata["sourceType"] = input.SourceType
	}

	fields := map[string]interface{}{
		"issueId":  input.IssueID,
		"url":      input.URL,
		"title":    input.Title,
		"metadata": metadata,
	}
	if input.Subtitle != "" {
		fields["subtitle"] = input.Subtitle
	}
	return s.create(ctx, fields)
}

func (s *AttachmentsService) create(ctx context.Context, fields map[string]interface{}) (*Attachment, error) {
	var data struct {
		AttachmentCreate struct {
			Success    bool        `json:"success"`
			Attachment *Attachment `json:"attachment"`
		} `json:"attachmentCreate"`
	}
	if err := s.transport.Execute(ctx, mutationAttachmentCreate, map[string]interface{}{"input": fields}, &data); err != nil {
		return nil, err
	}
	if !data.AttachmentCreate.Success || data.AttachmentCreate.Attachment == nil {
		return nil, &OperationError{Resource: "attachment", Op: "create"}
	}
	return data.AttachmentCreate.Attachment, nil
}

// Delete removes an attachment from its issue.
func (s *AttachmentsService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		AttachmentDelete struct {
			Success     bool   `json:"success"`
			DestroyedID string `json:"_destroyedId"`
		} `json:"attachmentDelete"`
	}
	if err := s.transport.Execute(ctx, mutationAttachmentDelete, map[string]interface{}{"id": id}, &data); err != nil {
		return err
	}
	if !data.AttachmentDelete.Success {
		return &OperationError{Resource: "attachment", Op: "delete", ID: id}
	}
	return nil
}

// AttachmentListOptions controls ListForIssue.
type AttachmentListOptions struct {
	// PageSize sets the per-page fetch size, defaultPageSize when zero.
	PageSize int
}

// ListForIssue returns every attachment on an issue, fetching all pages. A
// nonexistent issue yields a NotFoundError.
func (s *AttachmentsService) ListForIssue(ctx context.Context, issueID string, opts AttachmentListOptions) ([]Attachment, error) {
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

	var all []Attachment
	for {
		var data struct {
			Issue *struct {
				Attachments attachmentConnection `json:"attachments"`
			} `json:"issue"`
		}
		if err := s.transport.Execute(ctx, queryIssueAttachments, variables, &data); err != nil {
			return nil, err
		}
		if data.Issue == nil {
			return nil, &NotFoundError{Resource: "issue", ID: issueID}
		}
		all = append(all, data.Issue.Attachments.Nodes...)

		page := data.Issue.Attachments.PageInfo
		if !page.HasNextPage || page.EndCursor == nil {
			break
		}
		variables["after"] = *page.EndCursor
	}
	return all, nil
}
