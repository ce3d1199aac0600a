package linear

import (
	"encoding/json"
	"time"
)

// Entities are plain DTOs mirroring the subset of Linear's schema this
// library requests. They are rebuilt on every fetch; the remote system
// stays authoritative and nothing is cached or mutated locally.

// IssuePriority is Linear's priority scale. Zero means no priority set;
// one is the most urgent.
type IssuePriority int

const (
	PriorityNone   IssuePriority = 0
	PriorityUrgent IssuePriority = 1
	PriorityHigh   IssuePriority = 2
	PriorityMedium IssuePriority = 3
	PriorityLow    IssuePriority = 4
)

func (p IssuePriority) String() string {
	switch p {
	case PriorityNone:
		return "none"
	case PriorityUrgent:
		return "urgent"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// WorkflowStateType categorizes a workflow state.
type WorkflowStateType string

const (
	StateTriage    WorkflowStateType = "triage"
	StateBacklog   WorkflowStateType = "backlog"
	StateUnstarted WorkflowStateType = "unstarted"
	StateStarted   WorkflowStateType = "started"
	StateCompleted WorkflowStateType = "completed"
	StateCanceled  WorkflowStateType = "canceled"
	StateDuplicate WorkflowStateType = "duplicate"
)

// AttachmentSource identifies where an attachment originates.
type AttachmentSource string

const (
	SourceGDrive  AttachmentSource = "gdrive"
	SourceFigma   AttachmentSource = "figma"
	SourceGitHub  AttachmentSource = "github"
	SourceGitLab  AttachmentSource = "gitlab"
	SourceURL     AttachmentSource = "url"
	SourceGeneric AttachmentSource = "generic"
)

// PageInfo carries the cursor state of a paginated connection.
type PageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// EntityRef is a reference to another entity by identifier only.
type EntityRef struct {
	ID string `json:"id"`
}

// RefConnection is a connection whose nodes carry identifiers only.
type RefConnection struct {
	Nodes []EntityRef `json:"nodes"`
}

// WorkflowState is one state of a team's issue workflow.
type WorkflowState struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Type        WorkflowStateType `json:"type"`
	Color       string            `json:"color"`
	Position    float64           `json:"position"`
	Description string            `json:"description"`
	Team        *Team             `json:"team"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
	ArchivedAt  *time.Time        `json:"archivedAt"`
}

// Team is a Linear team.
type Team struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Key               string         `json:"key"`
	Description       string         `json:"description"`
	Organization      *EntityRef     `json:"organization"`
	Private           bool           `json:"private"`
	DefaultIssueState *WorkflowState `json:"defaultIssueState"`
	AutoArchivePeriod float64        `json:"autoArchivePeriod"`
	AutoClosePeriod   float64        `json:"autoClosePeriod"`
	CyclesEnabled     bool           `json:"cyclesEnabled"`
	CycleDuration     float64        `json:"cycleDuration"`
	CycleCooldownTime float64        `json:"cycleCooldownTime"`
	TriageEnabled     bool           `json:"triageEnabled"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
	ArchivedAt        *time.Time     `json:"archivedAt"`
}

// User is a Linear user. Read-only from the client's perspective.
type User struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	DisplayName  string        `json:"displayName"`
	Email        string        `json:"email"`
	AvatarURL    string        `json:"avatarUrl"`
	Organization *EntityRef    `json:"organization"`
	Active       bool          `json:"active"`
	LastSeen     *time.Time    `json:"lastSeen"`
	Timezone     string        `json:"timezone"`
	IsMe         bool          `json:"isMe"`
	Teams        RefConnection `json:"teams"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
	ArchivedAt   *time.Time    `json:"archivedAt"`
}

// TeamIDs returns the identifiers of the teams the user belongs to.
func (u *User) TeamIDs() []string {
	ids := make([]string, 0, len(u.Teams.Nodes))
	for _, t := range u.Teams.Nodes {
		ids = append(ids, t.ID)
	}
	return ids
}

// Issue is a Linear issue.
type Issue struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	State       *WorkflowState `json:"state"`
	Priority    IssuePriority  `json:"priority"`
	Number      int            `json:"number"`
	Identifier  string         `json:"identifier"`
	Team        *Team          `json:"team"`
	Assignee    *User          `json:"assignee"`
	Creator     *User          `json:"creator"`
	// DueDate is a plain YYYY-MM-DD date as served by the API.
	DueDate     string        `json:"dueDate"`
	StartedAt   *time.Time    `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt"`
	CanceledAt  *time.Time    `json:"canceledAt"`
	LabelIDs    []string      `json:"labelIds"`
	Parent      *EntityRef    `json:"parent"`
	Children    RefConnection `json:"children"`
	URL         string        `json:"url"`
	BranchName  string        `json:"branchName"`
	Estimate    *float64      `json:"estimate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	ArchivedAt  *time.Time    `json:"archivedAt"`
}

// IsCompleted reports whether the issue sits in a completed workflow state.
func (i *Issue) IsCompleted() bool {
	return i.State != nil && i.State.Type == StateCompleted
}

// IsCanceled reports whether the issue sits in a canceled workflow state.
func (i *Issue) IsCanceled() bool {
	return i.State != nil && i.State.Type == StateCanceled
}

// IsArchived reports whether the issue has been archived.
func (i *Issue) IsArchived() bool {
	return i.ArchivedAt != nil
}

// IsActive reports whether the issue is neither completed, canceled nor
// archived.
func (i *Issue) IsActive() bool {
	return !i.IsCompleted() && !i.IsCanceled() && !i.IsArchived()
}

// Comment is a comment on an issue.
type Comment struct {
	ID        string        `json:"id"`
	Body      string        `json:"body"`
	Issue     *EntityRef    `json:"issue"`
	User      *EntityRef    `json:"user"`
	Parent    *EntityRef    `json:"parent"`
	Children  RefConnection `json:"children"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// ParentID returns the parent comment's identifier, empty for top-level
// comments.
func (c *Comment) ParentID() string {
	if c.Parent == nil {
		return ""
	}
	return c.Parent.ID
}

// Attachment is an external resource linked to an issue.
type Attachment struct {
	ID            string                 `json:"id"`
	Title         string                 `json:"title"`
	Subtitle      string                 `json:"subtitle"`
	Source        AttachmentSource       `json:"source"`
	SourceType    string                 `json:"sourceType"`
	URL           string                 `json:"url"`
	Issue         *EntityRef             `json:"issue"`
	Creator       *EntityRef             `json:"creator"`
	Metadata      map[string]interface{} `json:"metadata"`
	GroupBySource bool                   `json:"groupBySource"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
	ArchivedAt    *time.Time             `json:"archivedAt"`
}

type attachmentAlias Attachment

// UnmarshalJSON falls back to metadata.source when the source field itself
// is null, which is how attachments created through this library record
// their origin.
func (a *Attachment) UnmarshalJSON(data []byte) error {
	var alias attachmentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = Attachment(alias)
	if a.Source == "" {
		if raw, ok := a.Metadata["source"].(string); ok {
			a.Source = AttachmentSource(raw)
		}
	}
	return nil
}

// IsURL reports whether the attachment is a plain link.
func (a *Attachment) IsURL() bool {
	return a.Source == SourceURL
}

// IsFile reports whether the attachment is an uploaded file.
func (a *Attachment) IsFile() bool {
	return a.Source == SourceGeneric
}
