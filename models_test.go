package linear

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue_StateHelpers(t *testing.T) {
	archived := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		issue         Issue
		wantCompleted bool
		wantCanceled  bool
		wantArchived  bool
		wantActive    bool
	}{
		{
			name:       "started issue is active",
			issue:      Issue{State: &WorkflowState{Type: StateStarted}},
			wantActive: true,
		},
		{
			name:          "completed issue",
			issue:         Issue{State: &WorkflowState{Type: StateCompleted}},
			wantCompleted: true,
		},
		{
			name:         "canceled issue",
			issue:        Issue{State: &WorkflowState{Type: StateCanceled}},
			wantCanceled: true,
		},
		{
			name:         "archived issue",
			issue:        Issue{State: &WorkflowState{Type: StateStarted}, ArchivedAt: &archived},
			wantArchived: true,
		},
		{
			name:       "no state",
			issue:      Issue{},
			wantActive: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCompleted, tt.issue.IsCompleted())
			assert.Equal(t, tt.wantCanceled, tt.issue.IsCanceled())
			assert.Equal(t, tt.wantArchived, tt.issue.IsArchived())
			assert.Equal(t, tt.wantActive, tt.issue.IsActive())
		})
	}
}

func TestUser_TeamIDs(t *testing.T) {
	user := User{
		Teams: RefConnection{Nodes: []EntityRef{{ID: "team-1"}, {ID: "team-2"}}},
	}
	assert.Equal(t, []string{"team-1", "team-2"}, user.TeamIDs())

	empty := User{}
	assert.Empty(t, empty.TeamIDs())
}

func TestComment_ParentID(t *testing.T) {
	reply := Comment{Parent: &EntityRef{ID: "comment-1"}}
	assert.Equal(t, "comment-1", reply.ParentID())

	topLevel := Comment{}
	assert.Equal(t, "", topLevel.ParentID())
}

func TestAttachment_UnmarshalJSON_SourceFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want AttachmentSource
	}{
		{
			name: "explicit source wins",
			raw:  `{"id": "att-1", "source": "figma", "metadata": {"source": "github"}}`,
			want: SourceFigma,
		},
		{
			name: "null source falls back to metadata",
			raw:  `{"id": "att-1", "source": null, "metadata": {"source": "github"}}`,
			want: SourceGitHub,
		},
		{
			name: "missing source falls back to metadata",
			raw:  `{"id": "att-1", "metadata": {"source": "url"}}`,
			want: SourceURL,
		},
		{
			name: "no source anywhere",
			raw:  `{"id": "att-1", "metadata": {"title": "doc"}}`,
			want: AttachmentSource(""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var att Attachment
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &att))
			assert.Equal(t, tt.want, att.Source)
		})
	}
}

func TestAttachment_SourceHelpers(t *testing.T) {
	link := Attachment{Source: SourceURL}
	assert.True(t, link.IsURL())
	assert.False(t, link.IsFile())

	file := Attachment{Source: SourceGeneric}
	assert.True(t, file.IsFile())
	assert.False(t, file.IsURL())
}

func TestIssuePriority_String(t *testing.T) {
	tests := []struct {
		priority IssuePriority
		want     string
	}{
		{PriorityNone, "none"},
		{PriorityUrgent, "urgent"},
		{PriorityHigh, "high"},
		{PriorityMedium, "medium"},
		{PriorityLow, "low"},
		{IssuePriority(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.priority.String())
		})
	}
}
