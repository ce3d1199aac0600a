package linear

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport scripts responses for service tests and records every call.
// Variables are copied at call time because list pagination mutates the map
// between requests.
type fakeTransport struct {
	calls     int
	queries   []string
	variables []map[string]interface{}
	respond   func(call int, variables map[string]interface{}, out interface{}) error
}

func (f *fakeTransport) Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	f.calls++
	f.queries = append(f.queries, query)

	vcopy := make(map[string]interface{}, len(variables))
	for k, v := range variables {
		vcopy[k] = v
	}
	f.variables = append(f.variables, vcopy)

	if f.respond == nil {
		return nil
	}
	return f.respond(f.calls, variables, out)
}

// fillJSON decodes a canned response body into the transport's out target.
func fillJSON(t *testing.T, out interface{}, raw string) error {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(raw), out))
	return nil
}

func TestIssues_Get(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{
				"issue": {
					"id": "issue-1",
					"identifier": "ENG-42",
					"title": "Broken login",
					"priority": 2,
					"state": {"id": "state-1", "name": "In Progress", "type": "started"}
				}
			}`)
		},
	}
	issues := &IssuesService{transport: transport}

	issue, err := issues.Get(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, "ENG-42", issue.Identifier)
	assert.Equal(t, PriorityHigh, issue.Priority)
	require.NotNil(t, issue.State)
	assert.Equal(t, StateStarted, issue.State.Type)
	assert.Equal(t, map[string]interface{}{"id": "issue-1"}, transport.variables[0])
}

func TestIssues_Get_NotFound(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issue": null}`)
		},
	}
	issues := &IssuesService{transport: transport}

	issue, err := issues.Get(context.Background(), "issue-gone")

	assert.Nil(t, issue)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "issue", notFound.Resource)
	assert.Equal(t, "issue-gone", notFound.ID)
}

func TestIssues_Get_EmptyID(t *testing.T) {
	transport := &fakeTransport{}
	issues := &IssuesService{transport: transport}

	_, err := issues.Get(context.Background(), "")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 0, transport.calls, "validation must fail before any request")
}

func TestIssues_List_Pagination(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			switch call {
			case 1:
				assert.Nil(t, variables["after"])
				return fillJSON(t, out, `{
					"issues": {
						"nodes": [{"id": "issue-1"}, {"id": "issue-2"}],
						"pageInfo": {"hasNextPage": true, "endCursor": "cursor-1"}
					}
				}`)
			default:
				assert.Equal(t, "cursor-1", variables["after"])
				return fillJSON(t, out, `{
					"issues": {
						"nodes": [{"id": "issue-3"}],
						"pageInfo": {"hasNextPage": false, "endCursor": null}
					}
				}`)
			}
		},
	}
	issues := &IssuesService{transport: transport}

	result, err := issues.List(context.Background(), IssueListOptions{})

	require.NoError(t, err)
	assert.Equal(t, 2, transport.calls)
	require.Len(t, result, 3)
	assert.Equal(t, "issue-3", result[2].ID)
	assert.Equal(t, 50, transport.variables[0]["first"])
}

func TestIssues_List_FilterShape(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issues": {"nodes": [], "pageInfo": {"hasNextPage": false, "endCursor": null}}}`)
		},
	}
	issues := &IssuesService{transport: transport}

	_, err := issues.List(context.Background(), IssueListOptions{
		TeamID:     "team-1",
		AssigneeID: "user-1",
		State:      StateStarted,
		Priority:   PriorityUrgent,
		PageSize:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, transport.variables[0]["first"])
	assert.Equal(t, map[string]interface{}{
		"team":       map[string]interface{}{"id": map[string]interface{}{"eq": "team-1"}},
		"assignee":   map[string]interface{}{"id": map[string]interface{}{"eq": "user-1"}},
		"state":      map[string]interface{}{"type": map[string]interface{}{"eq": "started"}},
		"priority":   map[string]interface{}{"eq": 1},
		"archivedAt": map[string]interface{}{"null": true},
	}, transport.variables[0]["filter"])
}

func TestIssues_List_NoFilter(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issues": {"nodes": [], "pageInfo": {"hasNextPage": false, "endCursor": null}}}`)
		},
	}
	issues := &IssuesService{transport: transport}

	// Without options only the archive filter applies; with IncludeArchived
	// the filter collapses to nil so the server sees no filter at all.
	_, err := issues.List(context.Background(), IssueListOptions{})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"archivedAt": map[string]interface{}{"null": true},
	}, transport.variables[0]["filter"])

	_, err = issues.List(context.Background(), IssueListOptions{IncludeArchived: true})
	require.NoError(t, err)
	assert.Nil(t, transport.variables[1]["filter"])
}

func TestIssues_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     IssueCreateInput
		wantField string
	}{
		{
			name:      "missing title",
			input:     IssueCreateInput{TeamID: "team-1"},
			wantField: "title",
		},
		{
			name:      "missing team",
			input:     IssueCreateInput{Title: "New issue"},
			wantField: "team id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := &fakeTransport{}
			issues := &IssuesService{transport: transport}

			issue, err := issues.Create(context.Background(), tt.input)

			assert.Nil(t, issue)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, 0, transport.calls, "validation must fail before any request")
		})
	}
}

func TestIssues_Create(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{
				"issueCreate": {
					"success": true,
					"issue": {"id": "issue-9", "identifier": "ENG-9", "title": "New issue", "priority": 3}
				}
			}`)
		},
	}
	issues := &IssuesService{transport: transport}

	issue, err := issues.Create(context.Background(), IssueCreateInput{
		Title:    "New issue",
		TeamID:   "team-1",
		Priority: PriorityMedium,
	})

	require.NoError(t, err)
	assert.Equal(t, "issue-9", issue.ID)

	input, ok := transport.variables[0]["input"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{
		"title":    "New issue",
		"teamId":   "team-1",
		"priority": 3,
	}, input, "unset optional fields must not be sent")
}

func TestIssues_Create_Failure(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issueCreate": {"success": false, "issue": null}}`)
		},
	}
	issues := &IssuesService{transport: transport}

	_, err := issues.Create(context.Background(), IssueCreateInput{Title: "New issue", TeamID: "team-1"})

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "issue", opErr.Resource)
	assert.Equal(t, "create", opErr.Op)
}

func TestIssues_Update_PartialFields(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{
				"issueUpdate": {
					"success": true,
					"issue": {"id": "issue-1", "title": "Renamed", "priority": 1}
				}
			}`)
		},
	}
	issues := &IssuesService{transport: transport}

	title := "Renamed"
	priority := PriorityUrgent
	issue, err := issues.Update(context.Background(), "issue-1", IssueUpdateInput{
		Title:    &title,
		Priority: &priority,
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed", issue.Title)

	assert.Equal(t, "issue-1", transport.variables[0]["id"])
	input, ok := transport.variables[0]["input"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, map[string]interface{}{
		"title":    "Renamed",
		"priority": 1,
	}, input, "untouched fields must not be sent")
}

func TestIssues_Delete(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issueDelete": {"success": true}}`)
		},
	}
	issues := &IssuesService{transport: transport}

	err := issues.Delete(context.Background(), "issue-1")

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"id": "issue-1"}, transport.variables[0])
}

func TestIssues_Delete_Failure(t *testing.T) {
	transport := &fakeTransport{
		respond: func(call int, variables map[string]interface{}, out interface{}) error {
			return fillJSON(t, out, `{"issueDelete": {"success": false}}`)
		},
	}
	issues := &IssuesService{transport: transport}

	err := issues.Delete(context.Background(), "issue-1")

	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "delete", opErr.Op)
	assert.Equal(t, "issue-1", opErr.ID)
}
