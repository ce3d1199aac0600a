package linear

import "context"

// WorkflowStatesService provides read access to the workflow states that
// make up a team's board columns.
type WorkflowStatesService struct {
	transport Transport
}

// Get fetches a single workflow state by ID.
func (s *WorkflowStatesService) Get(ctx context.Context, id string) (*WorkflowState, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	var data struct {
		WorkflowState *WorkflowState `json:"workflowState"`
	}
	if err := s.transport.Execute(ctx, queryWorkflowState, map[string]interface{}{"id": id}, &data); err != nil {
		return nil, err
	}
	if data.WorkflowState == nil {
		return nil, &NotFoundError{Resource: "workflow state", ID: id}
	}
	return data.WorkflowState, nil
}

// ListForTeam returns the workflow states of a team. Teams carry at most a
// few dozen states, so the result is fetched in one request.
func (s *WorkflowStatesService) ListForTeam(ctx context.Context, teamID string, includeArchived bool) ([]WorkflowState, error) {
	if teamID == "" {
		return nil, &ValidationError{Field: "team id", Reason: "must not be empty"}
	}

	variables := map[string]interface{}{
		"teamId":          teamID,
		"includeArchived": includeArchived,
	}

	var data struct {
		Team *struct {
			States struct {
				Nodes []WorkflowState `json:"nodes"`
			} `json:"states"`
		} `json:"team"`
	}
	if err := s.transport.Execute(ctx, queryTeamWorkflowStates, variables, &data); err != nil {
		return nil, err
	}
	if data.Team == nil {
		return nil, &NotFoundError{Resource: "team", ID: teamID}
	}
	return data.Team.States.Nodes, nil
}
