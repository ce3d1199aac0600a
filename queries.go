package linear

// GraphQL documents sent by the resource services. Operation names and
// selection sets follow Linear's public schema; shared selections are
// kept in fragment constants so every document requesting an entity
// returns the same shape.

// defaultPageSize is used when list options leave PageSize unset.
const defaultPageSize = 50

// Selections for teams and users embedded inside an issue.
const (
	embeddedTeamFields = `
        id
        name
        key
        description
        organization { id }
        createdAt
        updatedAt
        archivedAt`

	embeddedUserFields = `
        id
        name
        displayName
        email
        avatarUrl
        organization { id }
        createdAt
        updatedAt
        archivedAt`
)

const issueFields = `
      id
      title
      description
      state {
        id
        name
        type
        color
        position
        description
        team {` + embeddedTeamFields + `
        }
        createdAt
        updatedAt
        archivedAt
      }
      priority
      number
      identifier
      team {` + embeddedTeamFields + `
      }
      assignee {` + embeddedUserFields + `
      }
      creator {` + embeddedUserFields + `
      }
      dueDate
      startedAt
      completedAt
      canceledAt
      labelIds
      parent { id }
      children { nodes { id } }
      url
      branchName
      estimate
      createdAt
      updatedAt
      archivedAt`

const (
	queryIssue = `query Issue($id: String!) {
    issue(id: $id) {` + issueFields + `
    }
}`

	queryIssues = `query Issues($first: Int!, $after: String, $filter: IssueFilter) {
    issues(first: $first, after: $after, filter: $filter) {
        nodes {` + issueFields + `
        }
        pageInfo {
            hasNextPage
            endCursor
        }
    }
}`

	mutationIssueCreate = `mutation CreateIssue($input: IssueCreateInput!) {
    issueCreate(input: $input) {
        success
        issue {` + issueFields + `
        }
    }
}`

	mutationIssueUpdate = `mutation UpdateIssue($id: String!, $input: IssueUpdateInput!) {
    issueUpdate(id: $id, input: $input) {
        success
        issue {` + issueFields + `
        }
    }
}`

	mutationIssueDelete = `mutation DeleteIssue($id: String!) {
    issueDelete(id: $id) {
        success
    }
}`
)

const teamFields = `
      id
      name
      key
      description
      organization { id }
      private
      defaultIssueState {
        id
        name
        type
        color
        position
        description
        team { id }
        createdAt
        updatedAt
        archivedAt
      }
      autoArchivePeriod
      autoClosePeriod
      cyclesEnabled
      cycleDuration
      cycleCooldownTime
      triageEnabled
      createdAt
      updatedAt
      archivedAt`

const (
	queryTeam = `query Team($id: String!) {
    team(id: $id) {` + teamFields + `
    }
}`

	queryTeams = `query Teams($first: Int!, $after: String, $includeArchived: Boolean) {
    teams(first: $first, after: $after, includeArchived: $includeArchived) {
        nodes {` + teamFields + `
        }
        pageInfo {
            hasNextPage
            endCursor
        }
    }
}`
)

const userFields = `
      id
      name
      displayName
      email
      avatarUrl
      organization { id }
      active
      lastSeen
      timezone
      isMe
      teams { nodes { id } }
      createdAt
      updatedAt
      archivedAt`

const (
	queryUser = `query User($id: ID!) {
    user(id: $id) {` + userFields + `
    }
}`

	queryUsers = `query Users($first: Int!, $after: String, $includeArchived: Boolean, $includeDisabled: Boolean) {
    users(first: $first, after: $after, includeArchived: $includeArchived, includeDisabled: $includeDisabled) {
        nodes {` + userFields + `
        }
        pageInfo {
            hasNextPage
            endCursor
        }
    }
}`

	queryMe = `query Me {
    viewer {` + userFields + `
    }
}`
)

const commentFields = `
      id
      body
      issue { id }
      user { id }
      parent { id }
      children { nodes { id } }
      createdAt
      updatedAt`

const (
	queryComment = `query Comment($id: String!) {
    comment(id: $id) {` + commentFields + `
    }
}`

	queryIssueComments = `query IssueComments($issueId: String!, $first: Int!, $after: String) {
    issue(id: $issueId) {
        comments(first: $first, after: $after) {
            nodes {` + commentFields + `
            }
            pageInfo {
                hasNextPage
                endCursor
            }
        }
    }
}`

	mutationCommentCreate = `mutation CommentCreate($input: CommentCreateInput!) {
    commentCreate(input: $input) {
        success
        comment {` + commentFields + `
        }
    }
}`

	mutationCommentUpdate = `mutation CommentUpdate($id: String!, $input: CommentUpdateInput!) {
    commentUpdate(id: $id, input: $input) {
        success
        comment {` + commentFields + `
        }
    }
}`

	mutationCommentDelete = `mutation CommentDelete($id: String!) {
    commentDelete(id: $id) {
        success
    }
}`
)

const attachmentFields = `
      id
      title
      subtitle
      source
      sourceType
      url
      issue { id }
      creator { id }
      metadata
      groupBySource
      createdAt
      updatedAt
      archivedAt`

const (
	queryAttachment = `query Attachment($id: String!) {
    attachment(id: $id) {` + attachmentFields + `
    }
}`

	queryIssueAttachments = `query IssueAttachments($issueId: String!, $first: Int!, $after: String) {
    issue(id: $issueId) {
        attachments(first: $first, after: $after) {
            nodes {` + attachmentFields + `
            }
            pageInfo {
                hasNextPage
                endCursor
            }
        }
    }
}`

	mutationAttachmentCreate = `mutation CreateAttachment($input: AttachmentCreateInput!) {
    attachmentCreate(input: $input) {
        success
        attachment {` + attachmentFields + `
        }
    }
}`

	mutationAttachmentDelete = `mutation DeleteAttachment($id: ID!) {
    attachmentDelete(id: $id) {
        success
        _destroyedId
    }
}`
)

const stateFields = `
      id
      name
      type
      color
      position
      description
      team { id }
      createdAt
      updatedAt
      archivedAt`

const (
	queryWorkflowState = `query WorkflowState($id: ID!) {
    workflowState(id: $id) {` + stateFields + `
    }
}`

	queryTeamWorkflowStates = `query TeamWorkflowStates($teamId: ID!, $includeArchived: Boolean) {
    team(id: $teamId) {
        states(includeArchived: $includeArchived) {
            nodes {` + stateFields + `
            }
        }
    }
}`
)
