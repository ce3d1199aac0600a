// Package linear provides a typed client for the Linear GraphQL API.
// It covers issues, teams, users, comments, attachments and workflow
// states with plain get, list, create, update and delete calls, hiding
// the GraphQL documents and cursor pagination behind Go types.
//
// An API key is required. Personal keys can be generated from Linear
// settings: https://linear.app/settings/api
//
// Example usage:
//
//	client, err := linear.New(os.Getenv("LINEAR_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	issue, err := client.Issues.Create(ctx, linear.IssueCreateInput{
//	    Title:  "Fix login timeout",
//	    TeamID: teamID,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("created %s: %s\n", issue.Identifier, issue.Title)
//
// All calls take a context and return typed errors. Failures can be
// inspected with errors.As against the error types in this package,
// for example NotFoundError or RateLimitError.
package linear
