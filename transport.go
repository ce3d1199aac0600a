package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Transport executes a single GraphQL document against the Linear API.
//
// One Execute call performs exactly one HTTP round trip: no retries, no
// hidden requests. The response's data field is decoded into out, which
// must be a pointer; out may be nil when the caller only cares about
// success. Failures are reported through the error types in this package.
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// httpTransport is the default Transport, POSTing authenticated GraphQL
// payloads to a single endpoint.
type httpTransport struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

func newHTTPTransport(cfg *Config, httpClient *http.Client, logger *zap.Logger) *httpTransport {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &httpTransport{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint(),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (t *httpTransport) Execute(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return &NetworkError{Err: errors.Wrap(err, "encoding request")}
	}

	t.logger.Debug("executing graphql request",
		zap.String("operation", operationName(query)),
		zap.Int("variables", len(variables)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return &NetworkError{Err: errors.Wrap(err, "building request")}
	}

	// Linear expects the personal API key verbatim, without a Bearer prefix.
	req.Header.Set("Authorization", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			t.logger.Debug("closing response body", zap.Error(cerr))
		}
	}()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{StatusCode: resp.StatusCode}
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitError{RetryAfter: retryAfter(resp)}
	case resp.StatusCode != http.StatusOK:
		return &NetworkError{StatusCode: resp.StatusCode}
	}

	var envelope graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &NetworkError{Err: errors.Wrap(err, "invalid JSON response")}
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			messages = append(messages, e.Message)
		}
		return &GraphQLError{Messages: messages}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return &NetworkError{Err: errors.Wrap(err, "decoding response data")}
	}
	return nil
}

// retryAfter reads the Retry-After header of a 429 response, zero when
// absent or unparseable.
func retryAfter(resp *http.Response) time.Duration {
	raw := resp.Header.Get("Retry-After")
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

// operationName extracts the document's operation name for logging, e.g.
// "Issues" from "query Issues($first: Int!) { ... }".
func operationName(query string) string {
	fields := strings.Fields(query)
	if len(fields) < 2 || (fields[0] != "query" && fields[0] != "mutation") {
		return ""
	}
	name := fields[1]
	if i := strings.IndexAny(name, "({"); i >= 0 {
		name = name[:i]
	}
	return name
}
