package linear

import (
	"context"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

// Client is the entry point of the library. It bundles one shared transport
// with a typed service per Linear resource.
//
// A Client is safe for concurrent use.
type Client struct {
	cfg       *Config
	transport Transport
	logger    *zap.Logger

	Issues         *IssuesService
	Teams          *TeamsService
	Users          *UsersService
	Comments       *CommentsService
	Attachments    *AttachmentsService
	WorkflowStates *WorkflowStatesService

	mu     sync.Mutex
	viewer *User
}

type options struct {
	httpClient *http.Client
	logger     *zap.Logger
	transport  Transport
	endpoint   string
}

// Option customizes a Client during construction.
type Option func(*options)

// WithHTTPClient replaces the default HTTP client. Useful for custom proxies
// or transports with instrumentation.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithLogger attaches a zap logger. Requests are logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithTransport swaps the whole transport layer, bypassing HTTP entirely.
// Intended for tests and recording proxies.
func WithTransport(transport Transport) Option {
	return func(o *options) {
		o.transport = transport
	}
}

// WithEndpoint points the client at a different GraphQL endpoint, for
// example a local mock server.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// New builds a Client talking to the Linear API with the given key.
func New(apiKey string, opts ...Option) (*Client, error) {
	return NewFromConfig(NewConfig(apiKey), opts...)
}

// NewFromEnv builds a Client from environment variables, loading a .env
// file first when one exists. See NewConfigFromEnv for the variable names.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := NewConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewFromConfig(cfg, opts...)
}

// NewFromConfig builds a Client from an explicit Config.
func NewFromConfig(cfg *Config, opts ...Option) (*Client, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.endpoint != "" {
		cfgCopy := *cfg
		cfgCopy.APIURL = o.endpoint
		cfg = &cfgCopy
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := o.transport
	if transport == nil {
		transport = newHTTPTransport(cfg, o.httpClient, o.logger)
	}

	c := &Client{
		cfg:       cfg,
		transport: transport,
		logger:    o.logger,

		Issues:         &IssuesService{transport: transport},
		Teams:          &TeamsService{transport: transport},
		Users:          &UsersService{transport: transport},
		Comments:       &CommentsService{transport: transport},
		Attachments:    &AttachmentsService{transport: transport},
		WorkflowStates: &WorkflowStatesService{transport: transport},
	}
	return c, nil
}

// Me returns the user who owns the API key. The first call hits the API,
// later calls return a cached copy. Concurrent callers share one request.
func (c *Client) Me(ctx context.Context) (*User, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.viewer != nil {
		return c.viewer, nil
	}

	viewer, err := c.Users.Me(ctx)
	if err != nil {
		return nil, err
	}
	c.viewer = viewer
	return viewer, nil
}
