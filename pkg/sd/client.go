// Package sd provides a client for the SD organization and employment
// web services. A client binds the remote operations once, during
// construction, and exposes one method per operation, each taking a typed
// parameter struct from the params package.
package sd

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/magenta-aps/sd-connector/internal/pkg/application/invoker"
	"github.com/magenta-aps/sd-connector/internal/pkg/application/registry"
	"github.com/magenta-aps/sd-connector/internal/pkg/infrastructure/soap"
	"github.com/magenta-aps/sd-connector/pkg/sd/params"
)

// canonical operation names, derived from the names advertised by the
// service descriptors
const (
	opGetDepartment              = "GetDepartment20111201"
	opGetDepartmentParent        = "GetDepartmentParent20190701"
	opGetInstitution             = "GetInstitution20111201"
	opGetOrganization            = "GetOrganization20111201"
	opGetEmployment              = "GetEmployment20111201"
	opGetEmploymentChanged       = "GetEmploymentChanged20111201"
	opGetEmploymentChangedAtDate = "GetEmploymentChangedAtDate20111201"
	opGetPerson                  = "GetPerson20111201"
	opGetPersonChangedAtDate     = "GetPersonChangedAtDate20111201"
	opGetProfession              = "GetProfession20080201"
)

const TraceAttributeOperation string = "sd-operation"

var tracer = otel.Tracer("sd-connector-client")

// ClientOption configures a client during construction.
type ClientOption func(*clientConfig)

type clientConfig struct {
	baseURL         string
	endpoints       []string
	today           params.Today
	retryWait       time.Duration
	maxCallAttempts uint
}

func BaseURL(url string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

func Endpoints(locators ...string) ClientOption {
	return func(c *clientConfig) {
		c.endpoints = locators
	}
}

// Clock overrides the time source used when defaulting omitted dates and
// date times in parameter structs.
func Clock(today params.Today) ClientOption {
	return func(c *clientConfig) {
		c.today = today
	}
}

func RetryWait(initial time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.retryWait = initial
	}
}

func MaxCallAttempts(attempts uint) ClientOption {
	return func(c *clientConfig) {
		c.maxCallAttempts = attempts
	}
}

type Client struct {
	session  *soap.Session
	registry *registry.Registry
	invoker  *invoker.Invoker
	today    params.Today
}

// NewClient creates a client with a dedicated session for the given
// credential pair. Binding the remote operations happens here, so a
// returned client is ready to call and a misconfigured endpoint list
// fails fast instead of on first use.
func NewClient(ctx context.Context, username, password string, options ...ClientOption) (*Client, error) {
	session := soap.NewSession(soap.Credentials{Username: username, Password: password})
	return newClient(ctx, session, options...)
}

// NewSharedClient creates a client on top of the process wide session for
// the given credential pair, so concurrent clients with the same
// credentials share one connection pool. The session stays alive until
// every client created on it has been closed.
func NewSharedClient(ctx context.Context, username, password string, options ...ClientOption) (*Client, error) {
	session := soap.Acquire(soap.Credentials{Username: username, Password: password})
	return newClient(ctx, session, options...)
}

func newClient(ctx context.Context, session *soap.Session, options ...ClientOption) (*Client, error) {
	cfg := &clientConfig{
		baseURL:   DefaultBaseURL,
		endpoints: DefaultEndpoints,
		today:     time.Now,
	}

	for _, option := range options {
		option(cfg)
	}

	reg, err := registry.New(ctx, session, cfg.baseURL, cfg.endpoints)
	if err != nil {
		session.Close()
		return nil, err
	}

	invokerOptions := []invoker.Option{}
	if cfg.retryWait > 0 {
		invokerOptions = append(invokerOptions, invoker.WithRetryWait(cfg.retryWait))
	}
	if cfg.maxCallAttempts > 0 {
		invokerOptions = append(invokerOptions, invoker.WithMaxAttempts(cfg.maxCallAttempts))
	}

	return &Client{
		session:  session,
		registry: reg,
		invoker:  invoker.New(reg, session, invokerOptions...),
		today:    cfg.today,
	}, nil
}

// Close releases the client's session. For shared clients the underlying
// connection pool is torn down when the last client on it closes, and an
// over-released session is reported as an error.
func (c *Client) Close() error {
	return c.session.Close()
}

// Operations returns the canonical names of every bound operation, sorted.
func (c *Client) Operations() []string {
	return c.registry.Operations()
}

func (c *Client) GetDepartment(ctx context.Context, p params.GetDepartmentParams) (*Record, error) {
	return c.call(ctx, "get-department", opGetDepartment, p.Fields(c.today))
}

func (c *Client) GetDepartmentParent(ctx context.Context, p params.GetDepartmentParentParams) (*Record, error) {
	return c.call(ctx, "get-department-parent", opGetDepartmentParent, p.Fields(c.today))
}

func (c *Client) GetInstitution(ctx context.Context, p params.GetInstitutionParams) (*Record, error) {
	return c.call(ctx, "get-institution", opGetInstitution, p.Fields(c.today))
}

func (c *Client) GetOrganization(ctx context.Context, p params.GetOrganizationParams) (*Record, error) {
	return c.call(ctx, "get-organization", opGetOrganization, p.Fields(c.today))
}

func (c *Client) GetEmployment(ctx context.Context, p params.GetEmploymentParams) (*Record, error) {
	return c.call(ctx, "get-employment", opGetEmployment, p.Fields(c.today))
}

func (c *Client) GetEmploymentChanged(ctx context.Context, p params.GetEmploymentChangedParams) (*Record, error) {
	return c.call(ctx, "get-employment-changed", opGetEmploymentChanged, p.Fields(c.today))
}

func (c *Client) GetEmploymentChangedAtDate(ctx context.Context, p params.GetEmploymentChangedAtDateParams) (*Record, error) {
	return c.call(ctx, "get-employment-changed-at-date", opGetEmploymentChangedAtDate, p.Fields(c.today))
}

func (c *Client) GetPerson(ctx context.Context, p params.GetPersonParams) (*Record, error) {
	return c.call(ctx, "get-person", opGetPerson, p.Fields(c.today))
}

func (c *Client) GetPersonChangedAtDate(ctx context.Context, p params.GetPersonChangedAtDateParams) (*Record, error) {
	return c.call(ctx, "get-person-changed-at-date", opGetPersonChangedAtDate, p.Fields(c.today))
}

func (c *Client) GetProfession(ctx context.Context, p params.GetProfessionParams) (*Record, error) {
	return c.call(ctx, "get-profession", opGetProfession, p.Fields(c.today))
}

func (c *Client) call(ctx context.Context, spanName, operation string, fields params.Fields) (*Record, error) {
	var err error

	ctx, span := tracer.Start(ctx, spanName,
		trace.WithAttributes(attribute.String(TraceAttributeOperation, operation)),
	)
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	response, err := c.invoker.Call(ctx, operation, fields)
	if err != nil {
		return nil, err
	}

	return &Record{Operation: response.Operation, Body: response.Body}, nil
}
