/*
httpclient implements a typed client for the Virtual Clinic REST API.

Create a client with New, passing the base URL (or an empty string for the
hosted service) and a bearer token. The Patients and Conversations fields
group the calls for each resource. Call Close when the client is no longer
required; any call after Close fails with clinic.ErrClosed.

Every call which does not succeed returns a *clinic.Error, whose Kind is
derived from the HTTP status code of the response, or clinic.ErrConnection
when no response was received.
*/
package httpclient

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	version "github.com/mutablelogic/go-clinic/pkg/version"
	global "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is a Virtual Clinic API client. It is safe to use from multiple
// goroutines to the extent the underlying http.Client is.
type Client struct {
	client *client.Client
	tracer trace.Tracer
	closed atomic.Bool

	// Resources
	Patients      *Patients
	Conversations *Conversations
}

var _ clinic.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultEndpoint is the hosted API
	DefaultEndpoint = "https://virtual-clinic-api.vercel.app"

	// DefaultTimeout exceeds the time the server takes to generate a reply
	DefaultTimeout = 60 * time.Second

	tracerName = "github.com/mutablelogic/go-clinic/pkg/httpclient"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the API at endpoint, authenticating with token.
// The default timeout and user agent can be overridden with opts.
func New(endpoint, token string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// Defaults first, so they can be overridden
	clientOpts := []client.ClientOpt{
		client.OptTimeout(DefaultTimeout),
		client.OptUserAgent(version.UserAgent()),
	}
	clientOpts = append(clientOpts, opts...)
	clientOpts = append(clientOpts,
		client.OptEndpoint(endpoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: token}),
	)

	c := new(Client)
	if client, err := client.New(clientOpts...); err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	} else {
		c.client = client
	}

	// Keep the body of failed responses for the error envelope
	transport := c.client.Client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	c.client.Client.Transport = &captureTransport{next: transport}

	c.tracer = global.GetTracerProvider().Tracer(tracerName)
	c.Patients = &Patients{c}
	c.Conversations = &Conversations{c}

	// Return success
	return c, nil
}

// Close releases idle connections. It is safe to call more than once, and
// every call made afterwards fails with clinic.ErrClosed.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}
	c.client.Client.CloseIdleConnections()
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// SendMessage sends content to the conversation with the given id, and
// returns the reply from the simulated patient
func (c *Client) SendMessage(ctx context.Context, id, content string) (*schema.AssistantMessage, error) {
	return c.Conversations.SendMessage(ctx, id, content)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do performs a single request, decoding a success response into out and
// translating any failure into a *clinic.Error
func (c *Client) do(ctx context.Context, payload client.Payload, out any, opts ...client.RequestOpt) error {
	if c.closed.Load() {
		return clinic.NewError(clinic.ErrClosed, 0, "", nil)
	}
	failure := new(failure)
	if err := c.client.DoWithContext(withFailure(ctx, failure), payload, out, opts...); err != nil {
		return mapError(err, failure)
	}
	return nil
}
