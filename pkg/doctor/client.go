/*
doctor provides the doctor's side of an interview with a simulated patient.

Script asks a fixed list of questions. Model asks questions generated by an
Azure OpenAI chat deployment, instructed by the system prompt for the task.
Both implement clinic.Doctor.
*/
package doctor

import (
	"context"
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clinic "github.com/mutablelogic/go-clinic"
	version "github.com/mutablelogic/go-clinic/pkg/version"
	global "go.opentelemetry.io/otel"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client calls the chat completions endpoint of an Azure OpenAI deployment
type Client struct {
	*client.Client
	deployment string
	apiVersion string
	tracer     trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultDeployment = "gpt5"
	DefaultAPIVersion = "2024-08-01-preview"

	tracerName = "github.com/mutablelogic/go-clinic/pkg/doctor"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the deployment at the Azure OpenAI endpoint,
// such as "https://example.openai.azure.com"
func New(endpoint, key, deployment, apiVersion string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint == "" {
		return nil, clinic.ErrBadParameter.With("missing endpoint")
	}
	if key == "" {
		return nil, clinic.ErrBadParameter.With("missing api key")
	}
	if deployment == "" {
		deployment = DefaultDeployment
	}
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	// Create client
	opts = append([]client.ClientOpt{
		client.OptUserAgent(version.UserAgent()),
	}, opts...)
	opts = append(opts,
		client.OptEndpoint(strings.TrimSuffix(endpoint, "/")),
		client.OptHeader("api-key", key),
	)
	c, err := client.New(opts...)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}

	// Return the client
	return &Client{
		Client:     c,
		deployment: deployment,
		apiVersion: apiVersion,
		tracer:     global.GetTracerProvider().Tracer(tracerName),
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Deployment returns the name of the deployment
func (c *Client) Deployment() string {
	return c.deployment
}

// Complete returns the next message in the chat
func (c *Client) Complete(ctx context.Context, req Request) (_ *Response, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Complete",
		attribute.String("deployment", c.deployment),
		attribute.Int("messages", len(req.Messages)),
	)
	defer func() { endSpan(err) }()

	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}

	var response Response
	if err := c.DoWithContext(ctx, payload, &response,
		client.OptPath("openai", "deployments", c.deployment, "chat", "completions"),
		client.OptQuery(url.Values{"api-version": []string{c.apiVersion}}),
	); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}
