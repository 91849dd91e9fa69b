package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Health returns the liveness of the service and its database. A degraded
// service responds with 503 and a health body: the error is clinic.ErrServer,
// and the decoded body is returned alongside it.
func (c *Client) Health(ctx context.Context) (_ *schema.HealthStatus, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "Health")
	defer func() { endSpan(err) }()

	var response schema.HealthStatus
	if err := c.do(ctx, client.NewRequest(), &response, client.OptPath("api", "health")); err != nil {
		return degraded(err), err
	}

	// Return success
	return &response, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// degraded returns the health snapshot carried by a 503 response, or nil
func degraded(err error) *schema.HealthStatus {
	var e *clinic.Error
	if !errors.As(err, &e) || e.Status != http.StatusServiceUnavailable || e.Body == nil {
		return nil
	}
	data, err := json.Marshal(e.Body)
	if err != nil {
		return nil
	}
	var health schema.HealthStatus
	if err := json.Unmarshal(data, &health); err != nil {
		return nil
	}
	if health.Status != schema.StatusDegraded {
		return nil
	}
	return &health
}
