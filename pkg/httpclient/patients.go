package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clinic "github.com/mutablelogic/go-clinic"
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Patients groups the patient endpoints. Both require an administrator
// token; any other token fails with clinic.ErrPermissionDenied.
type Patients struct {
	*Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List returns a page of patients. Use WithPage and WithLimit to select
// the page; the defaults are page 1 with 20 patients.
func (p *Patients) List(ctx context.Context, opts ...opt.Opt) (_ *schema.PatientList, err error) {
	query, err := listQuery(opts)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}

	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "ListPatients",
		attribute.String("query", query.Encode()),
	)
	defer func() { endSpan(err) }()

	var response schema.PatientList
	if err := p.do(ctx, client.NewRequest(), &response, client.OptPath("api", "patients"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Get returns a patient with their full health record
func (p *Patients) Get(ctx context.Context, id string) (_ *schema.PatientDetail, err error) {
	if id == "" {
		return nil, clinic.ErrBadParameter.With("missing patient id")
	}

	ctx, endSpan := otel.StartSpan(p.tracer, ctx, "GetPatient",
		attribute.String("id", id),
	)
	defer func() { endSpan(err) }()

	var response schema.DataResponse[schema.PatientDetail]
	if err := p.do(ctx, client.NewRequest(), &response, client.OptPath("api", "patients", id)); err != nil {
		return nil, err
	}

	// Return success
	return &response.Data, nil
}
