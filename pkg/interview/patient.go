package interview

import (
	"context"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Patients reads patient records
type Patients interface {
	List(ctx context.Context, opts ...opt.Opt) (*schema.PatientList, error)
	Get(ctx context.Context, id string) (*schema.PatientDetail, error)
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Number of patients listed when choosing one
const candidates = 5

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ResolvePatient returns the record for the patient with the given id, or
// for the first patient listed when id is empty
func ResolvePatient(ctx context.Context, patients Patients, id string) (*schema.PatientDetail, error) {
	if id != "" {
		return patients.Get(ctx, id)
	}

	list, err := patients.List(ctx, httpclient.WithPage(1), httpclient.WithLimit(candidates))
	if err != nil {
		return nil, err
	} else if len(list.Data) == 0 {
		return nil, clinic.NewError(clinic.ErrNotFound, 0, "no patients found. Has the database been seeded?", nil)
	}
	return patients.Get(ctx, list.Data[0].ID)
}
