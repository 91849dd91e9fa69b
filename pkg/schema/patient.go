package schema

import (
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// PatientSummary is a patient with basic demographics, as returned by the
// list endpoint
type PatientSummary struct {
	ID        string  `json:"id"`
	First     string  `json:"first"`
	Last      string  `json:"last"`
	BirthDate string  `json:"birthDate"`
	DeathDate *string `json:"deathDate"`
	Gender    string  `json:"gender"`
	Race      *string `json:"race"`
	Ethnicity *string `json:"ethnicity"`
	City      *string `json:"city"`
	State     *string `json:"state"`
}

// Patient is the full demographic record, as returned by the detail endpoint
type Patient struct {
	ID         string  `json:"id"`
	First      string  `json:"first"`
	Last       string  `json:"last"`
	BirthDate  string  `json:"birthDate"`
	DeathDate  *string `json:"deathDate"`
	Gender     string  `json:"gender"`
	Race       *string `json:"race"`
	Ethnicity  *string `json:"ethnicity"`
	Marital    *string `json:"marital"`
	Birthplace *string `json:"birthplace"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zip        *string `json:"zip"`
}

// PatientDetail is the response from GET /api/patients/{id}: demographics,
// an EHR summary and the raw record arrays
type PatientDetail struct {
	Patient            Patient        `json:"patient"`
	Summary            EHRSummary     `json:"summary"`
	Conditions         []Condition    `json:"conditions"`
	Medications        []Medication   `json:"medications"`
	Allergies          []Allergy      `json:"allergies"`
	Procedures         []Procedure    `json:"procedures"`
	CarePlans          []CarePlan     `json:"careplans"`
	RecentObservations []Observation  `json:"recentObservations"`
	Encounters         []Encounter    `json:"encounters"`
	Immunizations      []Immunization `json:"immunizations"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the patient's display name
func (p PatientSummary) Name() string {
	return fullName(p.First, p.Last)
}

// Name returns the patient's display name
func (p Patient) Name() string {
	return fullName(p.First, p.Last)
}

// Deceased returns true if a death date is recorded
func (p Patient) Deceased() bool {
	return types.Value(p.DeathDate) != ""
}

// Location returns the city and state, such as "Boston, Massachusetts"
func (p PatientSummary) Location() string {
	return location(p.City, p.State)
}

// Location returns the city and state, such as "Boston, Massachusetts"
func (p Patient) Location() string {
	return location(p.City, p.State)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (p PatientSummary) String() string {
	return types.Stringify(p)
}

func (p Patient) String() string {
	return types.Stringify(p)
}

func (p PatientDetail) String() string {
	return types.Stringify(p)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func location(city, state *string) string {
	parts := make([]string, 0, 2)
	for _, part := range []string{types.Value(city), types.Value(state)} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}
