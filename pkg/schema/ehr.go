package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// EHRSummary is the aggregated view of a patient's health record
type EHRSummary struct {
	ConditionsCount     uint     `json:"conditionsCount"`
	ActiveConditions    []string `json:"activeConditions"`
	MedicationsCount    uint     `json:"medicationsCount"`
	ActiveMedications   []string `json:"activeMedications"`
	AllergiesCount      uint     `json:"allergiesCount"`
	Allergies           []string `json:"allergies"`
	EncountersCount     uint     `json:"encountersCount"`
	ProceduresCount     uint     `json:"proceduresCount"`
	ImmunizationsCount  uint     `json:"immunizationsCount"`
	ActiveCarePlanCount uint     `json:"activeCareplanCount"`
}

// Condition is a diagnosis recorded against a patient
type Condition struct {
	Start       string  `json:"start"`
	Stop        *string `json:"stop"`
	PatientID   string  `json:"patientId"`
	EncounterID *string `json:"encounterId"`
	System      *string `json:"system"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
}

// Medication is a prescription recorded against a patient
type Medication struct {
	Start             string  `json:"start"`
	Stop              *string `json:"stop"`
	PatientID         string  `json:"patientId"`
	PayerID           *string `json:"payerId"`
	EncounterID       *string `json:"encounterId"`
	Code              string  `json:"code"`
	Description       string  `json:"description"`
	BaseCost          *string `json:"baseCost"`
	PayerCoverage     *string `json:"payerCoverage"`
	Dispenses         *string `json:"dispenses"`
	TotalCost         *string `json:"totalCost"`
	ReasonCode        *string `json:"reasonCode"`
	ReasonDescription *string `json:"reasonDescription"`
}

// Allergy is an allergy or intolerance, with up to two recorded reactions
type Allergy struct {
	Start        string  `json:"start"`
	Stop         *string `json:"stop"`
	PatientID    string  `json:"patientId"`
	EncounterID  *string `json:"encounterId"`
	Code         string  `json:"code"`
	System       *string `json:"system"`
	Description  string  `json:"description"`
	Type         *string `json:"type"`
	Category     *string `json:"category"`
	Reaction1    *string `json:"reaction1"`
	Description1 *string `json:"description1"`
	Severity1    *string `json:"severity1"`
	Reaction2    *string `json:"reaction2"`
	Description2 *string `json:"description2"`
	Severity2    *string `json:"severity2"`
}

// Procedure is a procedure performed on a patient
type Procedure struct {
	Start             string  `json:"start"`
	Stop              *string `json:"stop"`
	PatientID         string  `json:"patientId"`
	EncounterID       *string `json:"encounterId"`
	Code              string  `json:"code"`
	Description       string  `json:"description"`
	BaseCost          *string `json:"baseCost"`
	ReasonCode        *string `json:"reasonCode"`
	ReasonDescription *string `json:"reasonDescription"`
}

// Encounter is a visit
type Encounter struct {
	ID                string  `json:"id"`
	Start             string  `json:"start"`
	Stop              *string `json:"stop"`
	PatientID         string  `json:"patientId"`
	OrganizationID    *string `json:"organizationId"`
	ProviderID        *string `json:"providerId"`
	PayerID           *string `json:"payerId"`
	EncounterClass    *string `json:"encounterClass"`
	Code              *string `json:"code"`
	Description       *string `json:"description"`
	BaseCost          *string `json:"baseCost"`
	TotalClaimCost    *string `json:"totalClaimCost"`
	PayerCoverage     *string `json:"payerCoverage"`
	ReasonCode        *string `json:"reasonCode"`
	ReasonDescription *string `json:"reasonDescription"`
}

// Observation is a clinical observation or lab result
type Observation struct {
	Date        string  `json:"date"`
	PatientID   string  `json:"patientId"`
	EncounterID *string `json:"encounterId"`
	Category    *string `json:"category"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Value       *string `json:"value"`
	Units       *string `json:"units"`
	Type        *string `json:"type"`
}

// Immunization is a vaccination given to a patient
type Immunization struct {
	Date        string  `json:"date"`
	PatientID   string  `json:"patientId"`
	EncounterID *string `json:"encounterId"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
	BaseCost    *string `json:"baseCost"`
}

// CarePlan is a care plan for a patient
type CarePlan struct {
	ID                string  `json:"id"`
	Start             string  `json:"start"`
	Stop              *string `json:"stop"`
	PatientID         string  `json:"patientId"`
	EncounterID       *string `json:"encounterId"`
	Code              string  `json:"code"`
	Description       string  `json:"description"`
	ReasonCode        *string `json:"reasonCode"`
	ReasonDescription *string `json:"reasonDescription"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Active returns true if the condition has not been resolved
func (c Condition) Active() bool {
	return types.Value(c.Stop) == ""
}

// Active returns true if the medication has not been stopped
func (m Medication) Active() bool {
	return types.Value(m.Stop) == ""
}

// Active returns true if the care plan has not ended
func (c CarePlan) Active() bool {
	return types.Value(c.Stop) == ""
}
