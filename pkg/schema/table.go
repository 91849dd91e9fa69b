package schema

import (
	"fmt"

	// Packages
	uitable "github.com/mutablelogic/go-clinic/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// PatientTable implements table.TableData for a list of patients.
type PatientTable []PatientSummary

// ConversationTable implements table.TableData for a list of conversations.
type ConversationTable []ConversationSummary

// MessageTable implements table.TableData for the messages of a conversation.
// System messages are skipped unless ShowSystem is set.
type MessageTable struct {
	Messages   []Message
	ShowSystem bool
}

// RecordTable implements table.TableData for the record counts of a patient.
type RecordTable struct {
	*PatientDetail
}

///////////////////////////////////////////////////////////////////////////////
// PATIENT TABLE (LIST)

func (t PatientTable) Header() []string {
	return []string{"PATIENT", "ID", "GENDER", "BORN", "LOCATION"}
}

func (t PatientTable) Len() int {
	return len(t)
}

func (t PatientTable) Row(i int) []any {
	p := t[i]
	return []any{p.Name(), p.ID, p.Gender, p.BirthDate, p.Location()}
}

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION TABLE (LIST)

func (t ConversationTable) Header() []string {
	return []string{"CONVERSATION", "PATIENT", "TASK", "CREATED", "UPDATED"}
}

func (t ConversationTable) Len() int {
	return len(t)
}

func (t ConversationTable) Row(i int) []any {
	c := t[i]
	return []any{c.ID, c.PatientName, string(c.TaskType), uitable.Timestamp(c.CreatedAt), uitable.Timestamp(c.UpdatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// MESSAGE TABLE

func (t MessageTable) Header() []string {
	return []string{"ROLE", "MESSAGE", "CREATED"}
}

func (t MessageTable) Len() int {
	return len(t.Messages)
}

func (t MessageTable) Row(i int) []any {
	m := t.Messages[i]
	if m.Role == RoleSystem && !t.ShowSystem {
		return nil
	}
	role := any(string(m.Role))
	if m.Role == RoleAssistant {
		role = uitable.Bold{Value: role}
	}
	return []any{role, uitable.Truncate(m.Content, 120), uitable.Timestamp(m.CreatedAt)}
}

///////////////////////////////////////////////////////////////////////////////
// RECORD TABLE

func (t RecordTable) Header() []string {
	return []string{"RECORD", "COUNT", "ACTIVE"}
}

func (t RecordTable) Len() int {
	return len(recordRows)
}

func (t RecordTable) Row(i int) []any {
	return recordRows[i](t.PatientDetail)
}

var recordRows = []func(*PatientDetail) []any{
	func(d *PatientDetail) []any {
		return []any{"Conditions", fmt.Sprint(d.Summary.ConditionsCount), fmt.Sprint(len(d.Summary.ActiveConditions))}
	},
	func(d *PatientDetail) []any {
		return []any{"Medications", fmt.Sprint(d.Summary.MedicationsCount), fmt.Sprint(len(d.Summary.ActiveMedications))}
	},
	func(d *PatientDetail) []any {
		return []any{"Allergies", fmt.Sprint(d.Summary.AllergiesCount), "-"}
	},
	func(d *PatientDetail) []any {
		return []any{"Encounters", fmt.Sprint(d.Summary.EncountersCount), "-"}
	},
	func(d *PatientDetail) []any {
		return []any{"Procedures", fmt.Sprint(d.Summary.ProceduresCount), "-"}
	},
	func(d *PatientDetail) []any {
		return []any{"Immunizations", fmt.Sprint(d.Summary.ImmunizationsCount), "-"}
	},
	func(d *PatientDetail) []any {
		return []any{"Care plans", fmt.Sprint(len(d.CarePlans)), fmt.Sprint(d.Summary.ActiveCarePlanCount)}
	},
	func(d *PatientDetail) []any {
		return []any{"Observations (recent)", fmt.Sprint(len(d.RecentObservations)), "-"}
	},
}
