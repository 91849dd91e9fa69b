package schema_test

import (
	"encoding/json"
	"strings"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	table "github.com/mutablelogic/go-clinic/pkg/ui/table"
	types "github.com/mutablelogic/go-server/pkg/types"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

const patientDetailFixture = `{
	"patient": {
		"id": "9f1c", "first": "Ada", "last": "Lovelace", "birthDate": "1815-12-10",
		"deathDate": "1852-11-27", "gender": "F", "race": "white", "ethnicity": "nonhispanic",
		"marital": "M", "birthplace": "London", "address": "12 St James's Square",
		"city": "London", "state": "Middlesex", "zip": "SW1Y"
	},
	"summary": {
		"conditionsCount": 2, "activeConditions": ["Hypertension"],
		"medicationsCount": 1, "activeMedications": ["Lisinopril 10 MG"],
		"allergiesCount": 1, "allergies": ["Penicillin"],
		"encountersCount": 1, "proceduresCount": 1, "immunizationsCount": 1,
		"activeCareplanCount": 1
	},
	"conditions": [
		{"start": "2020-01-01", "stop": null, "patientId": "9f1c", "encounterId": "e1", "system": "SNOMED-CT", "code": "38341003", "description": "Hypertension"},
		{"start": "2019-01-01", "stop": "2019-02-01", "patientId": "9f1c", "encounterId": null, "system": null, "code": "444814009", "description": "Viral sinusitis"}
	],
	"medications": [
		{"start": "2020-01-02", "stop": null, "patientId": "9f1c", "payerId": "py1", "encounterId": "e1", "code": "314076",
		 "description": "Lisinopril 10 MG", "baseCost": "12.5", "payerCoverage": "10", "dispenses": "12",
		 "totalCost": "150", "reasonCode": "38341003", "reasonDescription": "Hypertension"}
	],
	"allergies": [
		{"start": "2001-05-01", "stop": null, "patientId": "9f1c", "encounterId": "e1", "code": "7980", "system": "RxNorm",
		 "description": "Penicillin", "type": "allergy", "category": "medication", "reaction1": "247472004",
		 "description1": "Hives", "severity1": "MILD", "reaction2": "39579001", "description2": "Anaphylaxis", "severity2": "SEVERE"}
	],
	"procedures": [
		{"start": "2020-01-01T09:00:00Z", "stop": "2020-01-01T09:30:00Z", "patientId": "9f1c", "encounterId": "e1",
		 "code": "430193006", "description": "Medication reconciliation", "baseCost": "400",
		 "reasonCode": "38341003", "reasonDescription": "Hypertension"}
	],
	"careplans": [
		{"id": "cp1", "start": "2020-01-01", "stop": null, "patientId": "9f1c", "encounterId": "e1", "code": "443402002",
		 "description": "Lifestyle education", "reasonCode": "38341003", "reasonDescription": "Hypertension"}
	],
	"recentObservations": [
		{"date": "2020-01-01T09:00:00Z", "patientId": "9f1c", "encounterId": "e1", "category": "vital-signs",
		 "code": "8480-6", "description": "Systolic Blood Pressure", "value": "145", "units": "mm[Hg]", "type": "numeric"}
	],
	"encounters": [
		{"id": "e1", "start": "2020-01-01T09:00:00Z", "stop": "2020-01-01T10:00:00Z", "patientId": "9f1c",
		 "organizationId": "o1", "providerId": "pr1", "payerId": "py1", "encounterClass": "ambulatory",
		 "code": "185349003", "description": "Check up", "baseCost": "129", "totalClaimCost": "500",
		 "payerCoverage": "400", "reasonCode": "38341003", "reasonDescription": "Hypertension"}
	],
	"immunizations": [
		{"date": "2020-01-01T09:00:00Z", "patientId": "9f1c", "encounterId": "e1", "code": "140",
		 "description": "Influenza", "baseCost": "136"}
	]
}`

func TestPatientDetailRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var detail schema.PatientDetail
	require.NoError(t, json.Unmarshal([]byte(patientDetailFixture), &detail))
	data, err := json.Marshal(detail)
	require.NoError(t, err)

	var expected, actual any
	require.NoError(t, json.Unmarshal([]byte(patientDetailFixture), &expected))
	require.NoError(t, json.Unmarshal(data, &actual))
	assert.Equal(expected, actual)

	assert.Equal("Ada Lovelace", detail.Patient.Name())
	assert.True(detail.Patient.Deceased())
	assert.True(detail.Conditions[0].Active())
	assert.False(detail.Conditions[1].Active())
	assert.True(detail.CarePlans[0].Active())
	assert.True(detail.Medications[0].Active())
	assert.Nil(detail.Conditions[1].EncounterID)
}

func TestNullAndEmptyOptionalFields(t *testing.T) {
	assert := assert.New(t)
	fixture := `[
		{"start": "s", "stop": "", "patientId": "p", "encounterId": "", "system": null, "code": "c", "description": "d"},
		{"start": "s", "stop": null, "patientId": "p", "encounterId": null, "system": "", "code": "c", "description": "d"}
	]`

	var conditions []schema.Condition
	require.NoError(t, json.Unmarshal([]byte(fixture), &conditions))
	data, err := json.Marshal(conditions)
	require.NoError(t, err)
	assert.JSONEq(fixture, string(data))

	// An empty stop date is still active
	if assert.NotNil(conditions[0].Stop) {
		assert.Equal("", *conditions[0].Stop)
	}
	assert.True(conditions[0].Active())
	assert.Nil(conditions[1].Stop)
	assert.True(conditions[1].Active())

	var summary schema.PatientSummary
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p","first":"A","last":"B","birthDate":"b","deathDate":null,"gender":"F","race":"","ethnicity":null,"city":"Boston","state":null}`), &summary))
	data, err = json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(`{"id":"p","first":"A","last":"B","birthDate":"b","deathDate":null,"gender":"F","race":"","ethnicity":null,"city":"Boston","state":null}`, string(data))
	assert.Equal("Boston", summary.Location())
}

func TestConversationRoundTrip(t *testing.T) {
	assert := assert.New(t)
	fixture := `{
		"id": "c1", "patientId": "p1", "patientName": "Ada Lovelace", "taskType": "diagnosis",
		"createdAt": "2026-01-01T00:00:00.000Z", "updatedAt": "2026-01-01T00:02:00.000Z",
		"metadata": "{\"cohort\":\"a\"}",
		"messages": [
			{"id": "m1", "role": "system", "content": "You are Ada", "createdAt": "2026-01-01T00:00:00.000Z"},
			{"id": "m2", "role": "user", "content": "Hello", "createdAt": "2026-01-01T00:01:00.000Z"},
			{"id": "m3", "role": "assistant", "content": "Hi doctor", "createdAt": "2026-01-01T00:02:00.000Z"}
		]
	}`

	var conversation schema.ConversationWithMessages
	require.NoError(t, json.Unmarshal([]byte(fixture), &conversation))
	data, err := json.Marshal(conversation)
	require.NoError(t, err)

	var expected, actual any
	require.NoError(t, json.Unmarshal([]byte(fixture), &expected))
	require.NoError(t, json.Unmarshal(data, &actual))
	assert.Equal(expected, actual)

	transcript := conversation.Transcript()
	if assert.Len(transcript, 2) {
		assert.Equal("m2", transcript[0].ID)
	}

	turns := schema.Turns(conversation.Messages)
	if assert.Len(turns, 2) {
		assert.Equal(schema.SpeakerDoctor, turns[0].Speaker)
		assert.Equal(schema.SpeakerPatient, turns[1].Speaker)
		assert.Equal("Hi doctor", turns[1].Content)
	}
}

func TestHealthOptionalFields(t *testing.T) {
	assert := assert.New(t)

	var health schema.HealthStatus
	require.NoError(t, json.Unmarshal([]byte(`{"status":"ok","service":"x","timestamp":"t","database":"connected","dbLatencyMs":12}`), &health))
	if assert.NotNil(health.DbLatencyMs) {
		assert.Equal(12, *health.DbLatencyMs)
	}
	assert.Nil(health.Error)
	assert.True(health.Healthy())

	data, err := json.Marshal(health)
	require.NoError(t, err)
	assert.NotContains(string(data), `"error"`)
}

func TestCreateConversationRequest(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(schema.CreateConversationRequest{PatientID: "p1", TaskType: schema.TaskEvent})
	require.NoError(t, err)
	assert.JSONEq(`{"patientId":"p1","taskType":"event"}`, string(data))

	metadata := "cohort-a"
	data, err = json.Marshal(schema.CreateConversationRequest{PatientID: "p1", TaskType: schema.TaskEvent, Metadata: &metadata})
	require.NoError(t, err)
	assert.JSONEq(`{"patientId":"p1","taskType":"event","metadata":"cohort-a"}`, string(data))
}

func TestPagination(t *testing.T) {
	tests := []struct {
		pagination schema.Pagination
		next       bool
		previous   bool
		nextPage   uint
	}{
		{schema.Pagination{Page: 1, Limit: 20, Total: 37, TotalPages: 2}, true, false, 2},
		{schema.Pagination{Page: 2, Limit: 20, Total: 37, TotalPages: 2}, false, true, 0},
		{schema.Pagination{Page: 1, Limit: 20, Total: 0, TotalPages: 0}, false, false, 0},
		{schema.Pagination{Page: 3, Limit: 5, Total: 30, TotalPages: 6}, true, true, 4},
	}
	for _, test := range tests {
		t.Run(test.pagination.String(), func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(test.next, test.pagination.HasNext())
			assert.Equal(test.previous, test.pagination.HasPrevious())
			assert.Equal(test.nextPage, test.pagination.NextPage())
		})
	}
}

func TestEnums(t *testing.T) {
	assert := assert.New(t)
	for _, task := range schema.TaskTypes {
		assert.True(task.Valid(), task)
	}
	assert.False(schema.TaskType("surgery").Valid())
	assert.True(schema.RoleAssistant.Valid())
	assert.False(schema.MessageRole("doctor").Valid())
	assert.True(schema.StatusDegraded.Valid())
	assert.False(schema.ServiceStatus("down").Valid())
	assert.True(schema.DatabaseDisconnected.Valid())
	assert.Equal(schema.RoleUser, schema.SpeakerDoctor.Role())
	assert.Equal(schema.RoleAssistant, schema.SpeakerPatient.Role())
}

func TestMessageTable(t *testing.T) {
	assert := assert.New(t)
	messages := []schema.Message{
		{ID: "m1", Role: schema.RoleSystem, Content: "secret prompt"},
		{ID: "m2", Role: schema.RoleUser, Content: "What brings you in?"},
		{ID: "m3", Role: schema.RoleAssistant, Content: "My head hurts"},
	}

	output := table.Render(schema.MessageTable{Messages: messages}, 0)
	assert.NotContains(output, "secret prompt")
	assert.Contains(output, "What brings you in?")
	assert.Contains(output, "My head hurts")

	output = table.Render(schema.MessageTable{Messages: messages, ShowSystem: true}, 0)
	assert.Contains(output, "secret prompt")
}

func TestPatientTable(t *testing.T) {
	assert := assert.New(t)
	patients := schema.PatientTable{
		{ID: "p1", First: "Ada", Last: "Lovelace", Gender: "F", City: types.Ptr("London"), State: types.Ptr("Middlesex")},
		{ID: "p2", First: "Alan", Last: "Turing", Gender: "M"},
	}
	assert.Equal(2, patients.Len())
	assert.Equal("London, Middlesex", patients.Row(0)[4])

	output := table.Render(patients, 0)
	assert.Contains(output, "Ada Lovelace")
	assert.Contains(output, "Alan Turing")
	assert.True(strings.Contains(output, "PATIENT"))
}

func TestRecordTable(t *testing.T) {
	assert := assert.New(t)
	var detail schema.PatientDetail
	require.NoError(t, json.Unmarshal([]byte(patientDetailFixture), &detail))

	records := schema.RecordTable{PatientDetail: &detail}
	assert.Equal("Conditions", records.Row(0)[0])
	assert.Equal("2", records.Row(0)[1])
	assert.Equal("1", records.Row(0)[2])
}
