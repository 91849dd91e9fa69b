/*
schema contains the request and response types for the Virtual Clinic REST
API. Field names follow Go conventions and carry the camelCase keys used on
the wire.
*/
package schema

////////////////////////////////////////////////////////////////////////////////
// TYPES

// TaskType is the clinical objective of a conversation
type TaskType string

// MessageRole is the author of a message within a conversation
type MessageRole string

// ServiceStatus is the overall liveness of the API
type ServiceStatus string

// DatabaseStatus is the connectivity of the API to its database
type DatabaseStatus string

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TaskDiagnosis TaskType = "diagnosis"
	TaskTreatment TaskType = "treatment"
	TaskEvent     TaskType = "event"
)

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

const (
	StatusOK       ServiceStatus = "ok"
	StatusDegraded ServiceStatus = "degraded"
)

const (
	DatabaseConnected    DatabaseStatus = "connected"
	DatabaseDisconnected DatabaseStatus = "disconnected"
)

// TaskTypes lists every task type accepted by the API
var TaskTypes = []TaskType{TaskDiagnosis, TaskTreatment, TaskEvent}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t TaskType) Valid() bool {
	switch t {
	case TaskDiagnosis, TaskTreatment, TaskEvent:
		return true
	}
	return false
}

func (r MessageRole) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

func (s ServiceStatus) Valid() bool {
	return s == StatusOK || s == StatusDegraded
}

func (s DatabaseStatus) Valid() bool {
	return s == DatabaseConnected || s == DatabaseDisconnected
}
