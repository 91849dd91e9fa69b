package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// CreateConversationRequest is the body of POST /api/conversations
type CreateConversationRequest struct {
	PatientID string   `json:"patientId"`
	TaskType  TaskType `json:"taskType"`
	Metadata  *string  `json:"metadata,omitempty"`
}

// SendMessageRequest is the body of POST /api/conversations/{id}/messages.
// The server accepts between 1 and 4096 characters of content.
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ErrorResponse is the body returned with any non-success status
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

// DataResponse wraps a single resource returned by the API
type DataResponse[T any] struct {
	Data T `json:"data"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CreateConversationRequest) String() string {
	return types.Stringify(r)
}

func (r SendMessageRequest) String() string {
	return types.Stringify(r)
}

func (r ErrorResponse) String() string {
	return types.Stringify(r)
}
