package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// ConversationSummary is a conversation without its messages, as returned by
// the list endpoint
type ConversationSummary struct {
	ID          string   `json:"id"`
	PatientID   string   `json:"patientId"`
	PatientName string   `json:"patientName"`
	TaskType    TaskType `json:"taskType"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	Metadata    *string  `json:"metadata,omitempty"`
}

// ConversationWithMessages is the response from GET /api/conversations/{id}.
// Messages are in the order returned by the server.
type ConversationWithMessages struct {
	ConversationSummary
	Messages []Message `json:"messages"`
}

// CreatedConversation is the response from POST /api/conversations
type CreatedConversation struct {
	ID          string   `json:"id"`
	PatientID   string   `json:"patientId"`
	TaskType    TaskType `json:"taskType"`
	PatientName string   `json:"patientName"`
	CreatedAt   string   `json:"createdAt"`
}

// Message is a single turn within a conversation
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	CreatedAt string      `json:"createdAt"`
}

// AssistantMessage is the simulated patient's reply, as returned by
// POST /api/conversations/{id}/messages
type AssistantMessage struct {
	ConversationID string      `json:"conversationId"`
	Role           MessageRole `json:"role"`
	Content        string      `json:"content"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Transcript returns the messages excluding system prompts
func (c ConversationWithMessages) Transcript() []Message {
	result := make([]Message, 0, len(c.Messages))
	for _, message := range c.Messages {
		if message.Role == RoleSystem {
			continue
		}
		result = append(result, message)
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c ConversationSummary) String() string {
	return types.Stringify(c)
}

func (c ConversationWithMessages) String() string {
	return types.Stringify(c)
}

func (c CreatedConversation) String() string {
	return types.Stringify(c)
}

func (m Message) String() string {
	return types.Stringify(m)
}

func (m AssistantMessage) String() string {
	return types.Stringify(m)
}
