package doctor

import (
	"context"
	"io"
	"strings"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Completer returns the next message in a chat
type Completer interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}

// Model is a doctor whose questions are generated by a chat model
type Model struct {
	completer   Completer
	system      string
	temperature *float64
}

// ModelOpt sets an option on a Model
type ModelOpt func(*Model)

var _ clinic.Doctor = (*Model)(nil)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewModel returns a doctor which sends the system prompt followed by the
// interview so far to the completer
func NewModel(completer Completer, system string, opts ...ModelOpt) *Model {
	m := &Model{completer: completer, system: system}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithTemperature sets the sampling temperature
func WithTemperature(v float64) ModelOpt {
	return func(m *Model) {
		m.temperature = &v
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask returns the doctor's next message, or io.EOF when the model has nothing
// further to say. The doctor's own turns are sent with the assistant role,
// and the patient's with the user role.
func (m *Model) Ask(ctx context.Context, history []schema.Turn) (string, error) {
	response, err := m.completer.Complete(ctx, Request{
		Messages:    m.Messages(history),
		Temperature: m.temperature,
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", io.EOF
	}
	return text, nil
}

// Messages returns the chat messages for the interview so far
func (m *Model) Messages(history []schema.Turn) []Message {
	messages := make([]Message, 0, len(history)+1)
	if m.system != "" {
		messages = append(messages, Message{Role: RoleSystem, Content: m.system})
	}
	for _, turn := range history {
		switch turn.Speaker {
		case schema.SpeakerDoctor:
			messages = append(messages, Message{Role: RoleAssistant, Content: turn.Content, Name: string(schema.SpeakerDoctor)})
		case schema.SpeakerPatient:
			messages = append(messages, Message{Role: RoleUser, Content: turn.Content, Name: string(schema.SpeakerPatient)})
		}
	}
	return messages
}
