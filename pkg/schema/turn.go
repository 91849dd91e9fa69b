package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Speaker is a participant in an interview
type Speaker string

// Turn is one utterance in an interview, as seen by the doctor
type Turn struct {
	Speaker Speaker `json:"speaker" yaml:"speaker"`
	Content string  `json:"content" yaml:"content"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SpeakerDoctor  Speaker = "doctor"
	SpeakerPatient Speaker = "patient"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Role returns the message role the API records for the speaker. Doctor
// messages are sent as the user; the simulated patient is the assistant.
func (s Speaker) Role() MessageRole {
	if s == SpeakerPatient {
		return RoleAssistant
	}
	return RoleUser
}

// Turns converts conversation messages to interview turns, dropping
// system messages
func Turns(messages []Message) []Turn {
	result := make([]Turn, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleUser:
			result = append(result, Turn{Speaker: SpeakerDoctor, Content: m.Content})
		case RoleAssistant:
			result = append(result, Turn{Speaker: SpeakerPatient, Content: m.Content})
		}
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (t Turn) String() string {
	return types.Stringify(t)
}
