/*
interview runs a clinical interview between a doctor and a simulated patient.

Each round the doctor is asked for its next message, which is sent to the
conversation, and the patient's reply is added to the history. The
interview ends when the doctor has nothing further to ask, or when the turn
limit is reached. At the limit, a doctor can be asked once more for its
assessment.
*/
package interview

import (
	"context"
	"errors"
	"io"
	"log/slog"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Interview is a single interview in a conversation
type Interview struct {
	messenger    clinic.Messenger
	doctor       clinic.Doctor
	conversation string
	maxTurns     uint
	wrapUp       string
	logger       *slog.Logger
	observer     Observer
}

// Observer is called with each turn as it happens
type Observer func(schema.Turn)

// Result is the outcome of an interview
type Result struct {
	// History of the interview, including any wrap-up request
	History []schema.Turn

	// Number of rounds completed
	Turns uint

	// Assessment given after the turn limit was reached, or empty
	Assessment string

	// True if the turn limit ended the interview
	Limited bool
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultMaxTurns = 10
	DefaultWrapUp   = "Please wrap up the interview and provide your diagnostic assessment now."
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns an interview in the conversation with the given id
func New(messenger clinic.Messenger, doctor clinic.Doctor, conversation string, opts ...Opt) (*Interview, error) {
	if messenger == nil || doctor == nil {
		return nil, clinic.ErrBadParameter.With("missing messenger or doctor")
	}
	if conversation == "" {
		return nil, clinic.ErrBadParameter.With("missing conversation id")
	}
	i := &Interview{
		messenger:    messenger,
		doctor:       doctor,
		conversation: conversation,
		maxTurns:     DefaultMaxTurns,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run conducts the interview. On error, the result holds the history up to
// the failure.
func (i *Interview) Run(ctx context.Context) (*Result, error) {
	result := new(Result)
	for result.Turns < i.maxTurns {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		i.logger.InfoContext(ctx, "turn", "turn", result.Turns+1, "max", i.maxTurns)

		// Doctor
		question, err := i.doctor.Ask(ctx, result.History)
		if errors.Is(err, io.EOF) {
			i.logger.DebugContext(ctx, "doctor has no further questions", "turns", result.Turns)
			return result, nil
		} else if err != nil {
			return result, err
		}
		i.append(result, schema.SpeakerDoctor, question)

		// Patient
		reply, err := i.messenger.SendMessage(ctx, i.conversation, question)
		if err != nil {
			return result, err
		}
		i.append(result, schema.SpeakerPatient, reply.Content)
		result.Turns++
	}

	// Turn limit reached
	result.Limited = true
	if i.wrapUp == "" {
		return result, nil
	}
	i.logger.WarnContext(ctx, "turn limit reached, asking for assessment", "max", i.maxTurns)
	i.append(result, schema.SpeakerPatient, i.wrapUp)
	assessment, err := i.doctor.Ask(ctx, result.History)
	if errors.Is(err, io.EOF) {
		return result, nil
	} else if err != nil {
		return result, err
	}
	result.Assessment = assessment
	i.append(result, schema.SpeakerDoctor, assessment)

	// Return success
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (i *Interview) append(result *Result, speaker schema.Speaker, content string) {
	turn := schema.Turn{Speaker: speaker, Content: content}
	result.History = append(result.History, turn)
	if i.observer != nil {
		i.observer(turn)
	}
}
