package interview_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	// Packages
	clinic "github.com/mutablelogic/go-clinic"
	doctor "github.com/mutablelogic/go-clinic/pkg/doctor"
	interview "github.com/mutablelogic/go-clinic/pkg/interview"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

///////////////////////////////////////////////////////////////////////////////
// FAKES

// patient echoes each message it receives
type patient struct {
	sent []string
	err  error
}

func (p *patient) SendMessage(_ context.Context, id, content string) (*schema.AssistantMessage, error) {
	if p.err != nil {
		return nil, p.err
	}
	p.sent = append(p.sent, content)
	return &schema.AssistantMessage{ConversationID: id, Role: schema.RoleAssistant, Content: "re: " + content}, nil
}

// talker always has another question, and records the history it was given
type talker struct {
	histories [][]schema.Turn
}

func (d *talker) Ask(_ context.Context, history []schema.Turn) (string, error) {
	d.histories = append(d.histories, append([]schema.Turn(nil), history...))
	if n := len(history); n > 0 && history[n-1].Content == interview.DefaultWrapUp {
		return "assessment", nil
	}
	return "question", nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func TestNewValidation(t *testing.T) {
	assert := assert.New(t)
	_, err := interview.New(nil, doctor.DefaultScript(), "c1")
	assert.ErrorIs(err, clinic.ErrBadParameter)
	_, err = interview.New(&patient{}, doctor.DefaultScript(), "")
	assert.ErrorIs(err, clinic.ErrBadParameter)
	_, err = interview.New(&patient{}, doctor.DefaultScript(), "c1", interview.WithMaxTurns(0))
	assert.ErrorIs(err, clinic.ErrBadParameter)
}

func TestScriptedInterview(t *testing.T) {
	assert := assert.New(t)
	messenger := &patient{}
	script := doctor.DefaultScript()

	var observed []schema.Turn
	i, err := interview.New(messenger, script, "c1",
		interview.WithWrapUp(interview.DefaultWrapUp),
		interview.WithObserver(func(turn schema.Turn) { observed = append(observed, turn) }),
		interview.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(uint(5), result.Turns)
	assert.False(result.Limited)
	assert.Empty(result.Assessment)
	assert.Equal(script.Questions, messenger.sent)
	assert.Len(result.History, 10)
	assert.Equal(result.History, observed)
	assert.Equal(schema.Turn{Speaker: schema.SpeakerPatient, Content: "re: " + script.Questions[0]}, result.History[1])
}

func TestTurnLimitWithWrapUp(t *testing.T) {
	assert := assert.New(t)
	messenger := &patient{}
	d := &talker{}

	i, err := interview.New(messenger, d, "c1",
		interview.WithMaxTurns(3),
		interview.WithWrapUp(interview.DefaultWrapUp),
	)
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(uint(3), result.Turns)
	assert.True(result.Limited)
	assert.Equal("assessment", result.Assessment)
	assert.Len(messenger.sent, 3)

	// The wrap-up request is not sent to the conversation
	assert.NotContains(messenger.sent, interview.DefaultWrapUp)

	// The doctor sees the wrap-up request as the patient's last turn
	require.Len(t, d.histories, 4)
	last := d.histories[3]
	assert.Equal(schema.Turn{Speaker: schema.SpeakerPatient, Content: interview.DefaultWrapUp}, last[len(last)-1])
	assert.Equal(schema.Turn{Speaker: schema.SpeakerDoctor, Content: "assessment"}, result.History[len(result.History)-1])
}

// silentCompleter answers every question until the wrap-up request, and
// then returns an empty completion
type silentCompleter struct{}

func (silentCompleter) Complete(_ context.Context, req doctor.Request) (*doctor.Response, error) {
	content := "question"
	if last := req.Messages[len(req.Messages)-1]; last.Content == interview.DefaultWrapUp {
		content = ""
	}
	return &doctor.Response{Choices: []doctor.Choice{{Message: doctor.Message{Role: doctor.RoleAssistant, Content: content}}}}, nil
}

func TestEmptyAssessment(t *testing.T) {
	assert := assert.New(t)
	messenger := &patient{}
	i, err := interview.New(messenger, doctor.NewModel(silentCompleter{}, "system"), "c1",
		interview.WithMaxTurns(2),
		interview.WithWrapUp(interview.DefaultWrapUp),
	)
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	require.NoError(t, err)
	assert.True(result.Limited)
	assert.Empty(result.Assessment)
	assert.Len(messenger.sent, 2)
	assert.Equal(schema.Turn{Speaker: schema.SpeakerPatient, Content: interview.DefaultWrapUp}, result.History[len(result.History)-1])
}

func TestTurnLimitWithoutWrapUp(t *testing.T) {
	assert := assert.New(t)
	d := &talker{}
	i, err := interview.New(&patient{}, d, "c1", interview.WithMaxTurns(2))
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	require.NoError(t, err)
	assert.True(result.Limited)
	assert.Empty(result.Assessment)
	assert.Len(d.histories, 2)
	assert.Len(result.History, 4)
}

func TestMessengerError(t *testing.T) {
	assert := assert.New(t)
	failure := clinic.NewError(clinic.ErrAuthentication, 401, "Invalid token", nil)
	i, err := interview.New(&patient{err: failure}, doctor.DefaultScript(), "c1")
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	assert.ErrorIs(err, clinic.ErrAuthentication)
	assert.Equal(uint(0), result.Turns)
	assert.Len(result.History, 1)
}

func TestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	i, err := interview.New(&patient{}, doctor.DefaultScript(), "c1")
	require.NoError(t, err)

	_, err = i.Run(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDoctorEOF(t *testing.T) {
	assert := assert.New(t)
	eof := doctorFunc(func(context.Context, []schema.Turn) (string, error) { return "", io.EOF })
	i, err := interview.New(&patient{}, eof, "c1", interview.WithWrapUp(interview.DefaultWrapUp))
	require.NoError(t, err)

	result, err := i.Run(context.Background())
	assert.NoError(err)
	assert.Empty(result.History)
	assert.False(result.Limited)
}

type doctorFunc func(context.Context, []schema.Turn) (string, error)

func (fn doctorFunc) Ask(ctx context.Context, history []schema.Turn) (string, error) {
	return fn(ctx, history)
}
