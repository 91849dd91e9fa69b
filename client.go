/*
clinic is a client for the Virtual Clinic API, which simulates patients for
clinical interviews. The error kinds returned by every call are defined
here, together with the interfaces implemented by the API client and by the
doctors which drive an interview.
*/
package clinic

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Messenger sends a message to a conversation and returns the reply
type Messenger interface {
	// SendMessage sends content to the conversation with the given id, and
	// returns the reply from the simulated patient
	SendMessage(ctx context.Context, id, content string) (*schema.AssistantMessage, error)
}

// Client is the interface that wraps the API client
type Client interface {
	Messenger

	// Health returns the liveness of the service and its database
	Health(ctx context.Context) (*schema.HealthStatus, error)

	// Close releases the client. Calls made afterwards fail with ErrClosed
	Close() error
}

// Doctor produces the doctor's side of an interview
type Doctor interface {
	// Ask returns what the doctor says next, given the interview so far.
	// It returns io.EOF when the doctor has nothing further to say.
	Ask(ctx context.Context, history []schema.Turn) (string, error)
}
