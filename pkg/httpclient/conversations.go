package httpclient

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clinic "github.com/mutablelogic/go-clinic"
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversations groups the conversation endpoints
type Conversations struct {
	*Client
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List returns a page of conversations. Results can be filtered with
// WithPatient and WithTaskType, and paged with WithPage and WithLimit.
func (c *Conversations) List(ctx context.Context, opts ...opt.Opt) (_ *schema.ConversationList, err error) {
	query, err := listQuery(opts, opt.PatientKey, opt.TaskTypeKey)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}

	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "ListConversations",
		attribute.String("query", query.Encode()),
	)
	defer func() { endSpan(err) }()

	var response schema.ConversationList
	if err := c.do(ctx, client.NewRequest(), &response, client.OptPath("api", "conversations"), client.OptQuery(query)); err != nil {
		return nil, err
	}

	// Return success
	return &response, nil
}

// Create starts a conversation with a patient for the given task
func (c *Conversations) Create(ctx context.Context, req schema.CreateConversationRequest) (_ *schema.CreatedConversation, err error) {
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "CreateConversation",
		attribute.String("request", req.String()),
	)
	defer func() { endSpan(err) }()

	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}

	var response schema.DataResponse[schema.CreatedConversation]
	if err := c.do(ctx, payload, &response, client.OptPath("api", "conversations")); err != nil {
		return nil, err
	}

	// Return success
	return &response.Data, nil
}

// Get returns a conversation with its messages, in the order the server
// recorded them
func (c *Conversations) Get(ctx context.Context, id string) (_ *schema.ConversationWithMessages, err error) {
	if id == "" {
		return nil, clinic.ErrBadParameter.With("missing conversation id")
	}

	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "GetConversation",
		attribute.String("id", id),
	)
	defer func() { endSpan(err) }()

	var response schema.DataResponse[schema.ConversationWithMessages]
	if err := c.do(ctx, client.NewRequest(), &response, client.OptPath("api", "conversations", id)); err != nil {
		return nil, err
	}

	// Return success
	return &response.Data, nil
}

// SendMessage sends content as the doctor and returns the reply from the
// simulated patient. The server accepts between 1 and 4096 characters and
// fails with clinic.ErrValidation otherwise.
func (c *Conversations) SendMessage(ctx context.Context, id, content string) (_ *schema.AssistantMessage, err error) {
	if id == "" {
		return nil, clinic.ErrBadParameter.With("missing conversation id")
	}

	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "SendMessage",
		attribute.String("id", id),
		attribute.Int("length", len(content)),
	)
	defer func() { endSpan(err) }()

	payload, err := client.NewJSONRequest(schema.SendMessageRequest{Content: content})
	if err != nil {
		return nil, clinic.ErrBadParameter.With(err)
	}

	var response schema.DataResponse[schema.AssistantMessage]
	if err := c.do(ctx, payload, &response, client.OptPath("api", "conversations", id, "messages")); err != nil {
		return nil, err
	}

	// Return success
	return &response.Data, nil
}
