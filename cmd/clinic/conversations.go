package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	opt "github.com/mutablelogic/go-clinic/pkg/opt"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ConversationCommands struct {
	ListConversations  ListConversationsCommand  `cmd:"" name:"conversations" help:"List conversations." group:"CONVERSATION"`
	GetConversation    GetConversationCommand    `cmd:"" name:"conversation" help:"Get a conversation with its messages." group:"CONVERSATION"`
	CreateConversation CreateConversationCommand `cmd:"" name:"create" help:"Create a conversation with a patient." group:"CONVERSATION"`
	SendMessage        SendMessageCommand        `cmd:"" name:"send" help:"Send a message and print the patient's reply." group:"CONVERSATION"`
}

type ListConversationsCommand struct {
	Patient string          `name:"patient" help:"Filter by patient identifier"`
	Task    schema.TaskType `name:"task" help:"Filter by task type"`
	Page    uint            `name:"page" help:"Page number" default:"1"`
	Limit   uint            `name:"limit" help:"Conversations per page (1-100)" default:"20"`
}

type GetConversationCommand struct {
	ID     string `arg:"" name:"id" help:"Conversation identifier"`
	System bool   `name:"system" help:"Include the system prompt"`
}

type CreateConversationCommand struct {
	Patient  string          `name:"patient" env:"VIRTUAL_CLINIC_PATIENT_ID" required:"" help:"Patient identifier"`
	Task     schema.TaskType `name:"task" env:"VIRTUAL_CLINIC_TASK_TYPE" help:"Task type" enum:"diagnosis,treatment,event" default:"${task_type}"`
	Metadata *string         `name:"metadata" help:"Metadata to store with the conversation"`
}

type SendMessageCommand struct {
	ID      string `arg:"" name:"id" help:"Conversation identifier"`
	Content string `arg:"" name:"content" help:"Message from the doctor"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListConversationsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListConversationsCommand")
	defer func() { endSpan(err) }()

	opts := []opt.Opt{
		httpclient.WithPage(cmd.Page),
		httpclient.WithLimit(cmd.Limit),
		httpclient.WithPatient(cmd.Patient),
		httpclient.WithTaskType(cmd.Task),
	}
	response, err := client.Conversations.List(parent, opts...)
	if err != nil {
		return err
	}
	return ctx.print(response, func() {
		ctx.console.Table(schema.ConversationTable(response.Data))
		ctx.console.Println(pageInfo(response.Pagination))
	})
}

func (cmd *GetConversationCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetConversationCommand")
	defer func() { endSpan(err) }()

	conversation, err := client.Conversations.Get(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.print(conversation, func() {
		ctx.console.Rule(conversation.PatientName)
		ctx.console.Field("Conversation", conversation.ID)
		ctx.console.Field("Task", conversation.TaskType)
		ctx.console.Field("Created", conversation.CreatedAt)
		if conversation.Metadata != nil {
			ctx.console.Field("Metadata", *conversation.Metadata)
		}
		ctx.console.Println()
		for _, message := range conversation.Messages {
			if message.Role == schema.RoleSystem && !cmd.System {
				continue
			}
			ctx.console.Message(message)
		}
	})
}

func (cmd *CreateConversationCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CreateConversationCommand")
	defer func() { endSpan(err) }()

	created, err := client.Conversations.Create(parent, schema.CreateConversationRequest{
		PatientID: cmd.Patient,
		TaskType:  cmd.Task,
		Metadata:  cmd.Metadata,
	})
	if err != nil {
		return err
	}
	return ctx.print(created, func() {
		ctx.console.Field("Conversation", created.ID)
		ctx.console.Field("Patient", created.PatientName)
		ctx.console.Field("Task", created.TaskType)
		ctx.console.Field("Created", created.CreatedAt)
	})
}

func (cmd *SendMessageCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SendMessageCommand")
	defer func() { endSpan(err) }()

	reply, err := client.SendMessage(parent, cmd.ID, cmd.Content)
	if err != nil {
		return err
	}
	return ctx.print(reply, func() {
		ctx.console.Turn(schema.Turn{Speaker: schema.SpeakerPatient, Content: reply.Content})
	})
}
