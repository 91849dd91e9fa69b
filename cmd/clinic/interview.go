package main

import (
	"context"
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	clinic "github.com/mutablelogic/go-clinic"
	config "github.com/mutablelogic/go-clinic/pkg/config"
	doctor "github.com/mutablelogic/go-clinic/pkg/doctor"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	interview "github.com/mutablelogic/go-clinic/pkg/interview"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type InterviewCommands struct {
	Interview InterviewCommand `cmd:"" name:"interview" help:"Interview a simulated patient with a chat model as the doctor." group:"INTERVIEW"`
	Script    ScriptCommand    `cmd:"" name:"script" help:"Interview a simulated patient with a fixed list of questions." group:"INTERVIEW"`
}

type AzureFlags struct {
	Endpoint    string   `name:"azure-endpoint" env:"AZURE_OPENAI_ENDPOINT" help:"Azure OpenAI endpoint"`
	Key         string   `name:"azure-key" env:"AZURE_OPENAI_API_KEY" help:"Azure OpenAI API key"`
	Deployment  string   `name:"azure-deployment" env:"AZURE_OPENAI_DEPLOYMENT" default:"${deployment}" help:"Chat model deployment"`
	APIVersion  string   `name:"azure-api-version" env:"AZURE_OPENAI_API_VERSION" default:"${api_version}" help:"Azure OpenAI API version"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature"`
}

type InterviewFlags struct {
	Task     schema.TaskType `name:"task" short:"t" env:"VIRTUAL_CLINIC_TASK_TYPE" help:"Task type" enum:"diagnosis,treatment,event" default:"${task_type}"`
	Patient  string          `name:"patient" short:"p" env:"VIRTUAL_CLINIC_PATIENT_ID" help:"Patient identifier. The first patient listed is used when not set"`
	Metadata *string         `name:"metadata" help:"Metadata to store with the conversation"`
}

type InterviewCommand struct {
	InterviewFlags `embed:""`
	AzureFlags     `embed:""`
	MaxTurns       uint `name:"max-turns" short:"n" help:"Maximum interview rounds" default:"${max_turns}"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *InterviewCommand) Run(ctx *Globals) (err error) {
	azure := config.Azure{
		Endpoint:   cmd.Endpoint,
		APIKey:     cmd.Key,
		Deployment: cmd.Deployment,
		APIVersion: cmd.APIVersion,
	}
	if err := azure.Validate(); err != nil {
		return err
	}
	if _, err := doctor.SystemPrompt(cmd.Task, ""); err != nil {
		return err
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()
	model, err := doctor.New(azure.Endpoint, azure.APIKey, azure.Deployment, azure.APIVersion, ctx.clientOpts()...)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "InterviewCommand")
	defer func() { endSpan(err) }()

	ctx.logger.Info("connecting", "endpoint", ctx.BaseURL, "deployment", model.Deployment(), "max_turns", cmd.MaxTurns)
	conversation, err := start(parent, ctx, client, cmd.InterviewFlags)
	if err != nil {
		return err
	}

	// The system prompt names the patient
	system, err := doctor.SystemPrompt(cmd.Task, conversation.PatientName)
	if err != nil {
		return err
	}
	opts := []doctor.ModelOpt{}
	if cmd.Temperature != nil {
		opts = append(opts, doctor.WithTemperature(*cmd.Temperature))
	}
	session, err := interview.New(client, doctor.NewModel(model, system, opts...), conversation.ID,
		interview.WithMaxTurns(cmd.MaxTurns),
		interview.WithWrapUp(interview.DefaultWrapUp),
		interview.WithLogger(ctx.logger),
		interview.WithObserver(ctx.console.Turn),
	)
	if err != nil {
		return err
	}

	ctx.console.Rule("Interview")
	result, err := session.Run(parent)
	if err != nil {
		return err
	}
	if result.Assessment != "" {
		ctx.console.Rule("Assessment")
		ctx.console.Markdown(result.Assessment)
	}
	ctx.console.Rule("Done")
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// start checks the service, chooses the patient and creates the conversation
func start(parent context.Context, ctx *Globals, client *httpclient.Client, flags InterviewFlags) (*schema.CreatedConversation, error) {
	health, err := client.Health(parent)
	if err != nil {
		return nil, err
	} else if !health.Healthy() {
		return nil, clinic.NewError(clinic.ErrServer, 0, fmt.Sprint("service is ", health.Status, ", database is ", health.Database), nil)
	}
	ctx.logger.InfoContext(parent, "service", "status", health.Status, "database", health.Database)

	patient, err := interview.ResolvePatient(parent, client.Patients, flags.Patient)
	if err != nil {
		return nil, err
	}
	conversation, err := client.Conversations.Create(parent, schema.CreateConversationRequest{
		PatientID: patient.Patient.ID,
		TaskType:  flags.Task,
		Metadata:  flags.Metadata,
	})
	if err != nil {
		return nil, err
	}

	ctx.console.Panel("Interview started", fmt.Sprintf("%s\nTask: %s  |  Conversation: %s",
		conversation.PatientName, doctor.Title(conversation.TaskType), conversation.ID,
	))
	return conversation, nil
}
