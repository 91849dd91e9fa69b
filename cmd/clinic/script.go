package main

import (
	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	doctor "github.com/mutablelogic/go-clinic/pkg/doctor"
	interview "github.com/mutablelogic/go-clinic/pkg/interview"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ScriptCommand struct {
	InterviewFlags `embed:""`
	File           string `arg:"" name:"file" help:"YAML file with the questions to ask" type:"existingfile" optional:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ScriptCommand) Run(ctx *Globals) (err error) {
	script := doctor.DefaultScript()
	if cmd.File != "" {
		if script, err = doctor.LoadScript(cmd.File); err != nil {
			return err
		}
	}

	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ScriptCommand")
	defer func() { endSpan(err) }()

	// A task in the script applies unless set on the command line
	flags := cmd.InterviewFlags
	if script.Task != "" && flags.Task == schema.TaskDiagnosis {
		flags.Task = script.Task
	}
	conversation, err := start(parent, ctx, client, flags)
	if err != nil {
		return err
	}

	session, err := interview.New(client, script, conversation.ID,
		interview.WithMaxTurns(uint(len(script.Questions))),
		interview.WithLogger(ctx.logger),
		interview.WithObserver(ctx.console.Turn),
	)
	if err != nil {
		return err
	}
	ctx.console.Rule("Interview")
	if _, err := session.Run(parent); err != nil {
		return err
	}

	// Review the history held by the server
	history, err := client.Conversations.Get(parent, conversation.ID)
	if err != nil {
		return err
	}
	return ctx.print(history, func() {
		ctx.console.Rule("Conversation history")
		ctx.console.Field("Conversation", history.ID)
		ctx.console.Field("Patient", history.PatientName)
		ctx.console.Field("Task", history.TaskType)
		ctx.console.Field("Messages", len(history.Messages))
		ctx.console.Println()
		ctx.console.Table(schema.MessageTable{Messages: history.Messages})
	})
}
