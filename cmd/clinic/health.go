package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type HealthCommands struct {
	Health HealthCommand `cmd:"" name:"health" help:"Check the service and database." group:"SERVICE"`
}

type HealthCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *HealthCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "HealthCommand")
	defer func() { endSpan(err) }()

	// A degraded service returns its health alongside the error
	health, err := client.Health(parent)
	if health == nil {
		return err
	}
	if err := ctx.print(health, func() {
		ctx.console.Field("Status", health.Status)
		ctx.console.Field("Service", health.Service)
		ctx.console.Field("Timestamp", health.Timestamp)
		ctx.console.Field("Database", health.Database)
		if health.DbLatencyMs != nil {
			ctx.console.Field("Latency", fmt.Sprint(*health.DbLatencyMs, "ms"))
		}
		if health.Error != nil {
			ctx.console.Warn(*health.Error)
		}
	}); err != nil {
		return err
	}
	return err
}
