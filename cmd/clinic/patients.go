package main

import (
	"fmt"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type PatientCommands struct {
	ListPatients ListPatientsCommand `cmd:"" name:"patients" help:"List patients (admin token)." group:"PATIENT"`
	GetPatient   GetPatientCommand   `cmd:"" name:"patient" help:"Get a patient record (admin token)." group:"PATIENT"`
}

type ListPatientsCommand struct {
	Page  uint `name:"page" help:"Page number" default:"1"`
	Limit uint `name:"limit" help:"Patients per page (1-100)" default:"20"`
}

type GetPatientCommand struct {
	ID string `arg:"" name:"id" help:"Patient identifier"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ListPatientsCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ListPatientsCommand")
	defer func() { endSpan(err) }()

	response, err := client.Patients.List(parent, httpclient.WithPage(cmd.Page), httpclient.WithLimit(cmd.Limit))
	if err != nil {
		return err
	}
	return ctx.print(response, func() {
		ctx.console.Table(schema.PatientTable(response.Data))
		ctx.console.Println(pageInfo(response.Pagination))
	})
}

func (cmd *GetPatientCommand) Run(ctx *Globals) (err error) {
	client, err := ctx.Client()
	if err != nil {
		return err
	}
	defer client.Close()

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "GetPatientCommand")
	defer func() { endSpan(err) }()

	detail, err := client.Patients.Get(parent, cmd.ID)
	if err != nil {
		return err
	}
	return ctx.print(detail, func() {
		printPatient(ctx, detail)
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func pageInfo(p schema.Pagination) string {
	return fmt.Sprintf("Page %d of %d (%d total)", p.Page, p.TotalPages, p.Total)
}

// printPatient writes demographics, record counts and active lists
func printPatient(ctx *Globals, detail *schema.PatientDetail) {
	p := detail.Patient
	ctx.console.Rule(p.Name())
	ctx.console.Field("ID", p.ID)
	ctx.console.Field("Born", p.BirthDate)
	if p.Deceased() {
		ctx.console.Field("Died", types.Value(p.DeathDate))
	}
	ctx.console.Field("Gender", p.Gender)
	if race := strings.TrimSpace(types.Value(p.Race) + " " + types.Value(p.Ethnicity)); race != "" {
		ctx.console.Field("Race", race)
	}
	if location := p.Location(); location != "" {
		ctx.console.Field("Location", location)
	}
	ctx.console.Println()
	ctx.console.Table(schema.RecordTable{PatientDetail: detail})

	printList(ctx, "Active conditions", detail.Summary.ActiveConditions)
	printList(ctx, "Active medications", detail.Summary.ActiveMedications)
	printList(ctx, "Allergies", detail.Summary.Allergies)
}

func printList(ctx *Globals, title string, items []string) {
	if len(items) == 0 {
		return
	}
	ctx.console.Println(title + ":")
	for _, item := range items {
		ctx.console.Item(item)
	}
}
