package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	config "github.com/mutablelogic/go-clinic/pkg/config"
	doctor "github.com/mutablelogic/go-clinic/pkg/doctor"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	interview "github.com/mutablelogic/go-clinic/pkg/interview"
	schema "github.com/mutablelogic/go-clinic/pkg/schema"
	console "github.com/mutablelogic/go-clinic/pkg/ui/console"
	global "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Trace HTTP requests and responses"`
	Verbose int  `name:"verbose" short:"v" type:"counter" help:"Increase log verbosity (-v info, -vv debug)"`

	// API
	Token   string        `name:"token" env:"VIRTUAL_CLINIC_TOKEN" help:"Bearer token for the API"`
	BaseURL string        `name:"base-url" env:"VIRTUAL_CLINIC_BASE_URL" default:"${base_url}" help:"API base URL"`
	Timeout time.Duration `name:"timeout" default:"${timeout}" help:"Request timeout"`
	JSON    bool          `name:"json" help:"Write responses as JSON"`

	// Context
	ctx     context.Context
	tracer  trace.Tracer
	logger  *slog.Logger
	console *console.Console
}

type CLI struct {
	Globals

	// Commands
	HealthCommands
	PatientCommands
	ConversationCommands
	InterviewCommands
	Version VersionCommand `cmd:"" name:"version" help:"Print the version."`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	exitError     = 1
	exitInterrupt = 130
)

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Environment variables from .env supply flag values
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitError)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Virtual Clinic command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"base_url":    httpclient.DefaultEndpoint,
			"timeout":     httpclient.DefaultTimeout.String(),
			"task_type":   string(schema.TaskDiagnosis),
			"max_turns":   fmt.Sprint(interview.DefaultMaxTurns),
			"deployment":  doctor.DefaultDeployment,
			"api_version": doctor.DefaultAPIVersion,
		},
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.tracer = global.GetTracerProvider().Tracer("github.com/mutablelogic/go-clinic/cmd/clinic")
	cli.Globals.logger = newLogger(os.Stderr, cli.Verbose, cli.Debug)
	cli.Globals.console = console.New(os.Stdout)

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		os.Exit(fatal(ctx, console.New(os.Stderr), err))
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
