package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	clinic "github.com/mutablelogic/go-clinic"
	config "github.com/mutablelogic/go-clinic/pkg/config"
	httpclient "github.com/mutablelogic/go-clinic/pkg/httpclient"
	console "github.com/mutablelogic/go-clinic/pkg/ui/console"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Client returns an httpclient.Client configured from the global flags
func (g *Globals) Client() (*httpclient.Client, error) {
	if g.Token == "" {
		return nil, clinic.NewError(clinic.ErrAuthentication, 0, config.EnvToken+" is not set", nil)
	}
	return httpclient.New(g.BaseURL, g.Token, g.clientOpts()...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) clientOpts() []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose > 0))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if g.Timeout > 0 {
		opts = append(opts, client.OptTimeout(g.Timeout))
	}
	return opts
}

// newLogger writes text logs to w, at warning level by default
func newLogger(w io.Writer, verbose int, debug bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case debug || verbose > 1:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// fatal reports err on the console and returns the exit code
func fatal(ctx context.Context, c *console.Console, err error) int {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		c.Warn("Interrupted.")
		return exitInterrupt
	}
	c.Error(describe(err))
	return exitError
}

// describe returns a message for err suitable for the terminal
func describe(err error) string {
	var e *clinic.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	switch e.Kind {
	case clinic.ErrAuthentication:
		return "Invalid or expired token. Check " + config.EnvToken + " in " + config.DefaultFile
	case clinic.ErrPermissionDenied:
		return "Insufficient permissions. Patient endpoints require an admin token."
	case clinic.ErrNotFound:
		return "Not found: " + e.Message
	case clinic.ErrConnection:
		return "Connection failed: " + e.Message
	case clinic.ErrValidation:
		return fmt.Sprint("Invalid request: ", e.Message, details(e.Details))
	default:
		return "API error: " + e.Message
	}
}

func details(d map[string]any) string {
	if len(d) == 0 {
		return ""
	}
	return fmt.Sprint(" ", d)
}

// print writes v as indented JSON when the --json flag is set, or calls fn
func (g *Globals) print(v any, fn func()) error {
	if !g.JSON {
		fn()
		return nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	g.console.Println(string(data))
	return nil
}
