package main

import (
	// Packages
	version "github.com/mutablelogic/go-clinic/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	ctx.console.Println(string(version.JSON(execName())))
	return nil
}
