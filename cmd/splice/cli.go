package main

import (
	"context"
	"io"

	"github.com/fwojciec/splice"
	"github.com/fwojciec/splice/session"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Runner *session.Runner
}

// ExtractCmd handles the extraction of one section.
type ExtractCmd struct {
	Input    string
	Output   string
	Markdown string
	Config   splice.Config
}
