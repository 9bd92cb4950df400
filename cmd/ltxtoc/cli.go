package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/ltxtoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Store     ltxtoc.DocumentStore
	Processor ltxtoc.Processor
	Auditor   ltxtoc.Auditor
	Converter ltxtoc.Converter
}

// ProcessCmd reads one document, transforms it and writes the result.
type ProcessCmd struct {
	Input   string
	Output  string
	Outline string
	Title   string
	Check   bool
}
