package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/lookup"
	"github.com/seba2390/bevydoc/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	DB      *sqlite.DB
	Lookups bevydoc.LookupService
	Looker  *lookup.Looker
	Asker   bevydoc.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and cache writes"`

	Lookup LookupCmd `cmd:"" help:"Look up a Bevy API item by keyword"`
	Batch  BatchCmd  `cmd:"" help:"Look up keywords from a file"`
	List   ListCmd   `cmd:"" help:"List cached lookups"`
	Show   ShowCmd   `cmd:"" help:"Show a cached lookup"`
	Delete DeleteCmd `cmd:"" help:"Delete a cached lookup"`
	Export ExportCmd `cmd:"" help:"Export cached lookups as markdown files"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about looked-up items"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Keyword string `arg:"" help:"Bevy API keyword, e.g. Transform or bevy::prelude::App"`
	Refresh bool   `short:"r" help:"Refetch even when the keyword is cached"`
	JSON    bool   `help:"Emit the lookup as JSON"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	File        string `arg:"" help:"File with one keyword per line"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent lookup limit"`
	Refresh     bool   `short:"r" help:"Refetch even when keywords are cached"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Sort string `default:"fetched" enum:"fetched,keyword" help:"Sort order: fetched or keyword"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Keyword string `arg:"" help:"Cached keyword to show"`
	JSON    bool   `help:"Emit the lookup as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Keyword string `arg:"" help:"Cached keyword to delete"`
	Force   bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `short:"d" default:"." help:"Parent directory for the export"`
	Name string `default:"bevy-docs" help:"Export directory name"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the cached documentation"`
}
