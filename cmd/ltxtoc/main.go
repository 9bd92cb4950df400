package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ltxtoc"
	"github.com/fwojciec/ltxtoc/fs"
	"github.com/fwojciec/ltxtoc/goquery"
	"github.com/fwojciec/ltxtoc/htmltomarkdown"
	ltxslog "github.com/fwojciec/ltxtoc/slog"
)

const usage = "Usage: ltxtoc [flags] INPUT.html OUTPUT.html"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}

// UsageError reports a command line that could not be parsed.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by Run to a process exit code:
// 0 for success, 2 for usage errors, 1 otherwise.
func ExitCode(err error) int {
	var usageErr *UsageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &usageErr):
		return 2
	}
	return 1
}

// Main represents the program.
type Main struct {
	// Store overrides the filesystem store. Set before calling Run().
	Store ltxtoc.DocumentStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ltxtoc"),
		kong.Description("Add heading ids and a table of contents to LaTeX-generated HTML"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return &UsageError{Err: fmt.Errorf("no arguments provided")}
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintln(stderr, usage)
		return &UsageError{Err: err}
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	store := m.Store
	if store == nil {
		store = fs.NewStore()
	}
	var processor ltxtoc.Processor = ltxtoc.NewTransformer(
		ltxtoc.WithTitle(cli.Title),
		ltxtoc.WithMarker(cli.Marker),
		ltxtoc.WithExistingInTOC(cli.IncludeExisting),
	)
	if cli.Verbose {
		store = ltxslog.NewLoggingStore(store, logger)
		processor = ltxslog.NewLoggingProcessor(processor, logger)
	}

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Store:     store,
		Processor: processor,
		Auditor:   goquery.NewAuditor(cli.Marker),
		Converter: htmltomarkdown.NewConverter(),
	}

	cmd := &ProcessCmd{
		Input:   cli.Input,
		Output:  cli.Output,
		Outline: cli.Outline,
		Title:   cli.Title,
		Check:   cli.Check,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Title           string `default:"Contents" env:"LTXTOC_TITLE" help:"Heading shown above the table of contents"`
	Marker          string `default:"ltx_title" env:"LTXTOC_MARKER" help:"Class token marking headings to process"`
	IncludeExisting bool   `env:"LTXTOC_INCLUDE_EXISTING" help:"List headings that already have an id in the table of contents"`
	Check           bool   `help:"Audit the output and fail on duplicate ids, unlabeled headings or broken links"`
	Outline         string `placeholder:"PATH" help:"Also write the table of contents as Markdown to PATH"`
	Verbose         bool   `short:"v" env:"LTXTOC_VERBOSE" help:"Log processing details to stderr"`
	Input           string `arg:"" name:"input" help:"LaTeX-generated HTML file to read"`
	Output          string `arg:"" name:"output" help:"Path to write the processed HTML to"`
}
