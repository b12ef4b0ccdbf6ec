package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/seba2390/bevydoc"
	"github.com/seba2390/bevydoc/gemini"
	"github.com/seba2390/bevydoc/goquery"
	bevyhttp "github.com/seba2390/bevydoc/http"
	"github.com/seba2390/bevydoc/htmltomarkdown"
	"github.com/seba2390/bevydoc/lookup"
	"github.com/seba2390/bevydoc/rod"
	bevyslog "github.com/seba2390/bevydoc/slog"
	"github.com/seba2390/bevydoc/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Lookup cache service, exposed for end-to-end testing.
	LookupService bevydoc.LookupService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bevydoc"),
		kong.Description("Look up Bevy API documentation on docs.rs."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'bevydoc --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))
	deps.Logger = logger

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set BEVYDOC_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.LookupService = bevyslog.NewLoggingLookupService(sqlite.NewLookupService(m.DB), logger)
	deps.DB = m.DB
	deps.Lookups = m.LookupService

	// The search page renders its results with JavaScript, so lookup and
	// batch need a browser. Item pages are static HTML.
	if cmd == "lookup" || cmd == "batch" {
		browser, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		defer browser.Close()

		deps.Looker = &lookup.Looker{
			SearchFetcher: bevyslog.NewLoggingFetcher(browser, logger),
			ItemFetcher:   bevyslog.NewLoggingFetcher(bevyhttp.NewFetcher(), logger),
			Parser:        goquery.NewSearchParser(),
			Extractor:     goquery.NewDocExtractor(),
			Converter:     htmltomarkdown.NewConverter(),
			Lookups:       m.LookupService,
			RateLimiter:   lookup.NewDomainLimiter(1.0),
			Frontier:      lookup.NewFrontier(10000, 0.01),
			RetryLog: func(format string, args ...any) {
				fmt.Fprintf(stderr, format+"\n", args...)
			},
		}
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Asker = gemini.NewAsker(client, m.LookupService)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("BEVYDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bevydoc.db"
	}
	dir := filepath.Join(home, ".bevydoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "bevydoc.db")
}
