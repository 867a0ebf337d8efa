package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/goose"
	"github.com/fwojciec/goose/bloom"
	"github.com/fwojciec/goose/crawl"
	"github.com/fwojciec/goose/fs"
	"github.com/fwojciec/goose/goquery"
	"github.com/fwojciec/goose/htmltomarkdown"
	goosehttp "github.com/fwojciec/goose/http"
	"github.com/fwojciec/goose/readability"
	"github.com/fwojciec/goose/rod"
	gooseslog "github.com/fwojciec/goose/slog"
	"github.com/fwojciec/goose/sqlite"
	"github.com/fwojciec/goose/trafilatura"
	"github.com/fwojciec/goose/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

	// StoragePath overrides the config's local storage path when set.
	StoragePath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService goose.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		StoragePath: os.Getenv("GOOSE_STORAGE"),
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
		kong.Name("goose"),
		kong.Description("Extract articles from news pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'goose --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cmd != "extract" || cli.Extract.Save {
		if err := m.openRecords(stderr, deps.Logger, cli.Verbose); err != nil {
			return err
		}
		defer m.Close()
		deps.Records = m.RecordService
	}

	if cmd == "extract" {
		crawler, closeFn, err := m.newCrawler(&cli.Extract, deps.Logger, cli.Verbose)
		if err != nil {
			if cli.Extract.Render {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
			}
			return err
		}
		defer closeFn()

		deps.Crawler = crawler
		deps.Seen = bloom.NewFilter(uint(max(len(cli.Extract.URLs)+len(cli.Extract.File), 1)), 0.001)
		if cli.Extract.Out != "" {
			deps.Writer = fs.NewWriter(cli.Extract.Out)
		}
	}

	return kongCtx.Run(deps)
}

// openRecords opens the database unless a RecordService was injected.
func (m *Main) openRecords(stderr io.Writer, logger *slog.Logger, verbose bool) error {
	if m.RecordService != nil {
		return nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GOOSE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}

	var records goose.RecordService = sqlite.NewRecordService(m.DB)
	if verbose {
		records = gooseslog.NewLoggingRecordService(records, logger)
	}
	m.RecordService = records
	return nil
}

// newCrawler assembles the extraction pipeline for the extract command.
// The returned function releases the fetcher.
func (m *Main) newCrawler(c *ExtractCmd, logger *slog.Logger, verbose bool) (*crawl.Crawler, func() error, error) {
	cfg := goose.NewConfig()
	if c.Config != "" {
		var err error
		if cfg, err = yaml.LoadConfig(c.Config); err != nil {
			return nil, nil, err
		}
	}
	if m.StoragePath != "" {
		cfg.LocalStoragePath = m.StoragePath
	}
	if c.Images {
		cfg.EnableImageFetching = true
	}

	var fetcher goose.Fetcher
	if c.Render {
		f, err := rod.NewFetcher(rod.WithFetchTimeout(cfg.HTTPTimeout))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = goosehttp.NewFetcher(
			goosehttp.WithTimeout(cfg.HTTPTimeout),
			goosehttp.WithUserAgent(cfg.UserAgent),
		)
	}
	if verbose {
		fetcher = gooseslog.NewLoggingFetcher(fetcher, logger)
	}

	var scorer goose.ContentScorer
	switch c.Scorer {
	case "trafilatura":
		scorer = trafilatura.NewScorer()
	case "readability":
		scorer = readability.NewScorer()
	default:
		scorer = goquery.NewScorer(cfg)
	}
	if verbose {
		scorer = gooseslog.NewLoggingScorer(scorer, logger)
	}

	var formatter goose.OutputFormatter = goquery.NewTextFormatter()
	if c.Format == "markdown" {
		formatter = htmltomarkdown.NewMarkdownFormatter()
	}

	resources := fs.NewStore(cfg.LocalStoragePath)

	crawler := &crawl.Crawler{
		Config:      cfg,
		Fetcher:     fetcher,
		Parser:      goquery.NewParser(),
		Resolvers:   goquery.DefaultSiteResolvers(),
		Cleaner:     goquery.NewCleaner(),
		Scorer:      scorer,
		Formatter:   formatter,
		Extractors:  goquery.NewExtractors(cfg, fetcher, resources),
		Resources:   resources,
		RateLimiter: crawl.NewDomainLimiter(c.RPS),
		Logger:      logger,
	}
	return crawler, fetcher.Close, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("GOOSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "goose.db"
	}
	dir := filepath.Join(home, ".goose")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "goose.db")
}
