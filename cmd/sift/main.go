package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sift"
	"github.com/fwojciec/sift/fs"
	"github.com/fwojciec/sift/htmltomarkdown"
	"github.com/fwojciec/sift/levenshtein"
	"github.com/fwojciec/sift/readability"
	"github.com/fwojciec/sift/sqlite"
	"github.com/fwojciec/sift/trafilatura"
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
	// Database path for tuning history. Set before calling Run().
	DBPath string

	// SQLite database used by the tuning run history.
	DB *sqlite.DB

	// Service for end-to-end testing.
	RunService sift.TuningRunService
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
		kong.Name("sift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire core services into dependencies.
	deps.Loader = fs.NewLoader()
	deps.Scorer = levenshtein.NewCorpusScorer()
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Baselines = map[string]sift.TextExtractor{
		"readability": readability.NewExtractor(),
		"trafilatura": trafilatura.NewExtractor(),
	}

	// Tuning history is only needed by commands that touch it.
	if cmd == "tune" || cmd == "runs" {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SIFT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RunService = sqlite.NewTuningRunService(m.DB)
		deps.Runs = m.RunService
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SIFT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sift.db"
	}
	dir := filepath.Join(home, ".sift")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "sift.db")
}
