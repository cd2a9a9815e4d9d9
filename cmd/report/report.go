// Package report implements the report command for stored assessments.
package report

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/eivindstn/helsegrad/internal/config"
	"github.com/eivindstn/helsegrad/internal/database"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/report"
	"github.com/eivindstn/helsegrad/internal/storage"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

// Options represents report command options.
type Options struct {
	ConfigFile string
	ID         string
	Format     string
	Output     string
}

// Run executes the report command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("report", flag.ExitOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	fs.StringVar(&opts.ID, "id", "latest", "Assessment ID, or 'latest'")
	fs.StringVar(&opts.Format, "format", "", "Output format (html or text, default from configuration)")
	fs.StringVar(&opts.Output, "output", "", "Output file path (defaults to the configured output directory)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: helsegrad report [options]

Generate a report from a stored assessment.

Options:`)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Examples:
  helsegrad report
  helsegrad report --id latest --format html
  helsegrad report --id 4f7c... --format text
  helsegrad report --output rapporter/journalsystem.html`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if opts.Format == "" {
		opts.Format = cfg.Output.Format
	}

	store := storage.NewStorage(cfg.AssessmentsDir())

	a, err := resolveAssessment(opts.ID, cfg, store)
	if err != nil {
		return err
	}

	switch opts.Format {
	case "text":
		return writeText(a, opts.Output)
	case "html":
		return writeHTML(a, opts.Output, cfg)
	default:
		return fmt.Errorf("unknown format %q (expected html or text)", opts.Format)
	}
}

// resolveAssessment loads an assessment by ID, using the index database to
// find the most recent one when the ID is "latest".
func resolveAssessment(id string, cfg *config.Config, store *storage.Storage) (*models.Assessment, error) {
	if id != "latest" {
		a, err := store.Load(id)
		if err != nil {
			if storage.IsNotFound(err) {
				return nil, fmt.Errorf("no assessment with ID %s", id)
			}
			return nil, fmt.Errorf("loading assessment: %w", err)
		}
		return a, nil
	}

	db, err := database.New(cfg.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	entries, err := db.ListAssessments(context.Background(), 1)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no assessments found, run 'helsegrad assess' first")
	}

	a, err := store.Load(entries[0].ID)
	if err != nil {
		return nil, fmt.Errorf("loading assessment %s: %w", entries[0].ID, err)
	}
	return a, nil
}

func writeText(a *models.Assessment, output string) error {
	text := report.RenderText(a)
	if output == "" {
		fmt.Print(text) //nolint:forbidigo
		return nil
	}
	if err := os.WriteFile(output, []byte(text), 0600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	logger.Info("Generated text report", "path", output)
	return nil
}

func writeHTML(a *models.Assessment, output string, cfg *config.Config) error {
	if output == "" {
		dir := cfg.Output.Dir
		if dir == "" {
			dir = "rapporter"
		}
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		output = filepath.Join(dir, fmt.Sprintf("graderingsrapport-%s.html", a.ID))
	}

	gen := report.NewHTMLGenerator(a)
	return gen.Generate(output)
}
