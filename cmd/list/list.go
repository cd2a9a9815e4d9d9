// Package list implements the list command for viewing previous assessments.
package list

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/eivindstn/helsegrad/internal/config"
	"github.com/eivindstn/helsegrad/internal/database"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

// Options represents list command options.
type Options struct {
	ConfigFile string
	Format     string
	Limit      int
}

// Run executes the list command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	fs.IntVar(&opts.Limit, "limit", 10, "Maximum number of assessments to show")
	fs.StringVar(&opts.Format, "format", "table", "Output format (table, json)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: helsegrad list [options]

List previous grading assessments.

Options:`)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Examples:
  helsegrad list
  helsegrad list --limit 20
  helsegrad list --format json`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	db, err := database.New(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	entries, err := db.ListAssessments(context.Background(), opts.Limit)
	if err != nil {
		return fmt.Errorf("listing assessments: %w", err)
	}

	if len(entries) == 0 {
		logger.Info("No assessments found")
		return nil
	}

	switch opts.Format {
	case "json":
		return displayJSON(entries)
	default:
		return displayTable(entries)
	}
}

func displayTable(entries []database.Entry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "ID\tSYSTEM\tVIRKSOMHET\tNIVÅ\tKLASSE\tKRITISK/HØY\tTIDSPUNKT"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 90)); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, entry := range entries {
		risks := fmt.Sprintf("%d/%d", entry.RiskCritical, entry.RiskHigh)
		if entry.RiskCritical > 0 {
			risks = "🚨 " + risks
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d (%s)\t%d/%d\t%s\t%s\n",
			shortID(entry.ID),
			entry.SystemName,
			entry.Organization,
			entry.RecommendedLevel,
			entry.Confidence,
			entry.InfoLevel,
			entry.CriticalityLevel,
			risks,
			formatTimeAgo(entry.CreatedAt),
		); err != nil {
			return fmt.Errorf("writing entry: %w", err)
		}
	}

	return w.Flush()
}

func displayJSON(entries []database.Entry) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

// shortID trims a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func formatTimeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
