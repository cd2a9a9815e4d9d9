// Package assess implements the assess command for running grading assessments.
package assess

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/config"
	"github.com/eivindstn/helsegrad/internal/database"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/report"
	"github.com/eivindstn/helsegrad/internal/scoring"
	"github.com/eivindstn/helsegrad/internal/storage"
	"github.com/eivindstn/helsegrad/internal/ui"
	"github.com/eivindstn/helsegrad/pkg/logger"
	"github.com/eivindstn/helsegrad/pkg/pathutil"
)

// Options represents assess command options.
type Options struct {
	ConfigFile  string
	SystemName  string
	Org         string
	AssessedBy  string
	AnswersFile string
}

// Run executes the assess command.
func Run(args []string) error {
	opts := &Options{}

	fs := flag.NewFlagSet("assess", flag.ExitOnError)
	fs.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	fs.StringVar(&opts.SystemName, "system", "", "System name (skips the TUI when combined with --answers)")
	fs.StringVar(&opts.Org, "org", "", "Organization name (overrides configuration)")
	fs.StringVar(&opts.AssessedBy, "assessed-by", "", "Assessor name (overrides configuration)")
	fs.StringVar(&opts.AnswersFile, "answers", "", "YAML file with questionnaire answers")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: helsegrad assess [options]

Run a grading assessment. Without --system and --answers an interactive
questionnaire is started.

Options:`)
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, `
Examples:
  helsegrad assess
  helsegrad assess --system "Journalsystem" --answers answers.yaml
  helsegrad assess --config helsegrad.yaml`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault(opts.ConfigFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if opts.Org != "" {
		cfg.Organization.Name = opts.Org
	}
	if opts.AssessedBy != "" {
		cfg.Organization.AssessedBy = opts.AssessedBy
	}

	db, err := database.New(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	store := storage.NewStorage(cfg.AssessmentsDir())

	if opts.SystemName != "" && opts.AnswersFile != "" {
		return runNonInteractive(opts, cfg, db, store)
	}

	tui := ui.NewTUI(db, store, cfg)
	return tui.Run()
}

// runNonInteractive builds an assessment directly from an answers file.
func runNonInteractive(opts *Options, cfg *config.Config, db *database.DB, store *storage.Storage) error {
	answers, err := LoadAnswersFile(opts.AnswersFile)
	if err != nil {
		return fmt.Errorf("loading answers: %w", err)
	}

	a := models.Build(opts.SystemName, cfg.Organization.Name, cfg.Organization.AssessedBy, answers)

	path, err := store.Save(a)
	if err != nil {
		return fmt.Errorf("saving assessment: %w", err)
	}
	if err := db.RecordAssessment(context.Background(), a, path); err != nil {
		return fmt.Errorf("recording assessment: %w", err)
	}

	logger.Info("Assessment saved", "id", a.ID, "path", path)
	fmt.Print(report.RenderText(a)) //nolint:forbidigo
	return nil
}

// LoadAnswersFile reads a YAML answers file. Each key is a question ID and
// each value is either a single option ID or a list of option IDs.
func LoadAnswersFile(path string) (scoring.Answers, error) {
	validPath, err := pathutil.ValidateConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(validPath) //nolint:gosec // Path validated above
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return ParseAnswers(raw)
}

// ParseAnswers validates a raw answer map against the question catalog.
func ParseAnswers(raw map[string]any) (scoring.Answers, error) {
	answers := scoring.NewAnswers()

	for questionID, value := range raw {
		q, ok := catalog.QuestionByID(questionID)
		if !ok {
			return nil, fmt.Errorf("unknown question %q", questionID)
		}

		var optionIDs []string
		switch v := value.(type) {
		case string:
			optionIDs = []string{v}
		case []any:
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("question %q: option must be a string, got %T", questionID, item)
				}
				optionIDs = append(optionIDs, s)
			}
		default:
			return nil, fmt.Errorf("question %q: expected string or list, got %T", questionID, value)
		}

		if !q.MultiSelect && len(optionIDs) > 1 {
			return nil, fmt.Errorf("question %q accepts a single answer", questionID)
		}
		for _, id := range optionIDs {
			if _, ok := q.Option(id); !ok {
				return nil, fmt.Errorf("question %q: unknown option %q", questionID, id)
			}
		}

		answers.Set(questionID, optionIDs...)
	}

	return answers, nil
}
