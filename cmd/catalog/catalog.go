// Package catalog implements the catalog command for printing built-in data.
package catalog

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/measures"
)

// Run executes the catalog command.
func Run(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, `Usage: helsegrad catalog <subject>

Print one of the built-in catalogs.

Subjects:
  questions   Questionnaire questions and options
  scenarios   ROS threat scenarios
  measures    Security measures per grading level
  levels      Grading levels and legal requirements
  nis2        NIS2 compliance checklist

Examples:
  helsegrad catalog scenarios
  helsegrad catalog nis2`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	subject := fs.Arg(0)
	switch subject {
	case "questions":
		return printQuestions()
	case "scenarios":
		return printScenarios()
	case "measures":
		return printMeasures()
	case "levels":
		return printLevels()
	case "nis2":
		return printNIS2()
	case "":
		fs.Usage()
		return fmt.Errorf("missing subject")
	default:
		fs.Usage()
		return fmt.Errorf("unknown subject %q", subject)
	}
}

func printQuestions() error {
	for _, q := range catalog.AllQuestions() {
		kind := "ett valg"
		if q.MultiSelect {
			kind = "flervalg"
		}
		fmt.Printf("%s (%s)\n  %s\n", q.ID, kind, q.Question) //nolint:forbidigo
		for _, option := range q.Options {
			fmt.Printf("    %-22s %s\n", option.ID, option.Label) //nolint:forbidigo
		}
		fmt.Println() //nolint:forbidigo
	}
	return nil
}

func printScenarios() error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	if _, err := fmt.Fprintln(w, "ID\tNAVN\tKATEGORI\tS\tK\tPÅVIRKER"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", 90)); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, s := range catalog.ThreatScenarios {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
			s.ID, s.Name, s.Category, s.BaseProbability, s.BaseConsequence, s.CIA.Label(),
		); err != nil {
			return fmt.Errorf("writing scenario: %w", err)
		}
	}

	return w.Flush()
}

func printMeasures() error {
	seen := make(map[string]bool)
	printNew := func(heading string, set []catalog.Measure) {
		var added []catalog.Measure
		for _, m := range set {
			if !seen[m.ID] {
				seen[m.ID] = true
				added = append(added, m)
			}
		}
		if len(added) == 0 {
			return
		}
		fmt.Printf("  %s\n", heading) //nolint:forbidigo
		for _, m := range added {
			fmt.Printf("    %-22s %s (%s)\n", m.ID, m.Name, m.LegalBasis) //nolint:forbidigo
		}
	}

	for level := 1; level <= 4; level++ {
		fmt.Printf("Nivå %d\n", level) //nolint:forbidigo
		set := measures.ForLevel(level, catalog.ExposureInternal)
		printNew("Tekniske tiltak", set.Technical)
		printNew("Organisatoriske tiltak", set.Organizational)
		fmt.Println() //nolint:forbidigo
	}
	return nil
}

func printLevels() error {
	for _, info := range catalog.GradingLevels {
		fmt.Printf("Nivå %d - %s\n  %s\n", info.Level, info.Name, info.Description) //nolint:forbidigo
		if len(info.LegalBasis) > 0 {
			fmt.Printf("  Hjemmel: %s\n", strings.Join(info.LegalBasis, "; ")) //nolint:forbidigo
		}
		for _, example := range info.Examples {
			fmt.Printf("    f.eks. %s\n", example) //nolint:forbidigo
		}
		fmt.Println() //nolint:forbidigo
	}

	fmt.Println("Regelverk:") //nolint:forbidigo
	for _, req := range catalog.LegalRequirements {
		fmt.Printf("  %-35s %s\n", req.Name, req.Source) //nolint:forbidigo
	}
	return nil
}

func printNIS2() error {
	fmt.Printf("NIS2 compliance-sjekkliste (%d punkter)\n\n", catalog.NIS2ItemCount()) //nolint:forbidigo
	for _, cat := range catalog.NIS2Categories {
		fmt.Printf("%s\n", cat.Name) //nolint:forbidigo
		for _, item := range cat.Items {
			fmt.Printf("  [ ] %-32s %s\n", item.Title, item.Article) //nolint:forbidigo
			fmt.Printf("      %s\n", item.Description)               //nolint:forbidigo
			for _, detail := range item.Details {
				fmt.Printf("        - %s\n", detail) //nolint:forbidigo
			}
			if item.Deadline != "" {
				fmt.Printf("      Tidsfrist: %s\n", item.Deadline) //nolint:forbidigo
			}
		}
		fmt.Println() //nolint:forbidigo
	}
	return nil
}
