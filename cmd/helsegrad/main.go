// Package main is the entry point for the helsegrad CLI.
// Helsegrad guides Norwegian health sector organizations through a security
// grading assessment: a questionnaire produces a recommended grading level,
// a dual-axis classification, a ROS-style risk analysis over known threat
// scenarios, and the set of mandated security controls.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eivindstn/helsegrad/cmd/assess"
	"github.com/eivindstn/helsegrad/cmd/catalog"
	"github.com/eivindstn/helsegrad/cmd/list"
	"github.com/eivindstn/helsegrad/cmd/report"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	var (
		debug       bool
		logFormat   string
		showVersion bool
	)

	globalFlags := flag.NewFlagSet("helsegrad", flag.ExitOnError)
	globalFlags.BoolVar(&debug, "debug", false, "Enable debug logging")
	globalFlags.StringVar(&logFormat, "log-format", "text", "Log format (text or json)")
	globalFlags.BoolVar(&showVersion, "version", false, "Show version information")

	if err := globalFlags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	if showVersion {
		fmt.Printf("helsegrad version %s (built %s)\n", version, buildTime) //nolint:forbidigo
		os.Exit(0)
	}

	logger.SetupLogger(debug, logFormat)

	args := globalFlags.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	commandArgs := args[1:]

	switch command {
	case "assess":
		if err := assess.Run(commandArgs); err != nil {
			logger.Error("assessment failed", "error", err)
			os.Exit(1)
		}
	case "report":
		if err := report.Run(commandArgs); err != nil {
			logger.Error("report generation failed", "error", err)
			os.Exit(1)
		}
	case "list":
		if err := list.Run(commandArgs); err != nil {
			logger.Error("list failed", "error", err)
			os.Exit(1)
		}
	case "catalog":
		if err := catalog.Run(commandArgs); err != nil {
			logger.Error("catalog failed", "error", err)
			os.Exit(1)
		}
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	//nolint:forbidigo
	fmt.Println(`🏥 Helsegrad - graderingsvurdering for helsesystemer

Usage:
  helsegrad [global flags] <command> [command flags]

Commands:
  assess    Run a grading assessment (interactive TUI or flag-driven)
  report    Generate a report from a stored assessment
  list      List previous assessments
  catalog   Print the built-in catalogs (questions, scenarios, measures, levels)
  help      Show this help message

Global Flags:
  --debug         Enable debug logging
  --log-format    Log format (text or json) (default: text)
  --version       Show version information

Examples:
  helsegrad assess
  helsegrad assess --system "Journalsystem" --answers answers.yaml
  helsegrad report --id latest --format html
  helsegrad list --limit 10
  helsegrad catalog scenarios

Use "helsegrad <command> --help" for more information about a command.`)
}
