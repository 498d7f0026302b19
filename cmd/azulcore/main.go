// Command azulcore exercises the core's JSON boundary (pkg/boundary)
// from the command line: generate a scenario, list legal actions on a
// state, apply an action, resolve end of round, or evaluate/grade a
// move. It is a thin driver, not a game client — every subcommand
// reads JSON from stdin or a flag and writes JSON to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/azul-practice/core/pkg/boundary"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	logger := newLogger()
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "version":
		err = runVersion(args)
	case "list-legal-actions":
		err = runListLegalActions(args, logger)
	case "apply-action":
		err = runApplyAction(args, logger)
	case "resolve-end-of-round":
		err = runResolveEndOfRound(args, logger)
	case "generate-scenario":
		err = runGenerateScenario(args, logger)
	case "evaluate-best-move":
		err = runEvaluateBestMove(args, logger)
	case "grade-user-action":
		err = runGradeUserAction(args, logger)
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "azulcore: unknown subcommand %q\n", cmd)
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("subcommand failed", "subcommand", cmd, "err", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func runVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "azulcore %s\n", version)
	os.Stdout.Write(boundary.GetVersion())
	fmt.Println()
	return nil
}

func runListLegalActions(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("list-legal-actions", flag.ExitOnError)
	statePath := fs.String("state", "-", "path to a state JSON file, or - for stdin")
	playerID := fs.Int("player", 0, "player_id to enumerate actions for")
	if err := fs.Parse(args); err != nil {
		return err
	}
	stateJSON, err := readInput(*statePath)
	if err != nil {
		return err
	}
	logger.Info("listing legal actions", "player_id", *playerID)
	out := boundary.ListLegalActions(stateJSON, *playerID)
	return writeOutput(out)
}

func runApplyAction(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("apply-action", flag.ExitOnError)
	statePath := fs.String("state", "", "path to a state JSON file (required)")
	actionPath := fs.String("action", "", "path to a DraftAction JSON file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *statePath == "" || *actionPath == "" {
		return fmt.Errorf("apply-action requires -state and -action")
	}
	stateJSON, err := readInput(*statePath)
	if err != nil {
		return err
	}
	actionJSON, err := readInput(*actionPath)
	if err != nil {
		return err
	}
	logger.Info("applying action")
	out := boundary.ApplyAction(stateJSON, actionJSON)
	return writeOutput(out)
}

func runResolveEndOfRound(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("resolve-end-of-round", flag.ExitOnError)
	statePath := fs.String("state", "-", "path to a state JSON file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	stateJSON, err := readInput(*statePath)
	if err != nil {
		return err
	}
	logger.Info("resolving end of round")
	out := boundary.ResolveEndOfRound(stateJSON)
	return writeOutput(out)
}

func runGenerateScenario(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("generate-scenario", flag.ExitOnError)
	paramsPath := fs.String("params", "-", "path to a generator params JSON file, or - for stdin ({} for defaults)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	paramsJSON, err := readInput(*paramsPath)
	if err != nil {
		return err
	}
	logger.Info("generating scenario")
	out := boundary.GenerateScenario(context.Background(), paramsJSON)
	return writeOutput(out)
}

func runEvaluateBestMove(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("evaluate-best-move", flag.ExitOnError)
	statePath := fs.String("state", "", "path to a state JSON file (required)")
	playerID := fs.Int("player", 0, "player_id to evaluate for")
	paramsPath := fs.String("params", "-", "path to an evaluator params JSON file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *statePath == "" {
		return fmt.Errorf("evaluate-best-move requires -state")
	}
	stateJSON, err := readInput(*statePath)
	if err != nil {
		return err
	}
	paramsJSON, err := readInput(*paramsPath)
	if err != nil {
		return err
	}
	logger.Info("evaluating best move", "player_id", *playerID)
	out := boundary.EvaluateBestMove(stateJSON, *playerID, paramsJSON)
	return writeOutput(out)
}

func runGradeUserAction(args []string, logger *slog.Logger) error {
	fs := flag.NewFlagSet("grade-user-action", flag.ExitOnError)
	statePath := fs.String("state", "", "path to a state JSON file (required)")
	actionPath := fs.String("action", "", "path to the user's DraftAction JSON file (required)")
	playerID := fs.Int("player", 0, "player_id making the move")
	paramsPath := fs.String("params", "-", "path to an evaluator params JSON file, or - for stdin")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *statePath == "" || *actionPath == "" {
		return fmt.Errorf("grade-user-action requires -state and -action")
	}
	stateJSON, err := readInput(*statePath)
	if err != nil {
		return err
	}
	actionJSON, err := readInput(*actionPath)
	if err != nil {
		return err
	}
	paramsJSON, err := readInput(*paramsPath)
	if err != nil {
		return err
	}
	logger.Info("grading user action", "player_id", *playerID)
	out := boundary.GradeUserAction(stateJSON, *playerID, actionJSON, paramsJSON)
	return writeOutput(out)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(data []byte) error {
	_, err := os.Stdout.Write(append(data, '\n'))
	return err
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `azulcore: CLI driver for the Azul practice core

Usage:
  azulcore <subcommand> [flags]

Subcommands:
  version
  list-legal-actions   -state <file|-> -player <id>
  apply-action         -state <file> -action <file>
  resolve-end-of-round -state <file|->
  generate-scenario    -params <file|->
  evaluate-best-move   -state <file> -player <id> -params <file|->
  grade-user-action    -state <file> -action <file> -player <id> -params <file|->

Every subcommand reads JSON from the named file (or stdin for -),
writes JSON (result or {"error":...}) to stdout, and logs operational
messages to stderr.`)
}
