package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docketlab/docket/internal/config"
	"github.com/docketlab/docket/internal/docket"
	"github.com/docketlab/docket/internal/mcp"
	"github.com/docketlab/docket/internal/ops"
	"github.com/docketlab/docket/internal/store"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"week": true, "cases": true, "events": true,
	"add-hearing": true, "update-hearing": true, "delete-hearing": true,
	"tag": true, "untag": true,
	"export": true, "serve": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   _         _       _
  | |___  __| |_____| |_
  / _  / / _ \ _/ / /  _|
  \____|\___/\__|_\_\\__|

  Case and hearing schedule tracker

  Usage: docket <command> [options]
         docket --help

  MCP server mode requires piped input.`)
}

// buildStore seeds the case store from the configured seed file, falling
// back to the built-in sample docket.
func buildStore(cfg *config.Config) (*store.Store, error) {
	var cases []docket.Case
	if cfg.SeedPath != "" {
		loaded, err := ops.LoadCases(ops.LoadCasesInput{Path: cfg.SeedPath})
		if err != nil {
			return nil, err
		}
		cases = loaded.Cases
	} else {
		cases = sampleCases()
	}
	return store.New(cases), nil
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before loading anything
	if len(os.Args) >= 2 {
		arg := os.Args[1]
		if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help" {
			app := newCLIApp(nil, nil)
			if err := app.Run(os.Args); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine home directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(filepath.Join(homeDir, ".docket"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	st, err := buildStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load cases: %v\n", err)
		os.Exit(1)
	}

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(st, cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'docket --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(st, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
