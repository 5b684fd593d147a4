// Package main is the entry point for the issue-guard CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/issue-guard/internal/app"
	"github.com/runoshun/issue-guard/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get current directory: %v\n", err)
		return err
	}

	// Create dependency injection container
	container, err := app.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		return err
	}

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		// The check report already explains an invalid body.
		if !errors.Is(err, cli.ErrIssueInvalid) {
			container.Logger.Error(err.Error())
		}
		return err
	}
	return nil
}
