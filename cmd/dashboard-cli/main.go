// Package main is the entry point for the dashboard-cli application.
// It initializes the root command and registers the admin sub-commands
// (settings, users, sessions), then executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/BeantownBash/beantownbash-dashboard/cmd/dashboard-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "dashboard-cli",
		Short: "Admin tool for the hackathon dashboard",
		Long: `dashboard-cli is a command-line tool for administering the hackathon dashboard.
It provisions users and their projects, issues session tokens, and manages
dashboard settings such as the forbidEditing lock.

The CLI reads the same configuration file as the REST server. Point it at a
different one with the CONFIG_PATH environment variable.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	// Register settings commands
	if err := commands.InitSettingsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize settings commands: %w", err)
	}

	// Register user and session commands
	if err := commands.InitIdentityCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize identity commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
