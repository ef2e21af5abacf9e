/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"testdeck/pkg/config"
	"testdeck/pkg/deck"
	"testdeck/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "testdeck",
	Short: "Present and lint the message-testing slide deck",
	Long: "testdeck presents Markdown slide decks in the terminal and checks them for\n" +
		"structural problems. It ships with a built-in deck teaching the rules of\n" +
		"testing messages, and a classifier that answers which rule applies to a\n" +
		"given message.",
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadRuntime resolves config and installs the process logger. Every
// subcommand goes through it so logging behaves the same everywhere.
func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	appLogger, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize logger: %w", err)
	}
	slog.SetDefault(appLogger)

	return cfg, appLogger, nil
}

// resolveDeck loads the deck named by args, or the built-in deck when the
// command was invoked without one.
func resolveDeck(args []string) (*deck.Deck, error) {
	if len(args) == 0 {
		return deck.Builtin()
	}
	return deck.Load(args[0])
}
