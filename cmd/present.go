/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"testdeck/pkg/bus"
	"testdeck/pkg/deck"
	"testdeck/pkg/ui/present"
	"testdeck/pkg/watch"
)

var (
	presentWatch bool
	presentTheme string
	presentWidth int
)

var presentCmd = &cobra.Command{
	Use:   "present [deck.md]",
	Short: "Present a deck in the terminal",
	Long:  "Opens a full-screen terminal presentation. Without a deck argument it presents the built-in message-testing deck.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := loadRuntime()
		if err != nil {
			fmt.Printf("failed to start: %v\n", err)
			return
		}

		loaded, err := resolveDeck(args)
		if err != nil {
			fmt.Printf("failed to load deck: %v\n", err)
			return
		}

		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		opts := present.Options{
			Theme: presentTheme,
			Width: presentWidth,
		}
		if opts.Theme == "" {
			opts.Theme = cfg.Present.Theme
		}
		if opts.Width == 0 {
			opts.Width = cfg.Present.Width
		}

		watching := presentWatch || cfg.Present.Watch
		if notice := watchNotice(watching, args); notice != "" {
			fmt.Println(notice)
			watching = false
		}
		if watching {
			events := bus.New()
			defer events.Close()

			watcher, err := watch.New(loaded.Path, events, log)
			if err != nil {
				fmt.Printf("failed to watch deck: %v\n", err)
				return
			}
			if err := watcher.Start(runCtx); err != nil {
				fmt.Printf("failed to watch deck: %v\n", err)
				return
			}
			defer watcher.Stop()

			path := loaded.Path
			opts.Events = events
			opts.Reload = func() (*deck.Deck, error) {
				return deck.Load(path)
			}
		}

		log.Info("Presenting deck", "deck", loaded.Path, "slides", loaded.Len(), "watch", watching)
		if err := present.Run(runCtx, loaded, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Printf("presentation failed: %v\n", err)
		}
	},
}

// watchNotice reports when watch mode cannot take effect. The built-in
// deck is embedded in the binary, so there is no file to watch.
func watchNotice(watching bool, args []string) string {
	if watching && len(args) == 0 {
		return "watch ignored: the built-in deck has no file on disk; pass a deck path to enable reload"
	}
	return ""
}

func init() {
	rootCmd.AddCommand(presentCmd)
	presentCmd.Flags().BoolVarP(&presentWatch, "watch", "w", false, "reload the deck when the file changes")
	presentCmd.Flags().StringVarP(&presentTheme, "theme", "t", "", "override the deck theme (default, dark, light)")
	presentCmd.Flags().IntVar(&presentWidth, "width", 0, "cap the render width in columns")
}
