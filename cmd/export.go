/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"testdeck/pkg/deck"
	"testdeck/pkg/render"
	"testdeck/pkg/workspace"
)

var (
	exportOutput string
	exportWidth  int
	exportPlain  bool
)

var exportCmd = &cobra.Command{
	Use:   "export [deck.md]",
	Short: "Write rendered slides to a directory",
	Long:  "Renders every slide to styled terminal text and writes one file per slide into the output directory.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, log, err := loadRuntime()
		if err != nil {
			fmt.Printf("failed to start: %v\n", err)
			exitFunc(1)
			return
		}

		loaded, err := resolveDeck(args)
		if err != nil {
			fmt.Printf("failed to load deck: %v\n", err)
			exitFunc(1)
			return
		}

		outputDir := exportOutput
		if outputDir == "" {
			outputDir = cfg.Export.OutputDir
		}

		guard, err := workspace.NewGuard(outputDir)
		if err != nil {
			fmt.Printf("failed to prepare output directory: %v\n", err)
			exitFunc(1)
			return
		}

		width := exportWidth
		if width == 0 {
			width = cfg.Present.Width
		}
		if width == 0 {
			width = 80
		}

		count, err := exportDeck(loaded, guard, width, exportPlain)
		if err != nil {
			fmt.Printf("export failed: %v\n", err)
			exitFunc(1)
			return
		}

		log.Info("Deck exported", "deck", loaded.Path, "slides", count, "output", guard.Root())
		fmt.Printf("wrote %d slide(s) to %s\n", count, guard.Root())
	},
}

func exportDeck(d *deck.Deck, guard *workspace.Guard, width int, plain bool) (int, error) {
	renderer, err := render.New(width, d.FrontMatter.Theme)
	if err != nil {
		return 0, err
	}

	for _, slide := range d.Slides {
		var content string
		if plain {
			content, err = renderer.Body(slide)
		} else {
			content, err = renderer.Slide(d, slide.Number)
		}
		if err != nil {
			return 0, err
		}

		name := fmt.Sprintf("slide-%02d.txt", slide.Number)
		if _, err := guard.WriteFile(name, []byte(content+"\n")); err != nil {
			return 0, fmt.Errorf("write %s: %w", name, err)
		}
	}

	return d.Len(), nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output directory (default ./testdeck-out)")
	exportCmd.Flags().IntVar(&exportWidth, "width", 0, "render width in columns")
	exportCmd.Flags().BoolVar(&exportPlain, "plain", false, "omit the title bar and footer chrome")
}
