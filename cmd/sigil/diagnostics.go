package main

import (
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/diag"
	"sigil/internal/diagfmt"
	"sigil/internal/source"
)

// printDiagnostics выводит диагностики в stderr, если они есть.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:       useColor(cmd, os.Stderr),
		ShowPreview: true,
		Width:       previewWidth(),
	})
}

// previewWidth ограничивает превью шириной терминала.
func previewWidth() int {
	width, _, err := termSize(os.Stderr)
	if err != nil || width <= 8 {
		return 120
	}
	return width - 4
}
