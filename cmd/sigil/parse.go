package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.sx",
	Short: "Parse definition forms in a source file",
	Long:  `Parse destructures every fn/defn form and prints its structure`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.ParseFile(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)

	for _, form := range result.Definitions() {
		printDefinition(cmd.OutOrStdout(), form)
	}
	if result.Bag.HasErrors() {
		os.Exit(1)
	}
	return nil
}

func printDefinition(w io.Writer, form driver.ParsedForm) {
	switch {
	case form.Defn != nil:
		d := form.Defn
		fmt.Fprintf(w, "defn %s\n", d.Name.Text)
		for _, e := range d.Meta {
			fmt.Fprintf(w, "  meta %s %s\n", e.Key, e.Val)
		}
		for _, c := range d.Clauses {
			fmt.Fprintf(w, "  clause %s (%d params, %d body forms)\n",
				c.Params, len(c.Params.Items), len(c.Body))
		}
	case form.Fn != nil:
		f := form.Fn
		name := "<anonymous>"
		if f.Name != nil {
			name = f.Name.Text
		}
		fmt.Fprintf(w, "fn %s\n", name)
		for _, c := range f.Clauses {
			fmt.Fprintf(w, "  clause %s (%d params, %d body forms)\n",
				c.Params, len(c.Params.Items), len(c.Body))
		}
	}
}
