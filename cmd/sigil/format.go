package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/driver"
)

var formatCmd = &cobra.Command{
	Use:   "format [flags] file.sx",
	Short: "Rebuild definition forms in canonical shape",
	Long: `Format parses every fn/defn form and prints the file back with
definitions rebuilt canonically: docstrings folded into the metadata map,
clauses re-emitted in source order`,
	Args: cobra.ExactArgs(1),
	RunE: runFormat,
}

func init() {
	formatCmd.Flags().BoolP("write", "w", false, "write result back to the file instead of stdout")
}

func runFormat(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}

	result, err := driver.ParseFile(filePath, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("format failed: %w", err)
	}

	printDiagnostics(cmd, result.Bag, result.FileSet)
	if result.Bag.HasErrors() {
		// не переписываем файл с ошибками
		return fmt.Errorf("%s: %s", filePath, result.Bag.Summary())
	}

	out := driver.Format(result)
	if write {
		return os.WriteFile(filePath, []byte(out), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
