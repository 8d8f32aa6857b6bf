package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sigil/internal/driver"
	"sigil/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] dir",
	Short: "Check all definitions under a directory",
	Long: `Check parses every source file under the directory in parallel and
reports malformed definitions. The source extension and cache settings come
from sigil.toml when present`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "number of parallel workers (0 = NumCPU)")
	checkCmd.Flags().Bool("cache", false, "cache results by content hash (implied by sigil.toml)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	dir := args[0]

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	cacheFlag, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}

	manifest, err := project.Discover(dir)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}

	opts := driver.CheckOptions{
		Ext:            manifest.Package.Ext,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics(cmd),
	}
	if cacheFlag || manifest.Check.Cache {
		cache, cacheErr := driver.NewDiskCache(manifest.Check.CacheDir)
		if cacheErr != nil {
			return fmt.Errorf("opening cache: %w", cacheErr)
		}
		opts.Cache = cache
	}

	fileSet, results, err := driver.CheckDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	totalDefs := 0
	for i := range results {
		totalDefs += results[i].DefCount
		printDiagnostics(cmd, results[i].Bag, fileSet)
	}

	errs := driver.TotalErrors(results)
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s), %d definition(s), %d error(s)\n",
		len(results), totalDefs, errs)
	if errs > 0 {
		os.Exit(1)
	}
	return nil
}
