package cli

import (
	"fmt"

	"github.com/raphaelgruber/rolemodel-curate/internal/curate"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify curated records",
	Long: `Verify every record in the output folder.

Each record is decoded and checked against the same rules the session
enforces: field lengths, 2-4 themes from the vocabulary, a non-empty
strategy list, a Source_Reference naming an existing raw file, a quote
that appears in that file, and a file name matching the role model.

Exits with an error if any record fails.

Examples:
  curate check
  curate check -v`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	findings, err := curate.CheckRecords(recordStore, cfg.Themes)
	if err != nil {
		return fmt.Errorf("check records: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(findings) == 0 {
		fmt.Fprintf(out, "No records found in %s.\n", recordStore.OutputDir())
		return nil
	}

	failed := 0
	for _, f := range findings {
		if f.OK() {
			if verbose {
				fmt.Fprintf(out, "ok    %s\n", f.FileName)
			}
			continue
		}
		failed++
		fmt.Fprintf(out, "FAIL  %s\n", f.FileName)
		for _, p := range f.Problems {
			fmt.Fprintf(out, "      - %s\n", p)
		}
	}

	logger.Info("records checked", "total", len(findings), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed checks", failed, len(findings))
	}
	fmt.Fprintf(out, "All %d records passed.\n", len(findings))
	return nil
}
