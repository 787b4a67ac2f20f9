package cli

import (
	"fmt"

	"github.com/raphaelgruber/rolemodel-curate/internal/curate"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a curated record",
	Long: `Show the summary of a curated record.

A bare file name is looked up in the output folder; a path is read as given.

Examples:
  curate show SelenaGomez_1_42.json
  curate show ./backup/SelenaGomez_1_42.json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	path := recordStore.RecordPath(args[0])

	rec, err := recordStore.Load(path)
	if err != nil {
		return fmt.Errorf("show %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File: %s\n", path)
	curate.WriteSummary(out, curate.OutputTheme(out, cfg.NoColor), rec)
	return nil
}
