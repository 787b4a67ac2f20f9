package cli

import (
	"errors"
	"fmt"

	"github.com/raphaelgruber/rolemodel-curate/internal/curate"
	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"run"},
	Short:   "Run an interactive curation session",
	Long: `Run an interactive curation session. This is also what curate does
when started without a subcommand.

The session asks for your roll number, lists the raw .txt files, and walks
you through each record field. Enter 0 at file selection to finish.

Examples:
  curate session
  curate run --raw-dir ./Raw_Data`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

func runSession(cmd *cobra.Command, args []string) error {
	s := curate.New(cfg, recordStore, cmd.InOrStdin(), cmd.OutOrStdout(), logger)

	total, err := s.Run()
	if err != nil {
		if total > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d record(s) were saved to %s before the session stopped.\n", total, cfg.OutputDir)
		}
		if errors.Is(err, curate.ErrInputClosed) {
			return fmt.Errorf("session aborted: %w", err)
		}
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
