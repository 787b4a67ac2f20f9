package cli

import (
	"fmt"
	"strings"

	"github.com/raphaelgruber/rolemodel-curate/internal/models"
	"github.com/spf13/cobra"
)

var (
	listSubject  string
	listOperator string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List curated records",
	Long: `List the records in the output folder with optional filtering.

The subject filter is matched against the sanitized role model name used in
file names, so "Selena Gomez" and "SelenaGomez" select the same records.

Examples:
  curate list
  curate list --subject "Selena Gomez"
  curate list --operator 42
  curate list -v`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSubject, "subject", "s", "", "filter by role model name")
	listCmd.Flags().StringVarP(&listOperator, "operator", "o", "", "filter by roll number")
}

func runList(cmd *cobra.Command, args []string) error {
	entries, err := recordStore.List()
	if err != nil {
		return fmt.Errorf("list records: %w", err)
	}

	subject := models.SanitizeName(listSubject)
	out := cmd.OutOrStdout()

	shown := 0
	for _, e := range entries {
		if subject != "" && e.Key.Subject != subject {
			continue
		}
		if listOperator != "" && e.Key.Operator != listOperator {
			continue
		}
		if shown == 0 {
			fmt.Fprintf(out, "Records in %s:\n\n", recordStore.OutputDir())
		}
		shown++

		if e.Err != nil {
			fmt.Fprintf(out, "- %s [unreadable: %v]\n", e.FileName, e.Err)
			continue
		}
		fmt.Fprintf(out, "- %s  %s #%d (roll %s)\n", e.FileName, e.Record.RoleModelName, e.Number, e.Key.Operator)
		if verbose {
			fmt.Fprintf(out, "  Themes: %s\n", strings.Join(e.Record.MentalHealthThemes, ", "))
			fmt.Fprintf(out, "  Source: %s\n", e.Record.SourceReference)
		}
	}

	if shown == 0 {
		fmt.Fprintln(out, "No records found.")
		return nil
	}
	fmt.Fprintf(out, "\n%d record(s)\n", shown)
	return nil
}
