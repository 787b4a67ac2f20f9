package cli

import (
	"fmt"

	"github.com/raphaelgruber/rolemodel-curate/internal/validate"
	"github.com/spf13/cobra"
)

var (
	nextSubject  string
	nextOperator string
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next story number for a role model",
	Long: `Print the story number the next record for a role model and roll
number would get. Numbers are computed from the files in the output folder.

Examples:
  curate next --subject "Selena Gomez" --operator 42`,
	Args: cobra.NoArgs,
	RunE: runNext,
}

func init() {
	nextCmd.Flags().StringVarP(&nextSubject, "subject", "s", "", "role model name (required)")
	nextCmd.Flags().StringVarP(&nextOperator, "operator", "o", "", "roll number (required)")
	_ = nextCmd.MarkFlagRequired("subject")
	_ = nextCmd.MarkFlagRequired("operator")
}

func runNext(cmd *cobra.Command, args []string) error {
	subject, err := validate.Name(nextSubject)
	if err != nil {
		return fmt.Errorf("invalid subject: %w", err)
	}
	operator, err := validate.OperatorID(nextOperator)
	if err != nil {
		return fmt.Errorf("invalid operator: %w", err)
	}

	n, err := recordStore.NextSequenceNumber(subject, operator)
	if err != nil {
		return fmt.Errorf("next story number: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
