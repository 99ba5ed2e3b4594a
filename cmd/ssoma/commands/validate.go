package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ssoma/internal/validate"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a RUC or a safety score",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "ruc <value>",
			Short: "Check that a RUC has exactly 11 digits (empty is allowed)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return report(cmd, validate.TaxID(args[0]), "RUC", args[0])
			},
		},
		&cobra.Command{
			Use:   "score <value>",
			Short: "Check that a score is an integer from 0 to 100 (empty is allowed)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return report(cmd, validate.Score(args[0]), "score", args[0])
			},
		},
	)
	return cmd
}

func report(cmd *cobra.Command, ok bool, what, value string) error {
	if !ok {
		return fmt.Errorf("invalid %s %q", what, value)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "valid")
	return nil
}
