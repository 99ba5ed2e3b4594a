package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// date <value>...: format each value for the configured locale.
func dateCmd() *cobra.Command {
	var millis bool
	cmd := &cobra.Command{
		Use:   "date <value>...",
		Short: "Format dates for the configured locale",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range args {
				var v any = a
				if millis {
					ms, err := strconv.ParseInt(a, 10, 64)
					if err != nil {
						return fmt.Errorf("timestamp %q: %w", a, err)
					}
					v = ms
				}
				fmt.Fprintln(cmd.OutOrStdout(), appCtx.Dates.Format(v))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&millis, "millis", false, "treat values as Unix timestamps in milliseconds")
	return cmd
}
