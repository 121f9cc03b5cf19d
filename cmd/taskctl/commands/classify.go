package commands

import (
	"errors"
	"fmt"

	"humanness-tasks/internal/recording"

	"github.com/spf13/cobra"
)

func (c *CLI) newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a recording duration against the 10 to 20 second policy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seconds, _ := cmd.Flags().GetInt("duration")
			if seconds < 0 {
				return errors.New("duration must not be negative")
			}

			outcome, advisory := recording.Classify(seconds)
			if advisory != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%ds: %s (%s)\n", seconds, outcome, advisory)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%ds: %s\n", seconds, outcome)
			return nil
		},
	}
	cmd.Flags().IntP("duration", "d", 0, "Recording duration in whole seconds")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}
