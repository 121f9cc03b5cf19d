package commands

import (
	"fmt"
	"strings"

	"humanness-tasks/internal/noise"

	"github.com/spf13/cobra"
)

func (c *CLI) newNoiseTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "noise-test",
		Short: "Run a noise test, optionally replaying fixed samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			samples, _ := cmd.Flags().GetIntSlice("samples")

			source := c.deps.NoiseSource
			cfg := c.deps.NoiseConfig
			if len(samples) > 0 {
				source = noise.NewSequenceSource(samples...)
				cfg.SampleCount = len(samples)
			}

			out := cmd.OutOrStdout()
			sampler := noise.NewSampler(source, c.deps.Clock, cfg)
			result, err := sampler.Run(cmd.Context(), func(r noise.Reading) {
				fmt.Fprintf(out, "sample %2d: %d dB %s\n", r.Index+1, r.Level, strings.Repeat("#", r.Level/5))
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "result: %s at %d dB - %s\n", result.Verdict, result.LastSample, result.Message)
			return nil
		},
	}
	cmd.Flags().IntSlice("samples", nil, "Replay these readings instead of sampling, e.g. 45,38,35")
	return cmd
}
