package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"silo/seqs"
)

func newRangeCommand(a *app) *cobra.Command {
	var start, end, step int

	cmd := &cobra.Command{
		Use:     "range",
		Short:   "Print the integers from --start up to --end",
		Example: `  silo range --end 10 --step 3   # [0, 3, 6, 9]`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if step == 0 {
				return errors.New("invalid --step 0: must not be zero")
			}
			a.logger.Debug().Int("start", start).Int("end", end).Int("step", step).Msg("printing range")
			s := seqs.PrintCollection(seqs.NewSink(cmd.OutOrStdout()), seqs.Collect(seqs.Range(start, end, step)))
			if err := s.Text("\n").Err(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "first value")
	cmd.Flags().IntVar(&end, "end", 0, "stop before this value")
	cmd.Flags().IntVar(&step, "step", 1, "increment (negative counts down)")
	return cmd
}
