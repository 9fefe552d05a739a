package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"silo/seqs"
)

func newFmtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "fmt [values...]",
		Short:   "Print the arguments as a collection",
		Example: `  silo fmt 1 2 3      # [1, 2, 3]`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug().Int("count", len(args)).Msg("formatting arguments")
			s := seqs.PrintCollection(seqs.NewSink(cmd.OutOrStdout()), seqs.Slice[string](args))
			if err := s.Text("\n").Err(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}
