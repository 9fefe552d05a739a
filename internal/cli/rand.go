package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"silo/randx"
	"silo/seqs"
)

type randOptions struct {
	min, max string
	count    int
	seed     uint64
	float    bool
}

func newRandCommand(a *app) *cobra.Command {
	var opts randOptions

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print random values drawn between --min and --max",
		Example: `  silo rand --min 1 --max 6 --count 5
  silo rand --float --min 0 --max 1 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.count < 0 {
				return fmt.Errorf("invalid --count %d: must not be negative", opts.count)
			}

			var g *randx.Generator
			if cmd.Flags().Changed("seed") {
				g = randx.New(opts.seed)
			} else {
				g = randx.NewRandom()
			}
			a.logger.Debug().
				Str("min", opts.min).
				Str("max", opts.max).
				Int("count", opts.count).
				Bool("seeded", cmd.Flags().Changed("seed")).
				Msg("drawing values")

			s := seqs.NewSink(cmd.OutOrStdout())
			if opts.float {
				lo, hi, err := parseBounds(opts, func(v string) (float64, error) {
					return strconv.ParseFloat(v, 64)
				})
				if err != nil {
					return err
				}
				seqs.PrintCollection(s, seqs.FromSeq(seqs.Random(g, opts.count, lo, hi), opts.count))
			} else {
				lo, hi, err := parseBounds(opts, func(v string) (int64, error) {
					return strconv.ParseInt(v, 10, 64)
				})
				if err != nil {
					return err
				}
				seqs.PrintCollection(s, seqs.FromSeq(seqs.Random(g, opts.count, lo, hi), opts.count))
			}
			if err := s.Text("\n").Err(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.min, "min", "0", "lower bound")
	cmd.Flags().StringVar(&opts.max, "max", "100", "upper bound (inclusive for integers, exclusive for --float)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of values")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed for reproducible output (random if unset)")
	cmd.Flags().BoolVar(&opts.float, "float", false, "draw floating-point values")
	return cmd
}

func parseBounds[T randx.Number](opts randOptions, parse func(string) (T, error)) (lo, hi T, err error) {
	if lo, err = parse(opts.min); err != nil {
		return lo, hi, fmt.Errorf("invalid --min %q: %w", opts.min, err)
	}
	if hi, err = parse(opts.max); err != nil {
		return lo, hi, fmt.Errorf("invalid --max %q: %w", opts.max, err)
	}
	return lo, hi, nil
}
