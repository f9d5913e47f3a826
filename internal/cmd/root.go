package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hephbuild/hperm/internal/hcobra"
	"github.com/hephbuild/hperm/internal/hcore/hlog"
	"github.com/spf13/cobra"
)

type options struct {
	format  outputFormat
	sep     string
	split   bool
	numeric bool
	limit   int
	count   bool
	number  bool
	naive   bool
	stats   bool
	debug   bool
}

func newRootCmd(levelVar *slog.LevelVar) *cobra.Command {
	o := options{format: formatText}

	cmd := &cobra.Command{
		Use:   "hperm [flags] ELEMENT...",
		Short: "Prints every distinct permutation of its arguments, in lexicographic order",
		Example: `  hperm a a b
  hperm --split mississippi --count
  hperm --numeric --format json 10 9 9`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if o.debug {
				levelVar.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), o, args)
		},
	}

	input := hcobra.NewFlagSet("Input")
	input.BoolVar(&o.split, "split", false, "split a single argument into its characters")
	input.BoolVar(&o.numeric, "numeric", false, "treat elements as integers and order them numerically")

	output := hcobra.NewFlagSet("Output")
	output.VarP(&o.format, "format", "f", "output format, one of text, json, yaml")
	output.StringVar(&o.sep, "sep", " ", "element separator for text output")
	output.IntVarP(&o.limit, "limit", "n", 0, "stop after this many permutations, 0 for no limit")
	output.BoolVarP(&o.count, "count", "c", false, "only print the number of distinct permutations")
	output.BoolVar(&o.number, "number", false, "prefix each permutation with its index")

	cmd.Flags().BoolVar(&o.naive, "naive", false, "use the brute-force generator, for comparison")
	cmd.Flags().BoolVar(&o.stats, "stats", false, "log the frequency of each element")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug log")

	hcobra.AddFlagSets(cmd, input, output)

	return cmd
}

func Execute() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var levelVar slog.LevelVar
	levelVar.Set(slog.LevelInfo)

	logger := newLogger(os.Stderr, &levelVar)
	ctx = hlog.ContextWithLogger(ctx, logger)

	if err := newRootCmd(&levelVar).ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		return 1
	}

	return 0
}

// newLogger colors levels only when w is a terminal.
func newLogger(w io.Writer, leveler slog.Leveler) hlog.Logger {
	var renderer hlog.Renderer
	if isTerminal(w) {
		renderer = hlog.NewRenderer()
	}

	return hlog.NewRenderedTextLogger(w, leveler, renderer)
}
