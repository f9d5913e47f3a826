package cmd

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"iter"
	"maps"
	"math/big"
	"os"
	"slices"
	"time"

	"github.com/hephbuild/hperm/internal/hcore/hlog"
	"github.com/hephbuild/hperm/internal/hiter"
	"github.com/hephbuild/hperm/internal/hmaps"
	"github.com/hephbuild/hperm/internal/hmultiset"
	"github.com/hephbuild/hperm/internal/hpanic"
	"github.com/hephbuild/hperm/lib/distinctperm"
	"github.com/mattn/go-isatty"
)

var largeOutput = big.NewInt(100_000)

func run(ctx context.Context, w io.Writer, o options, args []string) error {
	elems, err := parseElements(args, o.split)
	if err != nil {
		return err
	}

	if o.numeric {
		ns, err := parseInts(elems)
		if err != nil {
			return err
		}

		return generate(ctx, w, o, ns, formatInt)
	}

	return generate(ctx, w, o, elems, formatString)
}

func generate[T cmp.Ordered](ctx context.Context, w io.Writer, o options, input []T, format func(T) string) error {
	ctx = hlog.ContextWith(ctx, "naive", o.naive)
	logger := hlog.From(ctx)

	counts := hmultiset.Of(input)
	logger.Debug("input", "elements", counts.Len(), "distinct", counts.Distinct())

	if o.stats {
		for v, c := range hmaps.SortedFunc(maps.Collect(counts.All()), cmp.Compare[T]) {
			logger.Info("frequency", "value", format(v), "count", c)
		}
	}

	n := distinctperm.Count(input)
	logger.Debug("cardinality", "permutations", n.String())

	if o.count {
		return writeCount(w, o.format, n)
	}

	if o.limit <= 0 && isTerminal(w) && n.Cmp(largeOutput) > 0 {
		logger.Warn("writing a large number of permutations to the terminal, consider --limit", "permutations", n.String())
	}

	enc := newEncoder(w, o, format)

	start := time.Now()
	written, err := hpanic.RecoverV(func() (int, error) {
		var seq iter.Seq[[]T]
		if o.naive {
			seq = slices.Values(distinctperm.Naive(input))
		} else {
			seq = distinctperm.All(input)
		}

		var written int
		for i, p := range hiter.Index(hiter.Limit(seq, o.limit)) {
			if err := enc.Write(i, p); err != nil {
				return written, err
			}
			written++
		}

		return written, enc.Close()
	}, describeInput(counts))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	logger.Debug("done", "written", written, "duration", time.Since(start))

	return nil
}

// describeInput adds the input shape to a recovered panic.
func describeInput[T comparable](counts *hmultiset.Counter[T]) hpanic.Option {
	return hpanic.Wrap(func(err *hpanic.Error) error {
		return fmt.Errorf("%d elements, %d distinct: %w", counts.Len(), counts.Distinct(), err)
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
