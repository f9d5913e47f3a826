package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrNotANumber = errors.New("not a number")

func parseElements(args []string, split bool) ([]string, error) {
	if !split {
		return args, nil
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("--split takes exactly one argument, got %d", len(args))
	}

	return strings.Split(args[0], ""), nil
}

func parseInts(elems []string) ([]int64, error) {
	out := make([]int64, 0, len(elems))
	for _, e := range elems {
		n, err := strconv.ParseInt(e, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrNotANumber, e)
		}
		out = append(out, n)
	}

	return out, nil
}

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatString(s string) string {
	return s
}
