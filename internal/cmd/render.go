package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

type encoder[T any] interface {
	Write(i int, p []T) error
	Close() error
}

type numbered[T any] struct {
	Index       int `json:"index" yaml:"index"`
	Permutation []T `json:"permutation" yaml:"permutation"`
}

func newEncoder[T any](w io.Writer, o options, format func(T) string) encoder[T] {
	switch o.format {
	case formatJSON:
		return &jsonEncoder[T]{enc: json.NewEncoder(w), number: o.number}
	case formatYAML:
		return &yamlEncoder[T]{w: w, number: o.number}
	default:
		return &textEncoder[T]{w: bufio.NewWriter(w), sep: o.sep, number: o.number, format: format}
	}
}

type textEncoder[T any] struct {
	w      *bufio.Writer
	sep    string
	number bool
	format func(T) string

	parts []string
}

func (e *textEncoder[T]) Write(i int, p []T) error {
	e.parts = e.parts[:0]
	for _, v := range p {
		e.parts = append(e.parts, e.format(v))
	}

	if e.number {
		if _, err := fmt.Fprintf(e.w, "%d: ", i); err != nil {
			return err
		}
	}

	_, err := e.w.WriteString(strings.Join(e.parts, e.sep) + "\n")

	return err
}

func (e *textEncoder[T]) Close() error {
	return e.w.Flush()
}

// jsonEncoder writes one JSON document per line.
type jsonEncoder[T any] struct {
	enc    *json.Encoder
	number bool
}

func (e *jsonEncoder[T]) Write(i int, p []T) error {
	if e.number {
		return e.enc.Encode(numbered[T]{Index: i, Permutation: p})
	}

	return e.enc.Encode(p)
}

func (e *jsonEncoder[T]) Close() error {
	return nil
}

// yamlEncoder writes each permutation as an item of one top-level sequence as soon as it
// is produced, so nothing is buffered between permutations.
type yamlEncoder[T any] struct {
	w       io.Writer
	number  bool
	written bool
}

func (e *yamlEncoder[T]) Write(i int, p []T) error {
	var item any = p
	if e.number {
		item = numbered[T]{Index: i, Permutation: p}
	}

	b, err := yaml.Marshal([]any{item})
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	_, err = e.w.Write(b)
	e.written = true

	return err
}

func (e *yamlEncoder[T]) Close() error {
	if e.written {
		return nil
	}

	_, err := io.WriteString(e.w, "[]\n")

	return err
}

func writeCount(w io.Writer, format outputFormat, n *big.Int) error {
	switch format {
	case formatJSON:
		return json.NewEncoder(w).Encode(map[string]*big.Int{"count": n})
	case formatYAML:
		var v any = n.String()
		if n.IsInt64() {
			v = n.Int64()
		}

		b, err := yaml.Marshal(map[string]any{"count": v})
		if err != nil {
			return fmt.Errorf("yaml: %w", err)
		}

		_, err = w.Write(b)

		return err
	default:
		_, err := fmt.Fprintln(w, n.String())

		return err
	}
}
