package cmd

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/hephbuild/hperm/internal/hcore/hlog"
	"github.com/hephbuild/hperm/internal/hcore/hlog/hlogtest"
	"github.com/hephbuild/hperm/internal/hmultiset"
	"github.com/hephbuild/hperm/internal/hpanic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var levelVar slog.LevelVar
	cmd := newRootCmd(&levelVar)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{}, args...))

	err := cmd.ExecuteContext(hlogtest.NewContext(t))

	return out.String(), err
}

func TestRootText(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"no args", nil, ""},
		{"repeat", []string{"b", "a", "a"}, "a a b\na b a\nb a a\n"},
		{"sep", []string{"--sep", ",", "0", "1"}, "0,1\n1,0\n"},
		{"split", []string{"--split", "aba"}, "a a b\na b a\nb a a\n"},
		{"limit", []string{"-n", "2", "a", "b", "c"}, "a b c\na c b\n"},
		{"number", []string{"--number", "x", "y"}, "0: x y\n1: y x\n"},
		{"naive", []string{"--naive", "1", "0", "1"}, "0 1 1\n1 0 1\n1 1 0\n"},
		{"lexical order", []string{"10", "9"}, "10 9\n9 10\n"},
		{"numeric order", []string{"--numeric", "10", "9"}, "9 10\n10 9\n"},
		{"count", []string{"--count", "--split", "mississippi"}, "34650\n"},
		{"count empty", []string{"--count"}, "0\n"},
		{"stats", []string{"--stats", "--debug", "a", "a"}, "a a\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := execute(t, test.args...)
			require.NoError(t, err)

			assert.Equal(t, test.expected, out)
		})
	}
}

func TestRootJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "0", "0", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	var res [][]string
	for _, line := range lines {
		var p []string
		require.NoError(t, json.Unmarshal([]byte(line), &p))
		res = append(res, p)
	}

	assert.Equal(t, [][]string{{"0", "0", "1"}, {"0", "1", "0"}, {"1", "0", "0"}}, res)
}

func TestRootJSONNumeric(t *testing.T) {
	out, err := execute(t, "-f", "JSON", "--numeric", "--number", "-n", "1", "2", "1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"index":0,"permutation":[1,2]}`, out)
}

func TestRootJSONCount(t *testing.T) {
	out, err := execute(t, "--format", "json", "--count", "a", "a", "b", "b")
	require.NoError(t, err)

	assert.JSONEq(t, `{"count":6}`, out)
}

func TestRootYAML(t *testing.T) {
	out, err := execute(t, "--format", "yaml", "0", "1", "0", "1")
	require.NoError(t, err)

	var res [][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))

	assert.Equal(t, [][]string{
		{"0", "0", "1", "1"},
		{"0", "1", "0", "1"},
		{"0", "1", "1", "0"},
		{"1", "0", "0", "1"},
		{"1", "0", "1", "0"},
		{"1", "1", "0", "0"},
	}, res)
}

func TestRootYAMLCount(t *testing.T) {
	out, err := execute(t, "--format", "yaml", "--count", "a", "b", "c")
	require.NoError(t, err)

	var res struct {
		Count int64 `yaml:"count"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))

	assert.Equal(t, int64(6), res.Count)
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"unknown format", []string{"--format", "xml", "a"}, "unknown output format"},
		{"split arity", []string{"--split", "ab", "cd"}, "--split takes exactly one argument, got 2"},
		{"not a number", []string{"--numeric", "1", "x"}, `not a number: "x"`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := execute(t, test.args...)

			assert.ErrorContains(t, err, test.err)
		})
	}
}

func TestParseInts(t *testing.T) {
	ns, err := parseInts([]string{"3", "-1", "3"})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, -1, 3}, ns)

	_, err = parseInts([]string{"1.5"})
	assert.ErrorIs(t, err, ErrNotANumber)
}

func TestOutputFormat(t *testing.T) {
	var f outputFormat

	require.NoError(t, f.Set("Yaml"))
	assert.Equal(t, "yaml", f.String())

	assert.ErrorIs(t, f.Set("toml"), ErrUnknownFormat)
	assert.Equal(t, formatYAML, f)
}

func TestRootHelp(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:\n  hperm [flags] ELEMENT...")
	assert.Contains(t, out, "Input:\n")
	assert.Contains(t, out, "Output:\n")
	assert.Contains(t, out, "--split")
	assert.Contains(t, out, "Other Flags:\n")
	assert.Contains(t, out, "--naive")
}

func TestRootStatsLogs(t *testing.T) {
	var logs bytes.Buffer
	ctx := hlog.ContextWithLogger(t.Context(), hlog.NewTextLogger(&logs, slog.LevelInfo))

	var levelVar slog.LevelVar
	cmd := newRootCmd(&levelVar)
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"--stats", "--numeric", "10", "9", "9"})

	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Equal(t, "INFO frequency naive=false value=9 count=2\nINFO frequency naive=false value=10 count=1\n", logs.String())
}

func TestDescribeInput(t *testing.T) {
	_, err := hpanic.RecoverV(func() (int, error) {
		panic("boom")
	}, describeInput(hmultiset.Of([]string{"a", "a", "b"})))

	assert.EqualError(t, err, "3 elements, 2 distinct: panic: boom")

	var perr *hpanic.Error
	assert.ErrorAs(t, err, &perr)
}

func TestNewLoggerPlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, slog.LevelInfo).Warn("large", "permutations", "12")

	assert.Equal(t, "WARN large permutations=12\n", buf.String())
}

func TestYAMLEncoderStreams(t *testing.T) {
	var out bytes.Buffer
	enc := newEncoder(&out, options{format: formatYAML}, formatString)

	require.NoError(t, enc.Write(0, []string{"a", "b"}))
	assert.NotEmpty(t, out.String())

	require.NoError(t, enc.Write(1, []string{"b", "a"}))
	require.NoError(t, enc.Close())

	var res [][]string
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &res))
	assert.Equal(t, [][]string{{"a", "b"}, {"b", "a"}}, res)
}

func TestRootYAMLNumberedAndEmpty(t *testing.T) {
	out, err := execute(t, "--format", "yaml", "--number", "x", "y")
	require.NoError(t, err)

	var res []numbered[string]
	require.NoError(t, yaml.Unmarshal([]byte(out), &res))
	assert.Equal(t, []numbered[string]{
		{Index: 0, Permutation: []string{"x", "y"}},
		{Index: 1, Permutation: []string{"y", "x"}},
	}, res)

	out, err = execute(t, "--format", "yaml")
	require.NoError(t, err)

	var empty [][]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &empty))
	assert.Empty(t, empty)
}
