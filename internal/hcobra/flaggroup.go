package hcobra

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// FlagSet is a named group of flags, rendered under its own heading in usage.
type FlagSet struct {
	Name string
	*pflag.FlagSet
}

func NewFlagSet(name string) FlagSet {
	return FlagSet{Name: name, FlagSet: pflag.NewFlagSet(name, pflag.ContinueOnError)}
}

// AddFlagSets registers the groups on cmd and renders them in its usage.
func AddFlagSets(cmd *cobra.Command, flagsets ...FlagSet) {
	for _, fs := range flagsets {
		cmd.Flags().AddFlagSet(fs.FlagSet)
	}

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		_, err := io.WriteString(c.OutOrStderr(), usage(c, flagsets))
		return err
	})
}

func usage(cmd *cobra.Command, flagsets []FlagSet) string {
	var sb strings.Builder
	sb.WriteString("Usage:\n  ")
	sb.WriteString(cmd.UseLine())
	sb.WriteString("\n")

	if cmd.HasExample() {
		sb.WriteString("\nExamples:\n")
		sb.WriteString(cmd.Example)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(RenderFlags(cmd.LocalFlags(), flagsets, "Flags", "Other Flags"))

	return sb.String()
}

func RenderFlags(cmdFlagSet *pflag.FlagSet, flagsets []FlagSet, groupNameOnly, groupNameOther string) string {
	var sb strings.Builder

	section := func(name, usages string) {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(name)
		sb.WriteString(":\n")
		sb.WriteString(usages)
	}

	visited := map[string]struct{}{}
	for _, fs := range flagsets {
		section(fs.Name, fs.FlagUsages())

		fs.VisitAll(func(flag *pflag.Flag) {
			visited[flag.Name] = struct{}{}
		})
	}

	if len(visited) == 0 {
		section(groupNameOnly, cmdFlagSet.FlagUsages())

		return sb.String()
	}

	other := pflag.NewFlagSet("", pflag.ContinueOnError)
	cmdFlagSet.VisitAll(func(flag *pflag.Flag) {
		if _, ok := visited[flag.Name]; ok {
			return
		}

		other.AddFlag(flag)
	})

	if other.HasAvailableFlags() {
		section(groupNameOther, other.FlagUsages())
	}

	return sb.String()
}
