package app

import (
	"fmt"

	"github.com/hokaccha/go-prettyjson"
	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/codec"
)

// OutputFormat controls how listings are printed.
type OutputFormat string

const (
	OutputFormatDefault OutputFormat = "default"
	OutputFormatJSON    OutputFormat = "json"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "json":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, json")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "json"}, cobra.ShellCompDirectiveNoFileComp
}

// CompleteBoundary provides shell completion for --boundary.
func CompleteBoundary(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return codec.Boundaries, cobra.ShellCompDirectiveNoFileComp
}

// CompletePolicy provides shell completion for --policy.
func CompletePolicy(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return codec.Policies, cobra.ShellCompDirectiveNoFileComp
}

// FormatJSON pretty-prints v, colored when the output is a terminal.
func (a *App) FormatJSON(v any) ([]byte, error) {
	f := prettyjson.NewFormatter()
	f.DisabledColor = !a.ColorOutput
	return f.Marshal(v)
}
