package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
)

var generators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error {
		return root.GenBashCompletionV2(w, true)
	},
	"zsh": func(root *cobra.Command, w io.Writer) error {
		return root.GenZshCompletion(w)
	},
	"fish": func(root *cobra.Command, w io.Writer) error {
		return root.GenFishCompletion(w, true)
	},
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// NewCommand returns the "uwu completion" command.
// It takes the root command so it can generate completions for the full tree.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [SHELL]",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `Print a completion script for the given shell. Flags such as --policy,
--boundary and --profile complete their values.

Bash:
  $ source <(uwu completion bash)

Zsh:
  $ uwu completion zsh > "${fpath[1]}/_uwu"

Fish:
  $ uwu completion fish > ~/.config/fish/completions/uwu.fish

PowerShell:
  PS> uwu completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := args[0]
			if err := generators[shell](root, a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", shell, err)
			}
			return nil
		},
	}
}
