package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
	"github.com/Trivernis/uwucodec/pkg/codec"
	"github.com/Trivernis/uwucodec/pkg/config"
)

// NewCommand returns the "uwu config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle uwu configuration",
	}

	cmd.AddCommand(
		newCurrentProfileCommand(a),
		newUseProfileCommand(a),
		newGetProfilesCommand(a),
		newAddProfileCommand(a),
		newRemoveProfileCommand(a),
		newSelectProfileCommand(a),
	)

	return cmd
}

func newCurrentProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-profile",
		Short: "Displays the current profile",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.CurrentProfile)
		},
	}
}

func newUseProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-profile [NAME]",
		Short:             "Sets the current profile in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if err := a.Cfg.SetCurrentProfile(name); err != nil {
				return fmt.Errorf("profile with name %v not found", name)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", name)
			return nil
		},
	}
}

func newGetProfilesCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-profiles",
		Short: "Display profiles in the configuration file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "  NAME\tCHUNK SIZE\tBOUNDARY\tPOLICY\t\n")
			}
			for _, profile := range a.Cfg.Profiles {
				marker := "  "
				if profile.Name == a.Cfg.CurrentProfile {
					marker = "* "
				}
				fmt.Fprintf(w, "%s%s\t%v\t%v\t%v\t\n", marker, profile.Name,
					orDefault(profile.ChunkSize), orDefault(string(profile.Boundary)), orDefault(string(profile.Policy)))
			}
			w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func orDefault[T comparable](v T) any {
	var zero T
	if v == zero {
		return "-"
	}
	return v
}

func newAddProfileCommand(a *app.App) *cobra.Command {
	var (
		chunkSize int
		boundary  codec.Boundary
		policy    codec.Policy
	)

	cmd := &cobra.Command{
		Use:     "add-profile [NAME]",
		Example: "uwu config add-profile lines --boundary newline --policy strict",
		Short:   "Add profile",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if a.Cfg.HasProfile(name) {
				return fmt.Errorf("could not add profile: profile with name '%v' exists already", name)
			}

			profile := &config.Profile{
				Name:      name,
				ChunkSize: chunkSize,
				Boundary:  boundary,
				Policy:    policy,
			}
			if err := profile.Validate(); err != nil {
				return fmt.Errorf("could not add profile: %w", err)
			}

			a.Cfg.Profiles = append(a.Cfg.Profiles, profile)
			if a.Cfg.CurrentProfile == "" {
				a.Cfg.CurrentProfile = name
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added profile.")
			return nil
		},
	}

	cmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "Number of input bytes encoded per chunk")
	cmd.Flags().Var(&boundary, "boundary", "What to write between chunks: none, space, newline")
	cmd.Flags().Var(&policy, "policy", "Decode policy: lenient, strict")
	return cmd
}

func newRemoveProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-profile [NAME]",
		Short:             "remove profile",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			pos := -1
			for i, profile := range a.Cfg.Profiles {
				if profile.Name == name {
					pos = i
					break
				}
			}

			if pos == -1 {
				return fmt.Errorf("could not delete profile: profile with name '%v' does not exist", name)
			}

			a.Cfg.Profiles = append(a.Cfg.Profiles[:pos], a.Cfg.Profiles[pos+1:]...)
			if a.Cfg.CurrentProfile == name {
				a.Cfg.CurrentProfile = ""
			}

			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed profile.")
			return nil
		},
	}
}

func newSelectProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-profile",
		Short: "Interactively select a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			var profileNames []string
			pos := 0
			for k, profile := range a.Cfg.Profiles {
				profileNames = append(profileNames, profile.Name)
				if profile.Name == a.Cfg.CurrentProfile {
					pos = k
				}
			}
			if len(profileNames) == 0 {
				return fmt.Errorf("no profiles configured in %s", a.Cfg.Path())
			}

			searcher := func(input string, index int) bool {
				profile := profileNames[index]
				name := strings.ReplaceAll(strings.ToLower(profile), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select profile",
				Items:     profileNames,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetCurrentProfile(selected); err != nil {
				return fmt.Errorf("profile with name %v not found", selected)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", selected)
			return nil
		},
	}
}
