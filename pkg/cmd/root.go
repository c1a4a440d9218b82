package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
	"github.com/Trivernis/uwucodec/pkg/cmd/completion"
	uwuconfig "github.com/Trivernis/uwucodec/pkg/cmd/config"
	"github.com/Trivernis/uwucodec/pkg/cmd/decode"
	"github.com/Trivernis/uwucodec/pkg/cmd/encode"
	"github.com/Trivernis/uwucodec/pkg/cmd/vocab"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(app.New(), version, commit).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "uwu",
		Short:        "Encode binary data as uwu text and back",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
				a.ColorOutput = false
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.uwu/config)")
	root.PersistentFlags().StringVarP(&a.ProfileOverride, "profile", "p", "", "set a temporary current profile")
	if err := root.RegisterFlagCompletionFunc("profile", a.ValidProfileArgs); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log every chunk and line to stderr")

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		vocab.NewCommand(a),
		uwuconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
