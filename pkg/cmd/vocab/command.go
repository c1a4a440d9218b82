package vocab

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
	pkgvocab "github.com/Trivernis/uwucodec/pkg/vocab"
)

type entry struct {
	Nibble int    `json:"nibble"`
	Hex    string `json:"hex"`
	Word   string `json:"word"`
}

// NewCommand returns the "uwu vocab" command.
func NewCommand(a *app.App) *cobra.Command {
	var (
		checkFlag  bool
		outputFlag = app.OutputFormatDefault
	)

	cmd := &cobra.Command{
		Use:     "vocab",
		Aliases: []string{"vocabulary"},
		Short:   "Print the word used for every nibble value",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkFlag {
				if err := pkgvocab.Validate(); err != nil {
					return fmt.Errorf("vocabulary is broken: %w", err)
				}
				fmt.Fprintln(a.OutWriter, "Vocabulary OK.")
				return nil
			}

			entries := make([]entry, 0, pkgvocab.Len)
			for i, w := range pkgvocab.Words {
				entries = append(entries, entry{Nibble: i, Hex: fmt.Sprintf("%X", i), Word: w})
			}

			if outputFlag == app.OutputFormatJSON {
				b, err := a.FormatJSON(entries)
				if err != nil {
					return fmt.Errorf("failed to format vocabulary: %w", err)
				}
				fmt.Fprintln(a.ColorableOut, string(b))
				return nil
			}

			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "NIBBLE\tHEX\tWORD\t\n")
			}
			for _, e := range entries {
				fmt.Fprintf(w, "%v\t%v\t%v\t\n", e.Nibble, e.Hex, e.Word)
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkFlag, "check", false, "Verify that the vocabulary is a valid one-to-one mapping")
	cmd.Flags().VarP(&outputFlag, "output", "o", "Set output format: default, json")
	a.AddNoHeadersFlag(cmd)

	if err := cmd.RegisterFlagCompletionFunc("output", app.CompleteOutputFormat); err != nil {
		panic(fmt.Sprintf("Failed to register flag completion: %v", err))
	}

	return cmd
}
