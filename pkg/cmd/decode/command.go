package decode

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
	"github.com/Trivernis/uwucodec/pkg/codec"
	"github.com/Trivernis/uwucodec/pkg/encoding"
)

// NewCommand returns the "uwu decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var textFlag string

	cmd := &cobra.Command{
		Use:   "decode INPUT OUTPUT",
		Short: "Decode uwu text back into a file",
		Long: `Decode the uwu text in INPUT and write the bytes to OUTPUT. OUTPUT is created or truncated.
Use "-" to read from stdin or write to stdout.

Input is decoded line by line, so a word must never be split across lines and
every line must hold whole word pairs. With the default policy "lenient",
unknown words decode as 0 and an unpaired word at the end of a line is dropped;
--policy strict reports both as errors.`,
		Example: `  uwu decode picture.uwu picture.png
  uwu encode -s hi | uwu decode - - --policy strict
  uwu decode -s "omo o_o q_p Nya"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("string") {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("string") {
				var dec encoding.Decoder = codec.Codec{Policy: a.EffectiveProfile(cmd).Policy}
				data, err := dec.Decode([]byte(textFlag))
				if err != nil {
					return fmt.Errorf("failed to decode string: %w", err)
				}
				_, err = a.OutWriter.Write(data)
				return err
			}

			opts, err := a.StreamOpts(cmd)
			if err != nil {
				return err
			}
			err = a.RunStream(cmd.Context(), args[0], args[1], func(r io.Reader, w io.Writer) error {
				return codec.DecodeStream(r, w, opts...)
			})
			if err != nil {
				return fmt.Errorf("failed to decode %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "string", "s", "", "Decode the given text and print the bytes instead of reading a file")
	a.AddDecodeFlags(cmd)

	return cmd
}
