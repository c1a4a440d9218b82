package encode

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Trivernis/uwucodec/pkg/app"
	"github.com/Trivernis/uwucodec/pkg/codec"
	"github.com/Trivernis/uwucodec/pkg/encoding"
)

// NewCommand returns the "uwu encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var textFlag string

	cmd := &cobra.Command{
		Use:   "encode INPUT OUTPUT",
		Short: "Encode a file into uwu text",
		Long: `Encode INPUT and write the uwu text to OUTPUT. OUTPUT is created or truncated.
Use "-" to read from stdin or write to stdout.

Input is encoded in chunks. With the default boundary "none" nothing is written
between two chunks, which keeps output compatible with other uwuencode tools.
Use --boundary space for output identical to encoding the whole input at once,
or --boundary newline for one line per chunk.`,
		Example: `  uwu encode picture.png picture.uwu
  cat data.bin | uwu encode - - --boundary newline
  uwu encode -s "Hello World"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("string") {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("string") {
				var enc encoding.Encoder = codec.Codec{}
				text, err := enc.Encode([]byte(textFlag))
				if err != nil {
					return fmt.Errorf("failed to encode string: %w", err)
				}
				fmt.Fprintln(a.OutWriter, string(text))
				return nil
			}

			opts, err := a.StreamOpts(cmd)
			if err != nil {
				return err
			}
			err = a.RunStream(cmd.Context(), args[0], args[1], func(r io.Reader, w io.Writer) error {
				return codec.EncodeStream(r, w, opts...)
			})
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&textFlag, "string", "s", "", "Encode the given string and print it instead of reading a file")
	a.AddEncodeFlags(cmd)

	return cmd
}
