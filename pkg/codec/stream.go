package codec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultChunkSize is the number of input bytes EncodeStream encodes at a time.
const DefaultChunkSize = 1024

type streamOptions struct {
	chunkSize int
	boundary  Boundary
	policy    Policy
	logger    zerolog.Logger
}

// StreamOpt configures EncodeStream and DecodeStream.
type StreamOpt func(*streamOptions)

// WithChunkSize sets the encode chunk size. Values <= 0 select DefaultChunkSize.
func WithChunkSize(n int) StreamOpt {
	return func(o *streamOptions) {
		if n <= 0 {
			n = DefaultChunkSize
		}
		o.chunkSize = n
	}
}

// WithBoundary sets what is written between encoded chunks.
func WithBoundary(b Boundary) StreamOpt {
	return func(o *streamOptions) { o.boundary = b }
}

// WithPolicy sets the decode policy used by DecodeStream.
func WithPolicy(p Policy) StreamOpt {
	return func(o *streamOptions) { o.policy = p }
}

// WithLogger makes the stream functions log every chunk or line at debug level.
func WithLogger(l zerolog.Logger) StreamOpt {
	return func(o *streamOptions) { o.logger = l }
}

func newStreamOptions(opts []StreamOpt) streamOptions {
	o := streamOptions{
		chunkSize: DefaultChunkSize,
		boundary:  BoundaryNone,
		policy:    Lenient,
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EncodeStream encodes r chunk by chunk and writes the text to w. Every
// chunk but the last holds exactly the configured chunk size. Read and
// write errors abort the stream immediately.
func EncodeStream(r io.Reader, w io.Writer, opts ...StreamOpt) error {
	o := newStreamOptions(opts)

	var (
		in  = make([]byte, o.chunkSize)
		out = make([]byte, 0, o.chunkSize*maxEncodedBytesPerByte+1)
		enc = NewWriter(w)
	)
	for chunk := 0; ; chunk++ {
		n, err := io.ReadFull(r, in)
		eof := errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
		if err != nil && !eof {
			return fmt.Errorf("read chunk %d: %w", chunk, err)
		}
		if n > 0 {
			if o.boundary == BoundarySpace {
				if _, werr := enc.Write(in[:n]); werr != nil {
					return fmt.Errorf("write chunk %d: %w", chunk, werr)
				}
			} else {
				out = AppendEncode(out[:0], in[:n])
				if o.boundary == BoundaryNewline {
					out = append(out, '\n')
				}
				if _, werr := w.Write(out); werr != nil {
					return fmt.Errorf("write chunk %d: %w", chunk, werr)
				}
			}
			o.logger.Debug().Int("chunk", chunk).Int("bytes", n).Msg("encoded chunk")
		}

		if eof {
			return nil
		}
	}
}

// DecodeStream decodes r line by line and writes the bytes to w. Line
// terminators are stripped and blank lines skipped. A word must not be
// split across two lines and every line must carry whole word pairs,
// otherwise the result is wrong (Lenient) or an error (Strict).
func DecodeStream(r io.Reader, w io.Writer, opts ...StreamOpt) error {
	o := newStreamOptions(opts)

	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	for line := 1; ; line++ {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read line %d: %w", line, err)
		}
		if text := trimEOL(raw); text != "" {
			data, derr := DecodeWith(text, o.policy)
			if derr != nil {
				return fmt.Errorf("line %d: %w", line, derr)
			}
			if _, werr := w.Write(data); werr != nil {
				return fmt.Errorf("write line %d: %w", line, werr)
			}
			o.logger.Debug().Int("line", line).Int("bytes", len(data)).Msg("decoded line")
		}

		if err != nil {
			return nil
		}
	}
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
