package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// StreamFunc moves data from r to w, e.g. codec.EncodeStream.
type StreamFunc func(r io.Reader, w io.Writer) error

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// RunStream opens input and output (StdioPath selects stdin/stdout), runs
// fn over buffered wrappers of both, then flushes and closes the output.
// Any failure aborts the run and is returned; close errors are joined
// with it.
func (a *App) RunStream(ctx context.Context, input, output string, fn StreamFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := a.OpenInput(input)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := a.CreateOutput(output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close output: %w", cerr))
		}
	}()

	start := time.Now()
	counter := &countingWriter{w: out}
	bw := bufio.NewWriter(counter)
	if err := fn(bufio.NewReader(in), bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	a.Logger.Debug().
		Str("input", input).
		Str("output", output).
		Int64("written", counter.n).
		Dur("took", time.Since(start)).
		Msg("stream complete")
	return nil
}
