package app

import (
	"fmt"
	"io"
	"os"
)

// StdioPath selects stdin or stdout instead of a file.
const StdioPath = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// OpenInput opens path for reading, or returns InReader for StdioPath.
func (a *App) OpenInput(path string) (io.ReadCloser, error) {
	if path == StdioPath {
		return io.NopCloser(a.InReader), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// CreateOutput creates or truncates path for writing, or returns
// OutWriter for StdioPath. Closing the result never closes OutWriter.
func (a *App) CreateOutput(path string) (io.WriteCloser, error) {
	if path == StdioPath {
		return nopWriteCloser{a.OutWriter}, nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}
