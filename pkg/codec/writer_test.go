package codec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterJoinsWrites(t *testing.T) {
	var out bytes.Buffer
	w := NewWriter(&out)

	for _, p := range [][]byte{{0}, {}, {16, 12}, nil} {
		n, err := w.Write(p)
		require.NoError(t, err)
		require.Equal(t, len(p), n)
	}

	require.Equal(t, fixedText, out.String())
	require.EqualValues(t, 3, w.Written())
}

func TestWriterError(t *testing.T) {
	w := NewWriter(failingWriter{})
	n, err := w.Write(fixedData)
	require.ErrorIs(t, err, errBoom)
	require.Zero(t, n)
	require.Zero(t, w.Written())
}
