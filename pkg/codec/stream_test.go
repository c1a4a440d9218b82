package codec

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBoom
}

func sequence(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

func encodeStream(t *testing.T, data []byte, opts ...StreamOpt) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, EncodeStream(bytes.NewReader(data), &out, opts...))
	return out.String()
}

func TestEncodeStreamSingleChunk(t *testing.T) {
	for _, n := range []int{0, 1, 3, 100, DefaultChunkSize} {
		data := sequence(n)
		require.Equal(t, Encode(data), encodeStream(t, data), "length %d", n)
	}
}

func TestEncodeStreamChunkGap(t *testing.T) {
	data := sequence(5)
	want := Encode(data[0:2]) + Encode(data[2:4]) + Encode(data[4:5])
	require.Equal(t, want, encodeStream(t, data, WithChunkSize(2)))
	require.NotEqual(t, Encode(data), want)
}

func TestEncodeStreamDefaultChunkGap(t *testing.T) {
	data := sequence(DefaultChunkSize + 476)
	want := Encode(data[:DefaultChunkSize]) + Encode(data[DefaultChunkSize:])
	require.Equal(t, want, encodeStream(t, data))
}

func TestEncodeStreamShortReads(t *testing.T) {
	data := sequence(10)
	var out bytes.Buffer
	err := EncodeStream(iotest.OneByteReader(bytes.NewReader(data)), &out, WithChunkSize(4))
	require.NoError(t, err)
	require.Equal(t, Encode(data[0:4])+Encode(data[4:8])+Encode(data[8:10]), out.String())
}

func TestEncodeStreamBoundarySpace(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 64, 3000} {
		data := sequence(n)
		require.Equal(t, Encode(data), encodeStream(t, data, WithChunkSize(3), WithBoundary(BoundarySpace)), "length %d", n)
	}
}

func TestEncodeStreamBoundaryNewline(t *testing.T) {
	data := sequence(7)
	text := encodeStream(t, data, WithChunkSize(3), WithBoundary(BoundaryNewline))
	require.Equal(t, Encode(data[0:3])+"\n"+Encode(data[3:6])+"\n"+Encode(data[6:7])+"\n", text)

	var out bytes.Buffer
	require.NoError(t, DecodeStream(strings.NewReader(text), &out))
	require.Equal(t, data, out.Bytes())
}

func TestEncodeStreamReadError(t *testing.T) {
	var out bytes.Buffer
	err := EncodeStream(iotest.ErrReader(errBoom), &out)
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, "read chunk 0")
	require.Zero(t, out.Len())
}

func TestEncodeStreamWriteError(t *testing.T) {
	for _, b := range []Boundary{BoundaryNone, BoundarySpace, BoundaryNewline} {
		err := EncodeStream(bytes.NewReader(fixedData), failingWriter{}, WithBoundary(b))
		require.ErrorIs(t, err, errBoom, "boundary %s", b)
		require.ErrorContains(t, err, "write chunk 0")
	}
}

func TestEncodeStreamLogsChunks(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	encodeStream(t, sequence(5), WithChunkSize(2), WithLogger(logger))
	require.Equal(t, 3, strings.Count(logs.String(), `"message":"encoded chunk"`))
}

func TestDecodeStream(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []byte
	}{
		{name: "empty", text: "", want: nil},
		{name: "single line without newline", text: fixedText, want: fixedData},
		{name: "single line with newline", text: fixedText + "\n", want: fixedData},
		{name: "crlf", text: "uwu uwu\r\nowo uwu\r\n", want: []byte{0x00, 0x10}},
		{name: "blank lines", text: "\n\nuwu uwu\n\n", want: []byte{0x00}},
		{name: "odd line truncated", text: "uwu owo uwu\nNya Nya\n", want: []byte{0x01, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, DecodeStream(strings.NewReader(tt.text), &out))
			require.Equal(t, tt.want, out.Bytes())
		})
	}
}

func TestDecodeStreamMatchesDecode(t *testing.T) {
	lines := []string{
		Encode([]byte("hello ")),
		Encode([]byte("uwu ")),
		Encode([]byte("world")),
	}

	var out bytes.Buffer
	require.NoError(t, DecodeStream(strings.NewReader(strings.Join(lines, "\n")), &out))
	require.Equal(t, Decode(strings.Join(lines, Separator)), out.Bytes())
	require.Equal(t, "hello uwu world", out.String())
}

func TestDecodeStreamBufferedReader(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(fixedText + "\n"))
	require.NoError(t, DecodeStream(r, &out))
	require.Equal(t, fixedData, out.Bytes())
}

func TestDecodeStreamStrict(t *testing.T) {
	var out bytes.Buffer
	err := DecodeStream(strings.NewReader("uwu uwu\nbogus uwu\n"), &out, WithPolicy(Strict))
	require.ErrorIs(t, err, ErrUnknownWord)
	require.ErrorContains(t, err, "line 2")
	require.Equal(t, []byte{0x00}, out.Bytes())

	out.Reset()
	err = DecodeStream(strings.NewReader("uwu uwu owo\n"), &out, WithPolicy(Strict))
	require.ErrorIs(t, err, ErrOddWordCount)
}

func TestDecodeStreamReadError(t *testing.T) {
	var out bytes.Buffer
	err := DecodeStream(iotest.ErrReader(errBoom), &out)
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, "read line 1")
}

func TestDecodeStreamWriteError(t *testing.T) {
	err := DecodeStream(strings.NewReader(fixedText), failingWriter{})
	require.ErrorIs(t, err, errBoom)
	require.ErrorContains(t, err, "write line 1")
}

func TestStreamRoundTrip(t *testing.T) {
	data := sequence(5000)

	var text bytes.Buffer
	require.NoError(t, EncodeStream(bytes.NewReader(data), &text, WithBoundary(BoundaryNewline)))

	var out bytes.Buffer
	require.NoError(t, DecodeStream(&text, &out, WithPolicy(Strict)))
	require.Equal(t, data, out.Bytes())
}
