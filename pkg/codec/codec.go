// Package codec converts bytes to uwu text and back.
//
// Every byte becomes two words from the vocab package, the high nibble
// first, and all words are joined by a single space:
//
//	Encode([]byte{0, 16, 12}) == "uwu uwu owo uwu uwu OmO"
//
// Decoding is lenient by default: words outside the vocabulary count as
// nibble 0 and an unpaired trailing word is dropped. DecodeWith with the
// Strict policy reports both as errors instead.
package codec

import (
	"strings"

	"github.com/Trivernis/uwucodec/pkg/encoding"
	"github.com/Trivernis/uwucodec/pkg/vocab"
)

// Separator delimits words in encoded text.
const Separator = " "

// Two three-letter words per byte, each followed by at most one separator.
const maxEncodedBytesPerByte = 2 * (3 + 1)

// Encode returns the text form of data. Empty input yields "".
func Encode(data []byte) string {
	return string(AppendEncode(make([]byte, 0, len(data)*maxEncodedBytesPerByte), data))
}

// AppendEncode appends the text form of data to dst and returns the
// extended slice. Nothing is appended for empty data.
func AppendEncode(dst, data []byte) []byte {
	for i, b := range data {
		if i > 0 {
			dst = append(dst, Separator...)
		}
		dst = append(dst, vocab.WordFor(b>>4)...)
		dst = append(dst, Separator...)
		dst = append(dst, vocab.WordFor(b)...)
	}
	return dst
}

// Decode returns the bytes spelled by text using the Lenient policy. It
// never fails.
func Decode(text string) []byte {
	data, _ := decode(text, Lenient)
	return data
}

// DecodeWith decodes text under the given policy. Errors are only
// possible with Strict.
func DecodeWith(text string, p Policy) ([]byte, error) {
	return decode(text, p)
}

func decode(text string, p Policy) ([]byte, error) {
	data := make([]byte, 0, (len(text)+1)/maxEncodedBytesPerByte)
	if text == "" {
		return data, nil
	}

	rest := text
	for idx := 0; ; idx += 2 {
		high, tail, ok := strings.Cut(rest, Separator)
		if !ok {
			if p == Strict {
				return nil, oddWordCountError(idx + 1)
			}
			return data, nil
		}
		low, next, more := strings.Cut(tail, Separator)

		h, err := nibble(high, idx, p)
		if err != nil {
			return nil, err
		}
		l, err := nibble(low, idx+1, p)
		if err != nil {
			return nil, err
		}
		data = append(data, h<<4|l)

		if !more {
			return data, nil
		}
		rest = next
	}
}

func nibble(word string, idx int, p Policy) (byte, error) {
	n, ok := vocab.NibbleFor(word)
	if !ok && p == Strict {
		return 0, &WordError{Index: idx, Word: word}
	}
	return n, nil
}

var (
	_ encoding.Encoder = Codec{}
	_ encoding.Decoder = Codec{}
)

// Codec adapts the whole-buffer functions to the encoding interfaces.
type Codec struct {
	Policy Policy
}

func (Codec) Encode(in []byte) ([]byte, error) {
	return AppendEncode(make([]byte, 0, len(in)*maxEncodedBytesPerByte), in), nil
}

func (c Codec) Decode(in []byte) ([]byte, error) {
	return DecodeWith(string(in), c.Policy)
}
