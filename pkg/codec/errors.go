package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWord is returned by strict decoding for a word outside the vocabulary.
	ErrUnknownWord = errors.New("unknown word")
	// ErrOddWordCount is returned by strict decoding when the last word has no partner.
	ErrOddWordCount = errors.New("odd word count")
)

// WordError reports an unknown word and its zero-based position in the text.
type WordError struct {
	Index int
	Word  string
}

func (e *WordError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrUnknownWord, e.Word, e.Index)
}

func (e *WordError) Unwrap() error {
	return ErrUnknownWord
}

func oddWordCountError(words int) error {
	return fmt.Errorf("%w: got %d words", ErrOddWordCount, words)
}
