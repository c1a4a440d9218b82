// Package vocab holds the fixed 16-word vocabulary used to spell nibbles.
package vocab

import "fmt"

// Len is the number of words in the vocabulary, one per nibble value.
const Len = 16

// Words maps a nibble value (the index) to its word.
var Words = [Len]string{
	"uwu", "owo", "umu", "nya", "omo", "o_o", "q_p", "u_u",
	"o~o", "UwU", "OwO", "UmU", "OmO", "O_O", "U_U", "Nya",
}

// nibbles is the reverse of Words. It is built once and only read afterwards.
var nibbles map[string]byte

func init() {
	nibbles = make(map[string]byte, Len)
	for i, w := range Words {
		nibbles[w] = byte(i)
	}
}

// WordFor returns the word for the low four bits of nibble.
func WordFor(nibble byte) string {
	return Words[nibble&0x0F]
}

// NibbleFor returns the nibble value spelled by word. The second return
// value is false if word is not part of the vocabulary.
func NibbleFor(word string) (byte, bool) {
	n, ok := nibbles[word]
	return n, ok
}

// Validate checks that Words holds unique entries and that the reverse
// lookup is its exact inverse.
func Validate() error {
	if len(nibbles) != Len {
		return fmt.Errorf("vocabulary has %d distinct words, want %d", len(nibbles), Len)
	}
	for i, w := range Words {
		if w == "" {
			return fmt.Errorf("word for nibble %d is empty", i)
		}
		if n, ok := nibbles[w]; !ok || int(n) != i {
			return fmt.Errorf("word %q maps to nibble %d, want %d", w, n, i)
		}
	}
	return nil
}
