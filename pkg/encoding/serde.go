package encoding

// Encoder turns raw bytes into their text form.
type Encoder interface {
	Encode([]byte) ([]byte, error)
}

// Decoder turns text back into the raw bytes it spells.
type Decoder interface {
	Decode([]byte) ([]byte, error)
}
