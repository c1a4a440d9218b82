package codec

import "fmt"

// Policy decides how decoding treats malformed text.
type Policy string

const (
	// Lenient maps unknown words to nibble 0 and drops an unpaired
	// trailing word. It is the zero value's behaviour.
	Lenient Policy = "lenient"
	// Strict rejects unknown words and odd word counts.
	Strict Policy = "strict"
)

// Policies lists the accepted policy names.
var Policies = []string{string(Lenient), string(Strict)}

func (p *Policy) String() string {
	return string(*p)
}

func (p *Policy) Set(v string) error {
	switch v {
	case "lenient", "strict":
		*p = Policy(v)
		return nil
	default:
		return fmt.Errorf("must be one of: lenient, strict")
	}
}

func (p *Policy) Type() string {
	return "Policy"
}

// Boundary decides what EncodeStream writes between two chunks.
type Boundary string

const (
	// BoundaryNone writes nothing, so the last word of a chunk runs into
	// the first word of the next one. Output is only identical to Encode
	// when the input fits in a single chunk.
	BoundaryNone Boundary = "none"
	// BoundarySpace writes the separator, making output identical to Encode.
	BoundarySpace Boundary = "space"
	// BoundaryNewline ends every chunk with a newline, producing
	// line-oriented text suited to DecodeStream.
	BoundaryNewline Boundary = "newline"
)

// Boundaries lists the accepted boundary names.
var Boundaries = []string{string(BoundaryNone), string(BoundarySpace), string(BoundaryNewline)}

func (b *Boundary) String() string {
	return string(*b)
}

func (b *Boundary) Set(v string) error {
	switch v {
	case "none", "space", "newline":
		*b = Boundary(v)
		return nil
	default:
		return fmt.Errorf("must be one of: none, space, newline")
	}
}

func (b *Boundary) Type() string {
	return "Boundary"
}
