package str

import "fmt"

// DecodeError reports invalid content in a fixed string.
type DecodeError struct {
	// Encoding is "ascii" or "utf-16".
	Encoding string
	validUpTo int
}

// ValidUpTo returns the index of the first invalid code unit.
func (e *DecodeError) ValidUpTo() int {
	return e.validUpTo
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s at index %d", e.Encoding, e.validUpTo)
}
