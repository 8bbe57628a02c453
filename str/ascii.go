package str

import (
	"strings"
	"unicode/utf8"
)

// Ascii is an ASCII string with a fixed capacity of len(Ascii) bytes,
// terminated by a 0x00 byte.
type Ascii []byte

// NewAscii copies the first n bytes of b into a new string of capacity n.
// Missing bytes are zero.
func NewAscii(b []byte, n int) Ascii {
	s := make(Ascii, n)
	copy(s, b)
	return s
}

// Len returns the index of the first zero byte, or the capacity.
func (s Ascii) Len() int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// Bytes returns the content up to the terminator.
func (s Ascii) Bytes() []byte {
	return s[:s.Len()]
}

// Decode returns the content, failing on the first byte above 0x7F.
func (s Ascii) Decode() (string, error) {
	chars := s.Bytes()
	if i := invalidASCII(chars); i >= 0 {
		return "", &DecodeError{Encoding: "ascii", validUpTo: i}
	}
	return string(chars), nil
}

// Lossy returns the content with every run of non-ASCII bytes replaced by a
// single U+FFFD.
func (s Ascii) Lossy() string {
	chars := s.Bytes()
	if invalidASCII(chars) < 0 {
		return string(chars)
	}

	var b strings.Builder
	b.Grow(len(chars) + utf8.UTFMax)
	invalid := false
	for _, c := range chars {
		if c > 0x7F {
			if !invalid {
				b.WriteRune(utf8.RuneError)
			}
			invalid = true
			continue
		}
		invalid = false
		b.WriteByte(c)
	}
	return b.String()
}

// String implements fmt.Stringer using lossy decoding.
func (s Ascii) String() string {
	return s.Lossy()
}

// Equal reports whether the content up to the terminator equals v.
func (s Ascii) Equal(v string) bool {
	return string(s.Bytes()) == v
}

func invalidASCII(chars []byte) int {
	for i, c := range chars {
		if c > 0x7F {
			return i
		}
	}
	return -1
}
