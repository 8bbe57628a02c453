package str

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// UTF16 is a UTF-16 string with a fixed capacity of len(UTF16) code units,
// terminated by 0x0000.
type UTF16 []uint16

// Len returns the index of the first zero code unit, or the capacity.
func (s UTF16) Len() int {
	for i, c := range s {
		if c == 0 {
			return i
		}
	}
	return len(s)
}

// Units returns the code units up to the terminator.
func (s UTF16) Units() []uint16 {
	return s[:s.Len()]
}

// Decode returns the content, failing on the first unpaired surrogate.
func (s UTF16) Decode() (string, error) {
	var b strings.Builder
	units := s.Units()
	for i := 0; i < len(units); {
		r, n := decodeUnit(units[i:])
		if n == 0 {
			return "", &DecodeError{Encoding: "utf-16", validUpTo: i}
		}
		b.WriteRune(r)
		i += n
	}
	return b.String(), nil
}

// Lossy returns the content with every run of unpaired surrogates replaced by
// a single U+FFFD.
func (s UTF16) Lossy() string {
	var b strings.Builder
	units := s.Units()
	invalid := false
	for i := 0; i < len(units); {
		r, n := decodeUnit(units[i:])
		if n == 0 {
			if !invalid {
				b.WriteRune(utf8.RuneError)
			}
			invalid = true
			i++
			continue
		}
		invalid = false
		b.WriteRune(r)
		i += n
	}
	return b.String()
}

// String implements fmt.Stringer using lossy decoding.
func (s UTF16) String() string {
	return s.Lossy()
}

// Equal reports whether the strictly decoded content equals v.
func (s UTF16) Equal(v string) bool {
	d, err := s.Decode()
	return err == nil && d == v
}

// decodeUnit decodes the rune at the start of units. It returns n == 0 when
// units[0] is an unpaired surrogate.
func decodeUnit(units []uint16) (r rune, n int) {
	c := rune(units[0])
	if !utf16.IsSurrogate(c) {
		return c, 1
	}
	if len(units) > 1 {
		if r := utf16.DecodeRune(c, rune(units[1])); r != utf8.RuneError {
			return r, 2
		}
	}
	return utf8.RuneError, 0
}

// EncodeUTF16 returns s as a string of capacity n, truncating when s does not
// fit.
func EncodeUTF16(s string, n int) UTF16 {
	out := make(UTF16, n)
	copy(out, utf16.Encode([]rune(s)))
	return out
}
