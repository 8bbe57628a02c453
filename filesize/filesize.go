// Package filesize formats byte counts for display.
package filesize

import (
	"fmt"
	"math"
)

// Decimal scale names with a binary divisor, as cartridge documentation uses.
const divisor = 1024.0

var scale = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Size is a number of bytes.
type Size uint64

func (s Size) String() string {
	size := float64(s)
	i := 0
	for size >= divisor && i < len(scale)-1 {
		size /= divisor
		i++
	}

	if _, frac := math.Modf(size); frac == 0 {
		return fmt.Sprintf("%.0f %s", size, scale[i])
	}
	return fmt.Sprintf("%.2f %s", size, scale[i])
}
