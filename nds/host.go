package nds

import (
	"errors"

	"golang.org/x/sys/cpu"
)

// ErrUnsupportedByteOrder is returned by Load on big-endian hosts.
var ErrUnsupportedByteOrder = errors.New("nds: big-endian hosts are not supported")

// hostLittleEndian is a variable so tests can simulate a big-endian host.
var hostLittleEndian = !cpu.IsBigEndian
