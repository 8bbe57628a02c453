package nds

import (
	"fmt"
	"io"
)

// errWriter keeps the first write error so that dumps can print line after
// line and check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
