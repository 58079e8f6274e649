package console

import (
	"bytes"
	"io"
)

// CRLFWriter turns \n into \r\n, needed for anything written directly
// to the terminal (like logs on stderr) while it is in raw mode.
type CRLFWriter struct {
	// Out is the underlying writer to write to.
	Out io.Writer
}

// Write returns the number of bytes of buf consumed, not the number
// written to Out (which includes the added \r).
func (w *CRLFWriter) Write(buf []byte) (n int, err error) {
	for len(buf) > 0 {
		line, rest, found := bytes.Cut(buf, []byte{'\n'})
		var nn int
		nn, err = w.Out.Write(line)
		n += nn
		if err != nil {
			return n, err
		}
		if !found {
			break
		}
		if _, err = w.Out.Write([]byte{'\r', '\n'}); err != nil {
			return n, err
		}
		n++
		buf = rest
	}
	return n, nil
}
