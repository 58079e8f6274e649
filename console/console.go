// Package console reads prompted lines from the user and writes the game
// output, using the terminal's raw mode line editing when stdin is a tty.
package console

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"fortio.org/log"
	"fortio.org/safecast"
	"golang.org/x/term"
)

// Console is the game's line input and output.
type Console struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
	in       *bufio.Reader
	prompt   string
	// Out is where the game output goes, it adds the needed \r in raw mode.
	Out io.Writer
}

// Open opens stdin as a terminal, do `defer c.Close()`
// to restore the terminal to its original state upon exit.
// When stdin isn't a terminal (pipe, file) lines are read as is.
func Open() (*Console, error) {
	c := &Console{
		fd: safecast.MustConvert[int](os.Stdin.Fd()),
	}
	if !c.IsTerminal() {
		log.LogVf("stdin is not a terminal, using plain line reads")
		c.in = bufio.NewReader(os.Stdin)
		c.Out = os.Stdout
		return c, nil
	}
	rw := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	c.term = term.NewTerminal(rw, "")
	c.Out = c.term
	var err error
	c.oldState, err = term.MakeRaw(c.fd)
	if err != nil {
		return nil, err
	}
	c.term.SetBracketedPasteMode(true)
	return c, nil
}

// New returns a console reading lines from in and writing to out, it
// never touches the terminal state.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		fd:  -1,
		in:  bufio.NewReader(in),
		Out: out,
	}
}

// IsTerminal is true when the console is on a tty.
func (c *Console) IsTerminal() bool {
	return c.fd >= 0 && term.IsTerminal(c.fd)
}

// LoggerSetup sends the fortio logger output to stderr with \r\n line
// endings while the terminal is in raw mode.
func (c *Console) LoggerSetup() {
	if c.oldState == nil {
		return
	}
	// Keep same color logic as fortio logger, so flags like -logger-no-color work.
	colormode := log.ColorMode()
	log.SetOutput(&CRLFWriter{Out: os.Stderr})
	log.Config.ForceColor = colormode
	log.SetColorMode()
}

// SetPrompt sets the prompt shown by the next ReadLine.
func (c *Console) SetPrompt(s string) {
	c.prompt = s
	if c.term != nil {
		c.term.SetPrompt(s)
	}
}

// ReadLine shows the current prompt and returns the next line without
// its line ending. Closed input (EOF, ^D or ^C on the terminal) returns
// ErrInputClosed.
func (c *Console) ReadLine() (string, error) {
	if c.term != nil {
		l, err := c.term.ReadLine()
		switch {
		case err == nil:
			return l, nil
		case errors.Is(err, term.ErrPasteIndicator):
			// Not an error, just signals the line was pasted.
			return l, nil
		case errors.Is(err, io.EOF):
			return "", ErrInputClosed
		default:
			return l, NewErrInterruptedWithErr("terminal read", err)
		}
	}
	if c.prompt != "" {
		if _, err := io.WriteString(c.Out, c.prompt); err != nil {
			return "", err
		}
	}
	l, err := c.in.ReadString('\n')
	l = strings.TrimRight(l, "\r\n")
	if err != nil {
		if errors.Is(err, io.EOF) {
			if l != "" {
				// Last line without a final newline, EOF comes on next read.
				return l, nil
			}
			return "", ErrInputClosed
		}
		return l, NewErrInterruptedWithErr("read", err)
	}
	return l, nil
}

// Close restores the terminal if it was put in raw mode.
func (c *Console) Close() error {
	if c.oldState == nil {
		return nil
	}
	c.term.SetPrompt("")
	err := term.Restore(c.fd, c.oldState)
	c.oldState = nil
	c.Out = os.Stdout
	log.SetOutput(os.Stderr)
	return err
}
