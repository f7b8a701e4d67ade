package core

import (
	"io"

	"golang.org/x/term"
)

// Reset sequences for a terminal left in application mode
var (
	csiMouseClickOff  = []byte("\x1b[?1000l")
	csiMouseMotionOff = []byte("\x1b[?1003l")
	csiMouseSGROff    = []byte("\x1b[?1006l")
	csiFocusOff       = []byte("\x1b[?1004l")
	csiCursorShow     = []byte("\x1b[?25h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	csiSGR0           = []byte("\x1b[0m")
	csiAutoWrapOn     = []byte("\x1b[?7h")
)

// TerminalRestorer is a Finisher for UIs that do not expose their own teardown
// It writes reset sequences and restores the tty mode captured at construction
type TerminalRestorer struct {
	out   io.Writer
	fd    int
	state *term.State
}

// NewTerminalRestorer snapshots the mode of fd
// A non-terminal fd is fine: only the escape sequences are written then
func NewTerminalRestorer(out io.Writer, fd int) *TerminalRestorer {
	r := &TerminalRestorer{out: out, fd: fd}
	if term.IsTerminal(fd) {
		if st, err := term.GetState(fd); err == nil {
			r.state = st
		}
	}
	return r
}

// Fini implements Finisher; best-effort, errors are ignored in crash context
func (r *TerminalRestorer) Fini() {
	for _, seq := range [][]byte{
		csiMouseMotionOff,
		csiMouseClickOff,
		csiMouseSGROff,
		csiFocusOff,
		csiCursorShow,
		csiAltScreenExit,
		csiSGR0,
		csiAutoWrapOn,
	} {
		r.out.Write(seq)
	}
	if r.state != nil {
		term.Restore(r.fd, r.state)
	}
}
