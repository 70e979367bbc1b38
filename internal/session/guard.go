package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal reports that a descriptor is not an interactive terminal.
var ErrNotTerminal = errors.New("not an interactive terminal")

// Error describes a failure to acquire or release the terminal session.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("terminal session %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Terminal is the subset of terminal device control used by the guard.
type Terminal interface {
	IsTerminal(fd int) bool
	MakeRaw(fd int) (*term.State, error)
	Restore(fd int, state *term.State) error
	GetSize(fd int) (width, height int, err error)
}

type systemTerminal struct{}

func (systemTerminal) IsTerminal(fd int) bool                  { return term.IsTerminal(fd) }
func (systemTerminal) MakeRaw(fd int) (*term.State, error)     { return term.MakeRaw(fd) }
func (systemTerminal) Restore(fd int, state *term.State) error { return term.Restore(fd, state) }
func (systemTerminal) GetSize(fd int) (int, int, error)        { return term.GetSize(fd) }

var (
	enterSequence = ansi.SetAltScreenSaveCursorMode +
		ansi.SetButtonEventMouseMode +
		ansi.SetSgrExtMouseMode +
		ansi.EraseEntireScreen +
		ansi.CursorHomePosition
	leaveSequence = ansi.ResetSgrExtMouseMode +
		ansi.ResetButtonEventMouseMode +
		ansi.ResetAltScreenSaveCursorMode +
		ansi.ShowCursor
)

// Guard holds an acquired interactive terminal session: raw input, the
// alternate screen and mouse capture. It must be released exactly once, on
// every exit path. A Guard must not be shared between goroutines, and only one
// guard may exist per terminal device at a time.
type Guard struct {
	in   *os.File
	out  *os.File
	term Terminal

	original *term.State
	width    int
	height   int

	released   bool
	releaseErr error
}

// Option customises Acquire.
type Option func(*Guard)

// WithTerminal replaces the terminal device implementation.
func WithTerminal(t Terminal) Option {
	return func(g *Guard) {
		if t != nil {
			g.term = t
		}
	}
}

// Acquire switches the terminal behind in/out into raw mode, enters the
// alternate screen and enables mouse capture. On failure every effect already
// applied is undone and a *Error is returned.
func Acquire(in, out *os.File, opts ...Option) (*Guard, error) {
	g := &Guard{in: in, out: out, term: systemTerminal{}}
	for _, opt := range opts {
		opt(g)
	}
	if in == nil || out == nil {
		return nil, g.acquireErr("probe", ErrNotTerminal)
	}
	if !g.term.IsTerminal(int(in.Fd())) {
		return nil, g.acquireErr("probe", fmt.Errorf("input %s: %w", describe(in), ErrNotTerminal))
	}
	if !g.term.IsTerminal(int(out.Fd())) {
		return nil, g.acquireErr("probe", fmt.Errorf("output %s: %w", describe(out), ErrNotTerminal))
	}

	state, err := g.term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, g.acquireErr("raw mode", err)
	}
	g.original = state

	if _, err := io.WriteString(out, enterSequence); err != nil {
		_, _ = io.WriteString(out, leaveSequence)
		if rerr := g.term.Restore(int(in.Fd()), state); rerr != nil {
			err = errors.Join(err, rerr)
		}
		return nil, g.acquireErr("alternate screen", err)
	}

	if w, h, err := g.term.GetSize(int(out.Fd())); err == nil {
		g.width, g.height = w, h
	}
	events.Session.Acquire(g.width, g.height)
	return g, nil
}

func (g *Guard) acquireErr(step string, err error) error {
	events.Session.AcquireError(step, err)
	return &Error{Op: "acquire", Err: fmt.Errorf("%s: %w", step, err)}
}

// Input returns the raw-mode input stream.
func (g *Guard) Input() *os.File {
	return g.in
}

// Output returns the drawing surface.
func (g *Guard) Output() *os.File {
	return g.out
}

// Size returns the terminal dimensions observed at acquisition time.
func (g *Guard) Size() (width, height int) {
	return g.width, g.height
}

// Release disables mouse capture, leaves the alternate screen, shows the
// cursor and restores the original terminal mode. Every step is attempted
// even when an earlier one fails. Calls after the first return the first
// result without touching the terminal again.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}
	if g.released {
		return g.releaseErr
	}
	g.released = true

	var errs []error
	if _, err := io.WriteString(g.out, leaveSequence); err != nil {
		errs = append(errs, fmt.Errorf("reset screen: %w", err))
	}
	if g.original != nil {
		if err := g.term.Restore(int(g.in.Fd()), g.original); err != nil {
			errs = append(errs, fmt.Errorf("restore mode: %w", err))
		}
	}
	if len(errs) > 0 {
		g.releaseErr = &Error{Op: "release", Err: errors.Join(errs...)}
		events.Session.ReleaseError(g.releaseErr)
		return g.releaseErr
	}
	events.Session.Release()
	return nil
}

// Released reports whether Release has run.
func (g *Guard) Released() bool {
	return g != nil && g.released
}

func describe(f *os.File) string {
	name := strings.TrimSpace(f.Name())
	if name == "" {
		return fmt.Sprintf("fd %d", f.Fd())
	}
	return name
}
