package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/tabdeck/internal/logging/events"
	"github.com/atomicstack/tabdeck/internal/session"
	"github.com/atomicstack/tabdeck/internal/tabs"
	"github.com/atomicstack/tabdeck/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	PollInterval time.Duration
	InitialTab   string
	ShowFooter   bool
}

// IoError reports a failure to read input or write a frame while the
// dashboard loop was running.
type IoError struct {
	Op  string
	Err error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("dashboard %s: %v", e.Op, e.Err)
}

func (e *IoError) Unwrap() error {
	return e.Err
}

// PanicError reports a panic raised while the dashboard loop was running.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("dashboard panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Run bootstraps the dashboard on the process terminal.
func Run(cfg Config) error {
	return RunWith(cfg, os.Stdin, os.Stdout)
}

// RunWith acquires the terminal session on in/out, runs the dashboard loop
// until quit and releases the session on every exit path.
func RunWith(cfg Config, in, out *os.File, opts ...session.Option) error {
	set := tabs.Default()
	initial := resolveInitialTab(set, cfg.InitialTab)

	guard, err := session.Acquire(in, out, opts...)
	if err != nil {
		return err
	}
	return withSession(guard, func() error {
		return runLoop(cfg, guard, set, initial)
	})
}

// withSession runs body while guard is held and releases it afterwards, even
// when body panics. A body error takes priority; a release failure after it is
// joined behind it.
func withSession(guard *session.Guard, body func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
		if releaseErr := guard.Release(); releaseErr != nil {
			if err != nil {
				err = errors.Join(err, releaseErr)
			} else {
				err = releaseErr
			}
		}
		events.App.Exit(err)
	}()
	return body()
}

func runLoop(cfg Config, guard *session.Guard, set tabs.Set, initial int) error {
	out := newSurface(guard.Output())
	width, height := guard.Size()
	model := ui.NewModel(ui.Options{
		Tabs:         set,
		InitialTab:   initial,
		PollInterval: cfg.PollInterval,
		Width:        width,
		Height:       height,
		ShowFooter:   cfg.ShowFooter,
		FrameErr:     out.Err,
	})
	return runProgram(model, guard.Input(), out)
}

// runProgram drives model with Bubble Tea until it quits and classifies how
// the program ended.
func runProgram(model *ui.Model, in io.Reader, out *surface) error {
	program := tea.NewProgram(model, tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return programError(err)
	}
	if m, ok := final.(*ui.Model); ok && m.Err() != nil {
		return &IoError{Op: "write", Err: m.Err()}
	}
	if err := out.Err(); err != nil {
		return &IoError{Op: "write", Err: err}
	}
	return nil
}

// programError maps an error returned by tea.Program.Run. Bubble Tea wraps
// every event loop failure in ErrProgramKilled, so only an interrupt or a
// kill with no underlying cause counts as a normal stop.
func programError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted), err == tea.ErrProgramKilled:
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return &PanicError{Value: err}
	default:
		return &IoError{Op: "read", Err: err}
	}
}

func resolveInitialTab(set tabs.Set, query string) int {
	if idx, ok := set.Find(query); ok {
		return idx
	}
	return 0
}
