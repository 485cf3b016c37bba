package svgbot

import (
	"errors"
	"fmt"
	"io"
)

// Pointer is the device the painter draws with. Every call blocks until the
// device is done and may fail.
type Pointer interface {
	MoveTo(x, y float64) error
	Press() error
	Release() error
}

// Locator reports where the pointer currently is. Only calibration uses it.
type Locator interface {
	Position() (x, y float64, err error)
}

// ActionKind is the kind of a recorded pointer action.
type ActionKind uint8

const (
	ActionMove ActionKind = iota
	ActionPress
	ActionRelease
)

func (k ActionKind) String() string {
	switch k {
	case ActionMove:
		return "move"
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	}
	return fmt.Sprintf("ActionKind(%d)", k)
}

// Action is one pointer call. X and Y are only set for moves.
type Action struct {
	Kind ActionKind
	X, Y float64
}

func (a Action) String() string {
	if a.Kind == ActionMove {
		return fmt.Sprintf("move %g %g", a.X, a.Y)
	}
	return a.Kind.String()
}

// ErrInjected is returned by a Recorder once its failure point is reached.
var ErrInjected = errors.New("injected device failure")

// Recorder is a Pointer that only remembers the actions it was asked to
// perform. If FailAt is positive, the FailAt-th call (1 based) and every
// later one fails with ErrInjected.
type Recorder struct {
	Actions []Action
	FailAt  int

	calls int
}

func (r *Recorder) record(a Action) error {
	r.calls++
	if r.FailAt > 0 && r.calls >= r.FailAt {
		return ErrInjected
	}
	r.Actions = append(r.Actions, a)
	return nil
}

func (r *Recorder) MoveTo(x, y float64) error { return r.record(Action{Kind: ActionMove, X: x, Y: y}) }
func (r *Recorder) Press() error              { return r.record(Action{Kind: ActionPress}) }
func (r *Recorder) Release() error            { return r.record(Action{Kind: ActionRelease}) }

// Count returns how many recorded actions have the given kind.
func (r *Recorder) Count(kind ActionKind) int {
	n := 0
	for _, a := range r.Actions {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Moves returns the targets of all recorded moves.
func (r *Recorder) Moves() []Action {
	var moves []Action
	for _, a := range r.Actions {
		if a.Kind == ActionMove {
			moves = append(moves, a)
		}
	}
	return moves
}

// Printer is a Pointer that writes each action as a line of text, used for
// dry runs.
type Printer struct {
	W io.Writer
}

func (p Printer) MoveTo(x, y float64) error {
	_, err := fmt.Fprintf(p.W, "move %.2f %.2f\n", x, y)
	return err
}

func (p Printer) Press() error {
	_, err := fmt.Fprintln(p.W, "press")
	return err
}

func (p Printer) Release() error {
	_, err := fmt.Fprintln(p.W, "release")
	return err
}
