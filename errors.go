package svgbot

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedCommand is returned for commands whose parameter count
	// does not fit the command. The upstream parser is broken or the data
	// is corrupt, so drawing cannot continue.
	ErrMalformedCommand = errors.New("malformed command")

	// ErrInvariant signals a logic defect in the interpreter itself.
	ErrInvariant = errors.New("interpreter invariant violated")

	// ErrNoArea is returned when a document has neither a viewBox nor a
	// width and height.
	ErrNoArea = errors.New("couldn't find size of SVG")
)

// DeviceError is a failed pointer action. It is never retried: a partly
// drawn stroke can't be undone.
type DeviceError struct {
	// Op is "move", "press" or "release".
	Op string
	// X and Y are the screen target of a failed move.
	X, Y float64
	Err  error
}

func (e *DeviceError) Error() string {
	if e.Op == "move" {
		return fmt.Sprintf("pointer move to (%g, %g) failed: %v", e.X, e.Y, e.Err)
	}
	return fmt.Sprintf("pointer %s failed: %v", e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// IsDeviceError reports whether err is or wraps a *DeviceError.
func IsDeviceError(err error) bool {
	var de *DeviceError
	return errors.As(err, &de)
}

func malformed(kind CommandKind, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedCommand, kind, fmt.Sprintf(format, args...))
}
