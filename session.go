package svgbot

import (
	"fmt"
	"sort"
	"strings"
)

// Session draws shapes from one SVG area into one screen area.
type Session struct {
	Source      Rect
	Destination Rect
	Pointer     Pointer

	// ContinueOnDeviceError makes Draw record a shape whose device calls
	// failed and go on with the next shape instead of stopping.
	ContinueOnDeviceError bool
}

// ShapeFailure is a shape that could not be drawn completely.
type ShapeFailure struct {
	Index int
	Name  string
	Err   error
}

// Report summarises a Draw call.
type Report struct {
	Shapes      int
	Drawn       int
	Failed      []ShapeFailure
	Unsupported map[CommandKind]int
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d shapes drawn", r.Drawn, r.Shapes)
	if len(r.Failed) > 0 {
		fmt.Fprintf(&b, ", %d failed", len(r.Failed))
	}
	if len(r.Unsupported) > 0 {
		kinds := make([]CommandKind, 0, len(r.Unsupported))
		for k := range r.Unsupported {
			kinds = append(kinds, k)
		}
		sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
		parts := make([]string, len(kinds))
		for i, k := range kinds {
			parts[i] = fmt.Sprintf("%s x%d", k, r.Unsupported[k])
		}
		fmt.Fprintf(&b, "; not drawn: %s", strings.Join(parts, ", "))
	}
	return b.String()
}

// Draw replays every shape with a fresh Painter, lifting the button after
// each one. Malformed commands and invariant violations stop the session.
// Device failures stop it too unless ContinueOnDeviceError is set.
func (s *Session) Draw(shapes []Shape) (*Report, error) {
	if !s.Source.Valid() {
		return nil, fmt.Errorf("source area %s has a zero extent", s.Source)
	}
	if !s.Destination.Valid() {
		return nil, fmt.Errorf("destination area %s has a zero extent", s.Destination)
	}

	log := Logger()
	report := &Report{Shapes: len(shapes), Unsupported: map[CommandKind]int{}}

	for i, shape := range shapes {
		log.Info("drawing shape", "index", i, "shape", shape.Name(), "commands", len(shape.Commands))

		painter := NewPainter(s.Source, s.Destination, s.Pointer)
		painter.SetTransform(shape.transform())
		err := painter.PerformAll(shape.Commands)
		for _, c := range painter.Unsupported() {
			report.Unsupported[c.Kind()]++
		}

		if rerr := s.Pointer.Release(); rerr != nil {
			if err == nil {
				err = &DeviceError{Op: "release", Err: rerr}
			} else {
				log.Error("releasing pointer after failed shape", "shape", shape.Name(), "err", rerr)
			}
		}

		if err == nil {
			report.Drawn++
			continue
		}

		err = fmt.Errorf("shape %d (%s): %w", i, shape.Name(), err)
		if s.ContinueOnDeviceError && IsDeviceError(err) {
			log.Error("shape abandoned", "shape", shape.Name(), "err", err)
			report.Failed = append(report.Failed, ShapeFailure{Index: i, Name: shape.Name(), Err: err})
			continue
		}
		return report, err
	}
	return report, nil
}
