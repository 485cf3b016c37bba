package svgbot

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
)

// PolyLine is a set of connected line segments. A polygon is a closed
// PolyLine.
type PolyLine struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Points    string `xml:"points,attr"`

	// Closed is set for polygon elements.
	Closed bool `xml:"-"`
}

func (p *PolyLine) element() string {
	if p.Closed {
		return "polygon"
	}
	return "polyline"
}

// Commands turns the points into a single move with implicit lines. A
// dangling odd coordinate is dropped, and fewer than two points draw
// nothing.
func (p *PolyLine) Commands() ([]Command, error) {
	nums, err := parseNumberStream(p.Points)
	if err != nil {
		return nil, fmt.Errorf("%s %q: points: %w", p.element(), p.ID, err)
	}
	nums = nums[:len(nums)/2*2]
	if len(nums) < 4 {
		return nil, nil
	}
	cmds := []Command{Move{Absolute, nums}}
	if p.Closed {
		cmds = append(cmds, Close{})
	}
	return cmds, nil
}

func (p *PolyLine) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := p.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, p.element(), p.ID, p.Transform, cmds, parent)
}
