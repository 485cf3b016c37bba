package svgbot

import mt "github.com/rustyoz/Mtransform"

// RectElement is an SVG rect element. Rounded corners are drawn square.
type RectElement struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
}

// Commands outlines the rect clockwise from its top left corner.
func (r *RectElement) Commands() ([]Command, error) {
	var v [4]float64
	for i, a := range []struct{ name, value string }{
		{"x", r.X}, {"y", r.Y}, {"width", r.Width}, {"height", r.Height},
	} {
		f, err := parseLengthAttr(a.name, a.value)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	x, y, w, h := v[0], v[1], v[2], v[3]
	if w <= 0 || h <= 0 {
		return nil, nil
	}
	return []Command{
		Move{Absolute, []float64{x, y}},
		HorizontalLine{Absolute, []float64{x + w}},
		VerticalLine{Absolute, []float64{y + h}},
		HorizontalLine{Absolute, []float64{x}},
		Close{},
	}, nil
}

func (r *RectElement) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := r.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, "rect", r.ID, r.Transform, cmds, parent)
}

// LineElement is an SVG line element
type LineElement struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	X1        string `xml:"x1,attr"`
	Y1        string `xml:"y1,attr"`
	X2        string `xml:"x2,attr"`
	Y2        string `xml:"y2,attr"`
}

// Commands draws the single segment.
func (l *LineElement) Commands() ([]Command, error) {
	var v [4]float64
	for i, a := range []struct{ name, value string }{
		{"x1", l.X1}, {"y1", l.Y1}, {"x2", l.X2}, {"y2", l.Y2},
	} {
		f, err := parseLengthAttr(a.name, a.value)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return []Command{Move{Absolute, v[:]}}, nil
}

func (l *LineElement) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := l.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, "line", l.ID, l.Transform, cmds, parent)
}
