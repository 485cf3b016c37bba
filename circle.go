package svgbot

import mt "github.com/rustyoz/Mtransform"

// kappa places the control points of a cubic quarter circle.
const kappa = 0.5522847498307936

// Circle is an SVG circle element
type Circle struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Radius    string `xml:"r,attr"`
}

// Commands approximates the circle with four cubic curves. A circle without
// a positive radius is not drawn.
func (c *Circle) Commands() ([]Command, error) {
	cx, err := parseLengthAttr("cx", c.Cx)
	if err != nil {
		return nil, err
	}
	cy, err := parseLengthAttr("cy", c.Cy)
	if err != nil {
		return nil, err
	}
	r, err := parseLengthAttr("r", c.Radius)
	if err != nil {
		return nil, err
	}
	return ellipseCommands(cx, cy, r, r), nil
}

func (c *Circle) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := c.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, "circle", c.ID, c.Transform, cmds, parent)
}

// Ellipse is an SVG ellipse element
type Ellipse struct {
	ID        string `xml:"id,attr"`
	Transform string `xml:"transform,attr"`
	Cx        string `xml:"cx,attr"`
	Cy        string `xml:"cy,attr"`
	Rx        string `xml:"rx,attr"`
	Ry        string `xml:"ry,attr"`
}

// Commands approximates the ellipse with four cubic curves.
func (e *Ellipse) Commands() ([]Command, error) {
	var v [4]float64
	for i, a := range []struct{ name, value string }{
		{"cx", e.Cx}, {"cy", e.Cy}, {"rx", e.Rx}, {"ry", e.Ry},
	} {
		f, err := parseLengthAttr(a.name, a.value)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return ellipseCommands(v[0], v[1], v[2], v[3]), nil
}

func (e *Ellipse) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := e.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, "ellipse", e.ID, e.Transform, cmds, parent)
}

// ellipseCommands starts at the rightmost point and runs clockwise in SVG
// space (y down).
func ellipseCommands(cx, cy, rx, ry float64) []Command {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	kx, ky := kappa*rx, kappa*ry
	return []Command{
		Move{Absolute, []float64{cx + rx, cy}},
		CubicCurve{Absolute, []float64{
			cx + rx, cy + ky, cx + kx, cy + ry, cx, cy + ry,
			cx - kx, cy + ry, cx - rx, cy + ky, cx - rx, cy,
			cx - rx, cy - ky, cx - kx, cy - ry, cx, cy - ry,
			cx + kx, cy - ry, cx + rx, cy - ky, cx + rx, cy,
		}},
		Close{},
	}
}
