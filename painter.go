package svgbot

import (
	"fmt"
	"log/slog"

	mt "github.com/rustyoz/Mtransform"
)

// CurveSteps is the number of straight segments a cubic curve is split
// into. A curve therefore becomes CurveSteps+1 points.
const CurveSteps = 10

// Painter replays path commands on a Pointer. It holds the pen position and
// the start of the open subpath, so one Painter must be used for exactly one
// path.
type Painter struct {
	current      SvgPoint
	subpathStart *SvgPoint

	mapping   Mapping
	pointer   Pointer
	transform mt.Transform
	identity  bool

	unsupported []Command
	log         *slog.Logger
}

// NewPainter returns a painter with the pen at the SVG origin and no open
// subpath.
func NewPainter(svgArea, screenArea Rect, pointer Pointer) *Painter {
	return &Painter{
		current:   NewSvgPoint(0, 0, svgArea, screenArea),
		mapping:   Mapping{Svg: svgArea, Screen: screenArea},
		pointer:   pointer,
		transform: mt.Identity(),
		identity:  true,
		log:       Logger(),
	}
}

// SetTransform sets the element transform applied to every resolved point
// right before it is mapped to the screen. Relative coordinates keep
// accumulating in untransformed path space.
func (p *Painter) SetTransform(t mt.Transform) {
	p.transform = t
	p.identity = t == mt.Identity()
}

// CurrentPoint returns the last resolved pen position.
func (p *Painter) CurrentPoint() SvgPoint { return p.current }

// SubpathStart returns the start of the open subpath, if there is one.
func (p *Painter) SubpathStart() (SvgPoint, bool) {
	if p.subpathStart == nil {
		return SvgPoint{}, false
	}
	return *p.subpathStart, true
}

// Unsupported returns the commands that were observed but not drawn.
func (p *Painter) Unsupported() []Command { return p.unsupported }

// PerformAll runs the commands in order and stops at the first error.
func (p *Painter) PerformAll(cmds []Command) error {
	for i, c := range cmds {
		if err := p.Perform(c); err != nil {
			return fmt.Errorf("command %d (%s): %w", i, FormatCommand(c), err)
		}
	}
	return nil
}

// Perform runs a single command.
//
// Device failures are returned as *DeviceError. Commands with a parameter
// count that doesn't fit return an error wrapping ErrMalformedCommand.
// Quadratic curves, smooth curves, arcs and cubic curves with fewer than six
// parameters are logged and recorded in Unsupported but produce no motion.
func (p *Painter) Perform(cmd Command) error {
	switch c := cmd.(type) {
	case Move:
		return p.move(c.Pos, c.Params)
	case Line:
		p.adoptSubpathStart()
		return p.line(c.Pos, c.Params)
	case HorizontalLine:
		p.adoptSubpathStart()
		return p.horizontalLine(c.Pos, c.Params)
	case VerticalLine:
		p.adoptSubpathStart()
		return p.verticalLine(c.Pos, c.Params)
	case CubicCurve:
		if len(c.Params) < 6 {
			p.observe(c, "curve continuation shorthand")
			return nil
		}
		p.adoptSubpathStart()
		return p.cubicCurve(c.Pos, c.Params)
	case Close:
		p.adoptSubpathStart()
		return p.close()
	case QuadraticCurve, SmoothQuadraticCurve, SmoothCubicCurve, EllipticalArc:
		p.observe(cmd, "not rasterized")
		return nil
	}
	return fmt.Errorf("%w: unknown command %T", ErrInvariant, cmd)
}

// adoptSubpathStart opens a subpath at the pen when a drawing command runs
// without a preceding move.
func (p *Painter) adoptSubpathStart() {
	if p.subpathStart == nil {
		start := p.current
		p.subpathStart = &start
	}
}

func (p *Painter) observe(cmd Command, reason string) {
	p.unsupported = append(p.unsupported, cmd)
	p.log.Warn("path command not drawn",
		"command", cmd.Kind().String(),
		"reason", reason,
		"data", FormatCommand(cmd))
}

func (p *Painter) resolve(pos Position, from SvgPoint, x, y float64) SvgPoint {
	if pos == Relative {
		return from.Offset(x, y)
	}
	return from.At(x, y)
}

func (p *Painter) move(pos Position, params []float64) error {
	if len(params) < 2 || len(params)%2 != 0 {
		return malformed(MoveCommand, "need an even number of at least 2 parameters, got %d", len(params))
	}

	start := p.resolve(pos, p.current, params[0], params[1])
	p.subpathStart = &start

	if err := p.release(); err != nil {
		return err
	}
	p.current = start

	// further pairs are an implicit line in the same position mode
	if len(params) > 2 {
		return p.line(pos, params[2:])
	}
	return nil
}

func (p *Painter) line(pos Position, params []float64) error {
	if len(params) < 2 || len(params)%2 != 0 {
		return malformed(LineCommand, "need an even number of at least 2 parameters, got %d", len(params))
	}

	point := p.current
	if err := p.moveTo(point); err != nil {
		return err
	}
	if err := p.press(); err != nil {
		return err
	}

	for i := 0; i < len(params); i += 2 {
		point = p.resolve(pos, point, params[i], params[i+1])
		if err := p.moveTo(point); err != nil {
			return err
		}
	}

	p.current = point
	return nil
}

func (p *Painter) horizontalLine(pos Position, params []float64) error {
	if len(params) < 1 {
		return malformed(HorizontalLineCommand, "need at least 1 parameter")
	}
	coords := make([]float64, 0, 2*len(params))
	point := p.current
	for _, v := range params {
		if pos == Relative {
			point = point.Offset(v, 0)
		} else {
			point = point.At(v, point.Y())
		}
		coords = append(coords, point.X(), point.Y())
	}
	return p.line(Absolute, coords)
}

func (p *Painter) verticalLine(pos Position, params []float64) error {
	if len(params) < 1 {
		return malformed(VerticalLineCommand, "need at least 1 parameter")
	}
	coords := make([]float64, 0, 2*len(params))
	point := p.current
	for _, v := range params {
		if pos == Relative {
			point = point.Offset(0, v)
		} else {
			point = point.At(point.X(), v)
		}
		coords = append(coords, point.X(), point.Y())
	}
	return p.line(Absolute, coords)
}

func (p *Painter) cubicCurve(pos Position, params []float64) error {
	if len(params)%6 != 0 {
		return malformed(CubicCurveCommand, "parameter count %d is not a multiple of 6", len(params))
	}

	for i := 0; i < len(params); i += 6 {
		seg := params[i : i+6]
		p0 := p.current
		p1 := p.resolve(pos, p0, seg[0], seg[1])
		p2 := p.resolve(pos, p0, seg[2], seg[3])
		p3 := p.resolve(pos, p0, seg[4], seg[5])

		samples := SampleCubic(
			Tuple{p0.X(), p0.Y()},
			Tuple{p1.X(), p1.Y()},
			Tuple{p2.X(), p2.Y()},
			Tuple{p3.X(), p3.Y()},
			CurveSteps)
		coords := make([]float64, 0, 2*len(samples))
		for _, s := range samples {
			coords = append(coords, s[0], s[1])
		}
		if err := p.line(Absolute, coords); err != nil {
			return err
		}
	}
	return nil
}

func (p *Painter) close() error {
	if p.subpathStart == nil {
		return fmt.Errorf("%w: no subpath start while closing", ErrInvariant)
	}
	start := *p.subpathStart
	err := p.line(Absolute, []float64{p.current.X(), p.current.Y(), start.X(), start.Y()})
	if err != nil {
		return err
	}
	p.subpathStart = nil
	return nil
}

func (p *Painter) toScreen(pt SvgPoint) (float64, float64) {
	x, y := pt.X(), pt.Y()
	if !p.identity {
		x, y = p.transform.Apply(x, y)
	}
	return p.mapping.ToScreen(x, y)
}

func (p *Painter) moveTo(pt SvgPoint) error {
	x, y := p.toScreen(pt)
	p.log.Debug("pointer move", "x", x, "y", y)
	if err := p.pointer.MoveTo(x, y); err != nil {
		return &DeviceError{Op: "move", X: x, Y: y, Err: err}
	}
	return nil
}

func (p *Painter) press() error {
	p.log.Debug("pointer press")
	if err := p.pointer.Press(); err != nil {
		return &DeviceError{Op: "press", Err: err}
	}
	return nil
}

func (p *Painter) release() error {
	p.log.Debug("pointer release")
	if err := p.pointer.Release(); err != nil {
		return &DeviceError{Op: "release", Err: err}
	}
	return nil
}

// SampleCubic evaluates the cubic Bezier curve with the given control points
// at steps+1 evenly spaced parameters, both end points included.
func SampleCubic(p0, p1, p2, p3 Tuple, steps int) []Tuple {
	if steps < 1 {
		steps = 1
	}
	out := make([]Tuple, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		a := u * u * u
		b := 3 * u * u * t
		c := 3 * u * t * t
		d := t * t * t
		out = append(out, Tuple{
			a*p0[0] + b*p1[0] + c*p2[0] + d*p3[0],
			a*p0[1] + b*p1[1] + c*p2[1] + d*p3[1],
		})
	}
	return out
}
