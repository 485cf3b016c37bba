package svgbot

import (
	"strconv"
	"strings"
)

// Position tells whether the parameters of a command are absolute
// coordinates or offsets from the current point.
type Position uint8

const (
	Absolute Position = iota
	Relative
)

func (p Position) String() string {
	if p == Relative {
		return "relative"
	}
	return "absolute"
}

// CommandKind identifies the path command a Command stands for.
type CommandKind uint8

// These are the path commands of the SVG path grammar.
const (
	MoveCommand CommandKind = iota
	LineCommand
	HorizontalLineCommand
	VerticalLineCommand
	CubicCurveCommand
	QuadraticCurveCommand
	SmoothQuadraticCurveCommand
	SmoothCubicCurveCommand
	EllipticalArcCommand
	CloseCommand
)

var kindNames = [...]string{
	MoveCommand:                 "Move",
	LineCommand:                 "Line",
	HorizontalLineCommand:       "HorizontalLine",
	VerticalLineCommand:         "VerticalLine",
	CubicCurveCommand:           "CubicCurve",
	QuadraticCurveCommand:       "QuadraticCurve",
	SmoothQuadraticCurveCommand: "SmoothQuadraticCurve",
	SmoothCubicCurveCommand:     "SmoothCubicCurve",
	EllipticalArcCommand:        "EllipticalArc",
	CloseCommand:                "Close",
}

// the upper case letter is the absolute form
var kindLetters = [...]byte{'M', 'L', 'H', 'V', 'C', 'Q', 'T', 'S', 'A', 'Z'}

func (k CommandKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "CommandKind(" + strconv.Itoa(int(k)) + ")"
}

// Letter returns the path data letter of the kind in the given position.
func (k CommandKind) Letter(pos Position) byte {
	if int(k) >= len(kindLetters) {
		return '?'
	}
	l := kindLetters[k]
	if pos == Relative {
		l += 'a' - 'A'
	}
	return l
}

// Command is one path command. The set of implementations is closed: Move,
// Line, HorizontalLine, VerticalLine, CubicCurve, QuadraticCurve,
// SmoothQuadraticCurve, SmoothCubicCurve, EllipticalArc and Close.
type Command interface {
	Kind() CommandKind
	Mode() Position
	Args() []float64

	isCommand()
}

// Move starts a new subpath. Extra coordinate pairs are implicit lines.
type Move struct {
	Pos    Position
	Params []float64
}

// Line draws straight segments through each coordinate pair.
type Line struct {
	Pos    Position
	Params []float64
}

// HorizontalLine draws segments that only change x.
type HorizontalLine struct {
	Pos    Position
	Params []float64
}

// VerticalLine draws segments that only change y.
type VerticalLine struct {
	Pos    Position
	Params []float64
}

// CubicCurve holds control point, control point and end point triples.
type CubicCurve struct {
	Pos    Position
	Params []float64
}

// QuadraticCurve is parsed but never drawn.
type QuadraticCurve struct {
	Pos    Position
	Params []float64
}

// SmoothQuadraticCurve is parsed but never drawn.
type SmoothQuadraticCurve struct {
	Pos    Position
	Params []float64
}

// SmoothCubicCurve is parsed but never drawn.
type SmoothCubicCurve struct {
	Pos    Position
	Params []float64
}

// EllipticalArc is parsed but never drawn.
type EllipticalArc struct {
	Pos    Position
	Params []float64
}

// Close draws a line back to the start of the subpath and closes it.
type Close struct{}

func (Move) Kind() CommandKind                 { return MoveCommand }
func (Line) Kind() CommandKind                 { return LineCommand }
func (HorizontalLine) Kind() CommandKind       { return HorizontalLineCommand }
func (VerticalLine) Kind() CommandKind         { return VerticalLineCommand }
func (CubicCurve) Kind() CommandKind           { return CubicCurveCommand }
func (QuadraticCurve) Kind() CommandKind       { return QuadraticCurveCommand }
func (SmoothQuadraticCurve) Kind() CommandKind { return SmoothQuadraticCurveCommand }
func (SmoothCubicCurve) Kind() CommandKind     { return SmoothCubicCurveCommand }
func (EllipticalArc) Kind() CommandKind        { return EllipticalArcCommand }
func (Close) Kind() CommandKind                { return CloseCommand }

func (c Move) Mode() Position                 { return c.Pos }
func (c Line) Mode() Position                 { return c.Pos }
func (c HorizontalLine) Mode() Position       { return c.Pos }
func (c VerticalLine) Mode() Position         { return c.Pos }
func (c CubicCurve) Mode() Position           { return c.Pos }
func (c QuadraticCurve) Mode() Position       { return c.Pos }
func (c SmoothQuadraticCurve) Mode() Position { return c.Pos }
func (c SmoothCubicCurve) Mode() Position     { return c.Pos }
func (c EllipticalArc) Mode() Position        { return c.Pos }
func (Close) Mode() Position                  { return Absolute }

func (c Move) Args() []float64                 { return c.Params }
func (c Line) Args() []float64                 { return c.Params }
func (c HorizontalLine) Args() []float64       { return c.Params }
func (c VerticalLine) Args() []float64         { return c.Params }
func (c CubicCurve) Args() []float64           { return c.Params }
func (c QuadraticCurve) Args() []float64       { return c.Params }
func (c SmoothQuadraticCurve) Args() []float64 { return c.Params }
func (c SmoothCubicCurve) Args() []float64     { return c.Params }
func (c EllipticalArc) Args() []float64        { return c.Params }
func (Close) Args() []float64                  { return nil }

func (Move) isCommand()                 {}
func (Line) isCommand()                 {}
func (HorizontalLine) isCommand()       {}
func (VerticalLine) isCommand()         {}
func (CubicCurve) isCommand()           {}
func (QuadraticCurve) isCommand()       {}
func (SmoothQuadraticCurve) isCommand() {}
func (SmoothCubicCurve) isCommand()     {}
func (EllipticalArc) isCommand()        {}
func (Close) isCommand()                {}

// newCommand builds the command of the given kind.
func newCommand(kind CommandKind, pos Position, params []float64) Command {
	switch kind {
	case MoveCommand:
		return Move{pos, params}
	case LineCommand:
		return Line{pos, params}
	case HorizontalLineCommand:
		return HorizontalLine{pos, params}
	case VerticalLineCommand:
		return VerticalLine{pos, params}
	case CubicCurveCommand:
		return CubicCurve{pos, params}
	case QuadraticCurveCommand:
		return QuadraticCurve{pos, params}
	case SmoothQuadraticCurveCommand:
		return SmoothQuadraticCurve{pos, params}
	case SmoothCubicCurveCommand:
		return SmoothCubicCurve{pos, params}
	case EllipticalArcCommand:
		return EllipticalArc{pos, params}
	}
	return Close{}
}

// FormatCommand renders a command back into path data, e.g. "l1,1 2,2".
func FormatCommand(c Command) string {
	var b strings.Builder
	b.WriteByte(c.Kind().Letter(c.Mode()))
	for i, v := range c.Args() {
		switch {
		case i == 0:
		case i%2 == 0:
			b.WriteByte(' ')
		default:
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return b.String()
}

// FormatPath renders a command stream back into path data.
func FormatPath(cmds []Command) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = FormatCommand(c)
	}
	return strings.Join(parts, " ")
}
