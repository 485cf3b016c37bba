package svgbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandLetters(t *testing.T) {
	assert.Equal(t, byte('M'), MoveCommand.Letter(Absolute))
	assert.Equal(t, byte('m'), MoveCommand.Letter(Relative))
	assert.Equal(t, byte('T'), SmoothQuadraticCurveCommand.Letter(Absolute))
	assert.Equal(t, byte('s'), SmoothCubicCurveCommand.Letter(Relative))
	assert.Equal(t, "HorizontalLine", HorizontalLineCommand.String())
	assert.Equal(t, "relative", Relative.String())
}

func TestCommandsReportKindAndMode(t *testing.T) {
	for _, test := range []struct {
		cmd  Command
		kind CommandKind
		text string
	}{
		{Move{Relative, []float64{1, 2}}, MoveCommand, "m1,2"},
		{Line{Absolute, []float64{1, 2, 3, 4}}, LineCommand, "L1,2 3,4"},
		{HorizontalLine{Absolute, []float64{1}}, HorizontalLineCommand, "H1"},
		{VerticalLine{Relative, []float64{-2.5}}, VerticalLineCommand, "v-2.5"},
		{CubicCurve{Absolute, []float64{1, 2, 3, 4, 5, 6}}, CubicCurveCommand, "C1,2 3,4 5,6"},
		{QuadraticCurve{Absolute, []float64{1, 2, 3, 4}}, QuadraticCurveCommand, "Q1,2 3,4"},
		{SmoothQuadraticCurve{Relative, []float64{1, 2}}, SmoothQuadraticCurveCommand, "t1,2"},
		{SmoothCubicCurve{Absolute, []float64{1, 2, 3, 4}}, SmoothCubicCurveCommand, "S1,2 3,4"},
		{EllipticalArc{Absolute, []float64{1, 1, 0, 0, 1, 2, 2}}, EllipticalArcCommand, "A1,1 0,0 1,2 2"},
		{Close{}, CloseCommand, "Z"},
	} {
		assert.Equal(t, test.kind, test.cmd.Kind())
		assert.Equal(t, test.text, FormatCommand(test.cmd))
	}
}
