package svgbot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenfold maps a 10x10 SVG onto a 100x100 screen area at the origin.
func tenfold() (*Painter, *Recorder) {
	rec := &Recorder{}
	return NewPainter(NewRect(0, 0, 10, 10), NewRect(0, 0, 100, 100), rec), rec
}

func requireMoves(t *testing.T, rec *Recorder, want ...Tuple) {
	t.Helper()
	moves := rec.Moves()
	require.Len(t, moves, len(want))
	for i, w := range want {
		assert.InDelta(t, w[0], moves[i].X, 1e-9, "move %d x", i)
		assert.InDelta(t, w[1], moves[i].Y, 1e-9, "move %d y", i)
	}
}

func requirePoint(t *testing.T, p SvgPoint, x, y float64) {
	t.Helper()
	assert.InDelta(t, x, p.X(), 1e-9)
	assert.InDelta(t, y, p.Y(), 1e-9)
}

func TestPainterStartsAtOrigin(t *testing.T) {
	p, rec := tenfold()
	requirePoint(t, p.CurrentPoint(), 0, 0)
	_, open := p.SubpathStart()
	assert.False(t, open)
	assert.Empty(t, rec.Actions)
}

func TestMoveWithImplicitLine(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{1, 1, 3, 3, 5, 5}}))

	requirePoint(t, p.CurrentPoint(), 5, 5)
	start, open := p.SubpathStart()
	require.True(t, open)
	requirePoint(t, start, 1, 1)

	requireMoves(t, rec, Tuple{10, 10}, Tuple{30, 30}, Tuple{50, 50})
	assert.Equal(t, 1, rec.Count(ActionPress))
	assert.Equal(t, 1, rec.Count(ActionRelease))
	assert.Equal(t, []ActionKind{ActionRelease, ActionMove, ActionPress, ActionMove, ActionMove}, kinds(rec))
}

func TestMoveOnlyLiftsPointer(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{4, 2}}))
	requirePoint(t, p.CurrentPoint(), 4, 2)
	assert.Equal(t, []Action{{Kind: ActionRelease}}, rec.Actions)
}

func TestRelativeMove(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{2, 2}}))
	require.NoError(t, p.Perform(Move{Relative, []float64{1, 1, 2, 2}}))

	start, open := p.SubpathStart()
	require.True(t, open)
	requirePoint(t, start, 3, 3)
	requirePoint(t, p.CurrentPoint(), 5, 5)
	requireMoves(t, rec, Tuple{30, 30}, Tuple{50, 50})
	assert.Equal(t, 2, rec.Count(ActionRelease))
}

func TestRelativeLineAccumulates(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{2, 2}}))
	require.NoError(t, p.Perform(Line{Relative, []float64{1, 1, 1, 1}}))

	requirePoint(t, p.CurrentPoint(), 4, 4)
	requireMoves(t, rec, Tuple{20, 20}, Tuple{30, 30}, Tuple{40, 40})
	assert.Equal(t, 1, rec.Count(ActionPress))
}

func TestLineWithoutMoveAdoptsSubpathStart(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Line{Absolute, []float64{3, 4}}))

	start, open := p.SubpathStart()
	require.True(t, open)
	requirePoint(t, start, 0, 0)
	requirePoint(t, p.CurrentPoint(), 3, 4)
	requireMoves(t, rec, Tuple{0, 0}, Tuple{30, 40})
}

func TestHorizontalAndVerticalLines(t *testing.T) {
	tests := []struct {
		name  string
		cmd   Command
		moves []Tuple
		end   Tuple
	}{
		{"absolute h", HorizontalLine{Absolute, []float64{3, 6}}, []Tuple{{10, 10}, {30, 10}, {60, 10}}, Tuple{6, 1}},
		{"relative h", HorizontalLine{Relative, []float64{3, 6}}, []Tuple{{10, 10}, {40, 10}, {100, 10}}, Tuple{10, 1}},
		{"absolute v", VerticalLine{Absolute, []float64{3, 6}}, []Tuple{{10, 10}, {10, 30}, {10, 60}}, Tuple{1, 6}},
		{"relative v", VerticalLine{Relative, []float64{3, -1}}, []Tuple{{10, 10}, {10, 40}, {10, 30}}, Tuple{1, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, rec := tenfold()
			require.NoError(t, p.Perform(Move{Absolute, []float64{1, 1}}))
			require.NoError(t, p.Perform(test.cmd))
			requireMoves(t, rec, test.moves...)
			requirePoint(t, p.CurrentPoint(), test.end[0], test.end[1])
		})
	}
}

func TestCubicCurveSamples(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{1, 1}}))
	require.NoError(t, p.Perform(CubicCurve{Absolute, []float64{1, 9, 9, 9, 9, 1}}))

	moves := rec.Moves()
	// the pen is placed on the current point, then the samples follow
	require.Len(t, moves, 1+CurveSteps+1)
	samples := moves[1:]
	assert.Len(t, samples, 11)
	assert.InDelta(t, 10.0, samples[0].X, 1e-9)
	assert.InDelta(t, 10.0, samples[0].Y, 1e-9)
	assert.InDelta(t, 90.0, samples[10].X, 1e-9)
	assert.InDelta(t, 10.0, samples[10].Y, 1e-9)
	// B(0.5) = (P0 + 3P1 + 3P2 + P3) / 8
	assert.InDelta(t, 50.0, samples[5].X, 1e-9)
	assert.InDelta(t, 70.0, samples[5].Y, 1e-9)

	requirePoint(t, p.CurrentPoint(), 9, 1)
	assert.Equal(t, 1, rec.Count(ActionPress))
}

func TestRelativeCubicCurve(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{1, 1}}))
	require.NoError(t, p.Perform(CubicCurve{Relative, []float64{0, 8, 8, 8, 8, 0}}))

	moves := rec.Moves()
	require.Len(t, moves, 12)
	assert.InDelta(t, 90.0, moves[11].X, 1e-9)
	assert.InDelta(t, 10.0, moves[11].Y, 1e-9)
	requirePoint(t, p.CurrentPoint(), 9, 1)
}

func TestPolyCubicCurve(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{0, 0}}))
	require.NoError(t, p.Perform(CubicCurve{Relative, []float64{
		0, 1, 1, 1, 1, 0,
		0, 1, 1, 1, 1, 0,
	}}))

	assert.Len(t, rec.Moves(), 2*(1+CurveSteps+1))
	assert.Equal(t, 2, rec.Count(ActionPress))
	// the second segment is relative to the end of the first
	requirePoint(t, p.CurrentPoint(), 2, 0)
}

func TestSampleCubic(t *testing.T) {
	pts := SampleCubic(Tuple{0, 0}, Tuple{0, 1}, Tuple{1, 1}, Tuple{1, 0}, 10)
	require.Len(t, pts, 11)
	assert.Equal(t, Tuple{0, 0}, pts[0])
	assert.Equal(t, Tuple{1, 0}, pts[10])
	assert.InDelta(t, 0.5, pts[5][0], 1e-12)
	assert.InDelta(t, 0.75, pts[5][1], 1e-12)
}

func TestCloseDrawsBackToStart(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.PerformAll([]Command{
		Move{Absolute, []float64{1, 1}},
		Line{Absolute, []float64{4, 1, 4, 4}},
	}))
	rec.Actions = nil

	require.NoError(t, p.Perform(Close{}))
	requireMoves(t, rec, Tuple{40, 40}, Tuple{40, 40}, Tuple{10, 10})
	requirePoint(t, p.CurrentPoint(), 1, 1)
	_, open := p.SubpathStart()
	assert.False(t, open)
}

func TestCloseWithoutSubpath(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Close{}))

	for _, m := range rec.Moves() {
		assert.Equal(t, 0.0, m.X)
		assert.Equal(t, 0.0, m.Y)
	}
	assert.Equal(t, 1, rec.Count(ActionPress))
	requirePoint(t, p.CurrentPoint(), 0, 0)
	_, open := p.SubpathStart()
	assert.False(t, open)
}

func TestUnsupportedCommandsAreObserved(t *testing.T) {
	unsupported := []Command{
		EllipticalArc{Absolute, []float64{5, 5, 0, 0, 1, 8, 8}},
		QuadraticCurve{Relative, []float64{1, 1, 2, 2}},
		SmoothQuadraticCurve{Absolute, []float64{3, 3}},
		SmoothCubicCurve{Absolute, []float64{1, 2, 3, 4}},
		CubicCurve{Absolute, []float64{1, 2, 3, 4}},
	}

	for _, cmd := range unsupported {
		t.Run(cmd.Kind().String(), func(t *testing.T) {
			p, rec := tenfold()
			require.NoError(t, p.Perform(cmd))
			assert.Empty(t, rec.Actions)
			requirePoint(t, p.CurrentPoint(), 0, 0)
			_, open := p.SubpathStart()
			assert.False(t, open)
			assert.Equal(t, []Command{cmd}, p.Unsupported())
		})
	}
}

func TestUnsupportedKeepsOpenSubpath(t *testing.T) {
	p, rec := tenfold()
	require.NoError(t, p.Perform(Move{Absolute, []float64{2, 3}}))
	rec.Actions = nil

	require.NoError(t, p.Perform(EllipticalArc{Relative, []float64{1, 1, 0, 0, 0, 4, 4}}))
	assert.Empty(t, rec.Actions)
	requirePoint(t, p.CurrentPoint(), 2, 3)
	start, open := p.SubpathStart()
	require.True(t, open)
	requirePoint(t, start, 2, 3)
}

func TestMalformedCommands(t *testing.T) {
	malformed := []Command{
		Move{Absolute, nil},
		Move{Absolute, []float64{1, 2, 3}},
		Line{Absolute, []float64{1}},
		Line{Relative, []float64{1, 2, 3}},
		HorizontalLine{Absolute, nil},
		VerticalLine{Relative, nil},
		CubicCurve{Absolute, []float64{1, 2, 3, 4, 5, 6, 7, 8}},
	}

	for _, cmd := range malformed {
		t.Run(FormatCommand(cmd), func(t *testing.T) {
			p, _ := tenfold()
			err := p.Perform(cmd)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedCommand))
			assert.False(t, IsDeviceError(err))
		})
	}
}

func TestDeviceFailureStopsCommand(t *testing.T) {
	p, rec := tenfold()
	rec.FailAt = 3 // release, move, then the press fails

	err := p.Perform(Move{Absolute, []float64{1, 1, 3, 3}})
	require.Error(t, err)

	var de *DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "press", de.Op)
	assert.True(t, errors.Is(err, ErrInjected))
	assert.Len(t, rec.Actions, 2)
	requirePoint(t, p.CurrentPoint(), 1, 1)
}

func TestDeviceFailureOnMoveCarriesTarget(t *testing.T) {
	p, rec := tenfold()
	rec.FailAt = 1

	err := p.Perform(Line{Absolute, []float64{3, 3}})
	var de *DeviceError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "move", de.Op)
	assert.Equal(t, 0.0, de.X)
	assert.Contains(t, de.Error(), "pointer move to (0, 0) failed")
}

func TestPerformAllStopsAtFirstError(t *testing.T) {
	p, rec := tenfold()
	err := p.PerformAll([]Command{
		Move{Absolute, []float64{1, 1}},
		Line{Absolute, []float64{1}},
		Line{Absolute, []float64{5, 5}},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedCommand))
	assert.Contains(t, err.Error(), "command 1 (L1)")
	assert.Equal(t, 1, len(rec.Actions))
}

func TestTransformAppliesBeforeMapping(t *testing.T) {
	p, rec := tenfold()
	p.SetTransform(matrix(1, 0, 0, 1, 1, 2))
	require.NoError(t, p.PerformAll([]Command{
		Move{Absolute, []float64{0, 0}},
		Line{Relative, []float64{1, 1}},
	}))

	requireMoves(t, rec, Tuple{10, 20}, Tuple{20, 30})
	// state stays in path space
	requirePoint(t, p.CurrentPoint(), 1, 1)
}

func kinds(rec *Recorder) []ActionKind {
	out := make([]ActionKind, len(rec.Actions))
	for i, a := range rec.Actions {
		out[i] = a.Kind
	}
	return out
}
