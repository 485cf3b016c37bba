package svgbot

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
)

// matrix returns the transform of the SVG matrix(a b c d e f) function.
func matrix(a, b, c, d, e, f float64) mt.Transform {
	return mt.Transform{
		{a, c, e},
		{b, d, f},
		{0, 0, 1},
	}
}

// parseTransform parses the value of a transform attribute. The functions
// of a list are applied right to left, as in SVG.
func parseTransform(tstring string) (mt.Transform, error) {
	result := mt.Identity()
	pdp := &pathDescriptionParser{lex: newScanner("transform", tstring)}
	defer pdp.lex.stop()
	for {
		i := pdp.lex.next()
		switch {
		case i.Type == gl.ItemError:
			return result, fmt.Errorf("error lexing transform %q: %s", tstring, i.Value)
		case i.Type == gl.ItemEOS:
			return result, nil
		case i.Type == gl.ItemWord, i.Type == gl.ItemLetter:
			pdp.skipToNumber()
			args, err := pdp.parseNumbers()
			if err != nil {
				return result, fmt.Errorf("error parsing %s transform: %s", i.Value, err)
			}
			t, err := transformFunction(i.Value, args)
			if err != nil {
				return result, err
			}
			result = mt.MultiplyTransforms(result, t)
		case i.Type == gl.ItemNumber:
			return result, fmt.Errorf("number %s outside of a transform function", i.Value)
		default:
			// parentheses, commas and white space
		}
	}
}

// skipToNumber drops the opening parenthesis and white space after a
// transform function name.
func (pdp *pathDescriptionParser) skipToNumber() {
	for {
		switch pdp.lex.peek().Type {
		case gl.ItemNumber, gl.ItemEOS, gl.ItemError, gl.ItemWord, gl.ItemLetter:
			return
		}
		pdp.lex.next()
	}
}

func transformFunction(name string, args []float64) (mt.Transform, error) {
	argc := func(counts ...int) error {
		for _, c := range counts {
			if len(args) == c {
				return nil
			}
		}
		return fmt.Errorf("%s transform takes %v arguments, got %d", name, counts, len(args))
	}

	switch name {
	case "matrix":
		if err := argc(6); err != nil {
			return mt.Identity(), err
		}
		return matrix(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	case "translate":
		if err := argc(1, 2); err != nil {
			return mt.Identity(), err
		}
		ty := 0.0
		if len(args) == 2 {
			ty = args[1]
		}
		return matrix(1, 0, 0, 1, args[0], ty), nil
	case "scale":
		if err := argc(1, 2); err != nil {
			return mt.Identity(), err
		}
		sy := args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		return matrix(args[0], 0, 0, sy, 0, 0), nil
	case "rotate":
		if err := argc(1, 3); err != nil {
			return mt.Identity(), err
		}
		sin, cos := math.Sincos(args[0] * math.Pi / 180)
		r := matrix(cos, sin, -sin, cos, 0, 0)
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			r = mt.MultiplyTransforms(matrix(1, 0, 0, 1, cx, cy), r)
			r = mt.MultiplyTransforms(r, matrix(1, 0, 0, 1, -cx, -cy))
		}
		return r, nil
	case "skewX":
		if err := argc(1); err != nil {
			return mt.Identity(), err
		}
		return matrix(1, 0, math.Tan(args[0]*math.Pi/180), 1, 0, 0), nil
	case "skewY":
		if err := argc(1); err != nil {
			return mt.Identity(), err
		}
		return matrix(1, math.Tan(args[0]*math.Pi/180), 0, 1, 0, 0), nil
	}
	return mt.Identity(), fmt.Errorf("unknown transform function %q", name)
}
