package svgbot

import (
	"fmt"

	mt "github.com/rustyoz/Mtransform"
	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"
)

// Path is an SVG XML path element
type Path struct {
	ID              string `xml:"id,attr"`
	D               string `xml:"d,attr"`
	TransformString string `xml:"transform,attr"`
}

// Commands parses the path description into a command stream.
func (p *Path) Commands() ([]Command, error) {
	cmds, err := ParsePathData(p.D)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", p.ID, err)
	}
	return cmds, nil
}

func (p *Path) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	cmds, err := p.Commands()
	if err != nil {
		return shapes, err
	}
	return appendShape(shapes, "path", p.ID, p.TransformString, cmds, parent)
}

type pathDescriptionParser struct {
	lex  *scanner
	cmds []Command
}

// ParsePathData turns the value of a path's d attribute into commands, one
// per command letter, each with every number that follows the letter.
// Parameter counts are not checked here; the painter does that.
func ParsePathData(d string) ([]Command, error) {
	pdp := &pathDescriptionParser{lex: newScanner("d", d)}
	defer pdp.lex.stop()
	for {
		i := pdp.lex.next()
		switch {
		case i.Type == gl.ItemError:
			return nil, fmt.Errorf("error lexing path data: %s", i.Value)
		case i.Type == gl.ItemEOS:
			return pdp.cmds, nil
		case i.Type == gl.ItemLetter, i.Type == gl.ItemWord:
			if err := pdp.parseLetters(i.Value); err != nil {
				return nil, err
			}
		case i.Type == gl.ItemNumber:
			return nil, fmt.Errorf("number %s is not preceded by a command", i.Value)
		default:
		}
	}
}

// parseLetters handles a run of letters such as "zM". All but the last
// letter get no parameters.
func (pdp *pathDescriptionParser) parseLetters(letters string) error {
	for j := 0; j < len(letters)-1; j++ {
		kind, pos, err := commandForLetter(letters[j])
		if err != nil {
			return err
		}
		pdp.cmds = append(pdp.cmds, newCommand(kind, pos, nil))
	}
	if letters == "" {
		return nil
	}
	kind, pos, err := commandForLetter(letters[len(letters)-1])
	if err != nil {
		return err
	}
	params, err := pdp.parseNumbers()
	if err != nil {
		return fmt.Errorf("error parsing %c command: %s", letters[len(letters)-1], err)
	}
	if kind == CloseCommand && len(params) > 0 {
		return fmt.Errorf("close command takes no parameters, got %d", len(params))
	}
	pdp.cmds = append(pdp.cmds, newCommand(kind, pos, params))
	return nil
}

func (pdp *pathDescriptionParser) parseNumbers() ([]float64, error) {
	var params []float64
	for {
		pdp.lex.skipSeparators()
		if pdp.lex.peek().Type != gl.ItemNumber {
			return params, nil
		}
		n, err := parseNumber(pdp.lex.next())
		if err != nil {
			return nil, err
		}
		params = append(params, n)
	}
}

func commandForLetter(c byte) (CommandKind, Position, error) {
	pos := Absolute
	if c >= 'a' && c <= 'z' {
		pos = Relative
		c -= 'a' - 'A'
	}
	for k, l := range kindLetters {
		if l == c {
			return CommandKind(k), pos, nil
		}
	}
	return 0, pos, fmt.Errorf("unknown path command %q", c)
}

func parseNumber(i gl.Item) (float64, error) {
	if i.Type != gl.ItemNumber {
		return 0, fmt.Errorf("expected number, got %q", i.Value)
	}
	n, length := strconv.ParseFloat([]byte(i.Value))
	if length == 0 || length != len(i.Value) {
		return 0, fmt.Errorf("invalid number %q", i.Value)
	}
	return n, nil
}

// parseNumberStream returns every number in s, ignoring separators. Used for
// the points attribute of polylines and polygons.
func parseNumberStream(s string) ([]float64, error) {
	pdp := &pathDescriptionParser{lex: newScanner("points", s)}
	defer pdp.lex.stop()
	nums, err := pdp.parseNumbers()
	if err != nil {
		return nil, err
	}
	switch i := pdp.lex.next(); i.Type {
	case gl.ItemEOS:
	case gl.ItemError:
		return nil, fmt.Errorf("error lexing number list: %s", i.Value)
	default:
		return nil, fmt.Errorf("unexpected %q in number list", i.Value)
	}
	return nums, nil
}
