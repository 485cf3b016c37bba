package svgbot

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// Element is an SVG element that contributes shapes to the drawing. Groups
// contribute the shapes of their children.
type Element interface {
	appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error)
}

// Tuple is an X,Y coordinate
type Tuple [2]float64

// Shape is one drawable element reduced to path commands. Transform is the
// composition of the element's own transform and those of its ancestors.
type Shape struct {
	ID        string
	Element   string
	Commands  []Command
	Transform mt.Transform
}

// Name returns a human readable label for log lines and errors.
func (s Shape) Name() string {
	if s.ID != "" {
		return s.Element + "#" + s.ID
	}
	return s.Element
}

func (s Shape) transform() mt.Transform {
	if s.Transform == (mt.Transform{}) {
		return mt.Identity()
	}
	return s.Transform
}

// Svg represents an SVG file: its size attributes and every drawable element
// in document order.
type Svg struct {
	Title    string
	Name     string
	ViewBox  string
	Width    string
	Height   string
	Elements []Element
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID              string
	TransformString string
	Transform       mt.Transform // row, column
	Elements        []Element
}

func (g *Group) appendShapes(shapes []Shape, parent mt.Transform) ([]Shape, error) {
	t := mt.MultiplyTransforms(parent, g.Transform)
	var err error
	for _, e := range g.Elements {
		if shapes, err = e.appendShapes(shapes, t); err != nil {
			return shapes, err
		}
	}
	return shapes, nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	g.Transform = mt.Identity()
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "transform":
			g.TransformString = attr.Value
			t, err := parseTransform(g.TransformString)
			if err != nil {
				return fmt.Errorf("group %q: %w", g.ID, err)
			}
			g.Transform = t
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			e, err := decodeElement(decoder, tok)
			if err != nil {
				return fmt.Errorf("error decoding element of Group: %w", err)
			}
			if e != nil {
				g.Elements = append(g.Elements, e)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// decodeElement decodes the element that starts with start. Elements that
// are not drawn (defs, text, metadata and the like) are skipped and nil is
// returned.
func decodeElement(decoder *xml.Decoder, start xml.StartElement) (Element, error) {
	var e Element
	switch start.Name.Local {
	case "g":
		e = &Group{}
	case "path":
		e = &Path{}
	case "rect":
		e = &RectElement{}
	case "circle":
		e = &Circle{}
	case "ellipse":
		e = &Ellipse{}
	case "line":
		e = &LineElement{}
	case "polyline":
		e = &PolyLine{}
	case "polygon":
		e = &PolyLine{Closed: true}
	default:
		return nil, decoder.Skip()
	}
	if err := decoder.DecodeElement(e, &start); err != nil {
		return nil, fmt.Errorf("%s: %w", start.Name.Local, err)
	}
	return e, nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "viewBox":
			s.ViewBox = attr.Value
		case "width":
			s.Width = attr.Value
		case "height":
			s.Height = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "title" {
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
				continue
			}
			e, err := decodeElement(decoder, tok)
			if err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			if e != nil {
				s.Elements = append(s.Elements, e)
			}
		case xml.EndElement:
			return nil
		}
	}
}

// Area returns the SVG coordinate space: the viewBox when present,
// otherwise the rect from the origin to (width, height).
func (s *Svg) Area() (Rect, error) {
	if strings.TrimSpace(s.ViewBox) != "" {
		nums, err := parseNumberList(s.ViewBox)
		if err != nil {
			return Rect{}, fmt.Errorf("viewBox: %w", err)
		}
		if len(nums) != 4 {
			return Rect{}, fmt.Errorf("viewBox needs 4 numbers, got %d", len(nums))
		}
		r := NewRect(nums[0], nums[1], nums[2], nums[3])
		if !r.Valid() {
			return Rect{}, fmt.Errorf("viewBox %q has a zero extent", s.ViewBox)
		}
		return r, nil
	}

	if strings.TrimSpace(s.Width) != "" && strings.TrimSpace(s.Height) != "" {
		w, err := parseLength(s.Width)
		if err != nil {
			return Rect{}, fmt.Errorf("width: %w", err)
		}
		h, err := parseLength(s.Height)
		if err != nil {
			return Rect{}, fmt.Errorf("height: %w", err)
		}
		r := NewRect(0, 0, w, h)
		if !r.Valid() {
			return Rect{}, fmt.Errorf("size %sx%s has a zero extent", s.Width, s.Height)
		}
		return r, nil
	}

	return Rect{}, ErrNoArea
}

// Shapes returns every drawable element in document order, reduced to path
// commands.
func (s *Svg) Shapes() ([]Shape, error) {
	var shapes []Shape
	var err error
	for _, e := range s.Elements {
		if shapes, err = e.appendShapes(shapes, mt.Identity()); err != nil {
			return nil, err
		}
	}
	return shapes, nil
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string) (*Svg, error) {
	var svg Svg
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %v", err)
	}
	svg.Name = name
	return &svg, nil
}

// appendShape adds a shape built from an element with the given own
// transform attribute. Elements without commands are not drawn.
func appendShape(shapes []Shape, element, id, transform string, cmds []Command, parent mt.Transform) ([]Shape, error) {
	if len(cmds) == 0 {
		return shapes, nil
	}
	own := mt.Identity()
	if strings.TrimSpace(transform) != "" {
		t, err := parseTransform(transform)
		if err != nil {
			return shapes, fmt.Errorf("%s %q: %w", element, id, err)
		}
		own = t
	}
	return append(shapes, Shape{
		ID:        id,
		Element:   element,
		Commands:  cmds,
		Transform: mt.MultiplyTransforms(parent, own),
	}), nil
}
