package svgbot

// Mapping converts coordinates between the SVG area and the screen area.
// Both rects stay fixed for a whole drawing session.
type Mapping struct {
	Svg    Rect
	Screen Rect
}

// ToScreen maps an absolute SVG coordinate to the screen.
func (m Mapping) ToScreen(x, y float64) (float64, float64) {
	return x*m.Screen.Width/m.Svg.Width + m.Screen.X,
		y*m.Screen.Height/m.Svg.Height + m.Screen.Y
}

// ToSvg maps an absolute screen coordinate back to SVG space.
func (m Mapping) ToSvg(x, y float64) (float64, float64) {
	return (x - m.Screen.X) * (m.Svg.Width / m.Screen.Width),
		(y - m.Screen.Y) * (m.Svg.Height / m.Screen.Height)
}

// OffsetToScreen scales an SVG delta to screen units. No translation is
// applied.
func (m Mapping) OffsetToScreen(dx, dy float64) (float64, float64) {
	return dx * m.Screen.Width / m.Svg.Width, dy * m.Screen.Height / m.Svg.Height
}

// OffsetToSvg scales a screen delta to SVG units.
func (m Mapping) OffsetToSvg(dx, dy float64) (float64, float64) {
	return dx * (m.Svg.Width / m.Screen.Width), dy * (m.Svg.Height / m.Screen.Height)
}

// SvgPoint is a point in SVG units, carrying the areas it converts between.
type SvgPoint struct {
	x, y    float64
	mapping Mapping
}

// ScreenPoint is a point in screen units, carrying the areas it converts
// between.
type ScreenPoint struct {
	x, y    float64
	mapping Mapping
}

// NewSvgPoint returns an SVG point bound to the given areas.
func NewSvgPoint(x, y float64, svgArea, screenArea Rect) SvgPoint {
	return SvgPoint{x: x, y: y, mapping: Mapping{Svg: svgArea, Screen: screenArea}}
}

// NewScreenPoint returns a screen point bound to the given areas.
func NewScreenPoint(x, y float64, svgArea, screenArea Rect) ScreenPoint {
	return ScreenPoint{x: x, y: y, mapping: Mapping{Svg: svgArea, Screen: screenArea}}
}

func (p SvgPoint) X() float64       { return p.x }
func (p SvgPoint) Y() float64       { return p.y }
func (p SvgPoint) SvgArea() Rect    { return p.mapping.Svg }
func (p SvgPoint) ScreenArea() Rect { return p.mapping.Screen }
func (p SvgPoint) Mapping() Mapping { return p.mapping }

func (p ScreenPoint) X() float64       { return p.x }
func (p ScreenPoint) Y() float64       { return p.y }
func (p ScreenPoint) SvgArea() Rect    { return p.mapping.Svg }
func (p ScreenPoint) ScreenArea() Rect { return p.mapping.Screen }

// Offset moves the point by (dx, dy) SVG units.
func (p SvgPoint) Offset(dx, dy float64) SvgPoint {
	return SvgPoint{x: p.x + dx, y: p.y + dy, mapping: p.mapping}
}

// At returns a point at (x, y) bound to the same areas as p.
func (p SvgPoint) At(x, y float64) SvgPoint {
	return SvgPoint{x: x, y: y, mapping: p.mapping}
}

// ToScreen converts the point to screen units.
func (p SvgPoint) ToScreen() ScreenPoint {
	x, y := p.mapping.ToScreen(p.x, p.y)
	return ScreenPoint{x: x, y: y, mapping: p.mapping}
}

// Offset moves the point by (dx, dy) screen units.
func (p ScreenPoint) Offset(dx, dy float64) ScreenPoint {
	return ScreenPoint{x: p.x + dx, y: p.y + dy, mapping: p.mapping}
}

// ToSvg converts the point to SVG units.
func (p ScreenPoint) ToSvg() SvgPoint {
	x, y := p.mapping.ToSvg(p.x, p.y)
	return SvgPoint{x: x, y: y, mapping: p.mapping}
}
