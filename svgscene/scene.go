// Provides a structured representation of SVG documents.
// A Drawing is built element by element (or decoded from an SVG stream),
// serialized back to XML, and painted by walking it with a Driver.
// See for example forkmonkey/svgraster or forkmonkey/svgpdf .
package svgscene

import "strconv"

// Attr is one attribute of an element. Attributes keep their insertion
// order, so that serialization is stable.
type Attr struct {
	Name, Value string
}

// Element is a node of the scene graph.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string // character data, only used by text elements
}

// Layer is a named, top level group of a Drawing.
type Layer struct {
	Name     string
	Elements []*Element
}

// Drawing is a complete SVG document: definitions followed by
// layers, in painting order.
type Drawing struct {
	Width, Height int
	Defs          []*Element
	Layers        []Layer
}

// Layer returns the layer with the given name, or nil.
func (d *Drawing) Layer(name string) *Layer {
	for i := range d.Layers {
		if d.Layers[i].Name == name {
			return &d.Layers[i]
		}
	}
	return nil
}

// Def returns the definition with the given id, or nil.
func (d *Drawing) Def(id string) *Element {
	for _, def := range d.Defs {
		if v, _ := def.Get("id"); v == id {
			return def
		}
	}
	return nil
}

// FormatNumber writes f in its shortest round trip decimal form.
// Integral values are written without fraction.
func FormatNumber(f float64) string {
	if f == 0 {
		return "0" // avoid -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// New returns an empty element.
func New(tag string) *Element { return &Element{Tag: tag} }

// Get returns the value of the attribute `name`.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Set adds or replaces the attribute `name`.
func (e *Element) Set(name, value string) *Element {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetNum is like Set for a numeric value.
func (e *Element) SetNum(name string, v float64) *Element {
	return e.Set(name, FormatNumber(v))
}

func (e *Element) setNums(names string, values ...float64) *Element {
	i := 0
	for _, name := range splitOnCommaOrSpace(names) {
		e.SetNum(name, values[i])
		i++
	}
	return e
}

// Fill sets the fill paint.
func (e *Element) Fill(paint string) *Element { return e.Set("fill", paint) }

// Stroke sets the stroke paint and width.
func (e *Element) Stroke(paint string, width float64) *Element {
	return e.Set("stroke", paint).SetNum("stroke-width", width)
}

// Opacity sets the element opacity.
func (e *Element) Opacity(o float64) *Element { return e.SetNum("opacity", o) }

// Filter references a filter definition by id.
func (e *Element) Filter(id string) *Element { return e.Set("filter", "url(#"+id+")") }

// Append adds children to the element.
func (e *Element) Append(children ...*Element) *Element {
	e.Children = append(e.Children, children...)
	return e
}

// Walk calls fn for e and all its descendants, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// Rect returns a rectangle element.
func Rect(x, y, w, h float64) *Element {
	return New("rect").setNums("x y width height", x, y, w, h)
}

// Circle returns a circle element.
func Circle(cx, cy, r float64) *Element {
	return New("circle").setNums("cx cy r", cx, cy, r)
}

// Ellipse returns an ellipse element.
func Ellipse(cx, cy, rx, ry float64) *Element {
	return New("ellipse").setNums("cx cy rx ry", cx, cy, rx, ry)
}

// Line returns a line element.
func Line(x1, y1, x2, y2 float64) *Element {
	return New("line").setNums("x1 y1 x2 y2", x1, y1, x2, y2)
}

// Polygon returns a polygon element. `coords` alternates x and y values.
func Polygon(coords ...float64) *Element {
	var b []byte
	for i := 0; i+1 < len(coords); i += 2 {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, FormatNumber(coords[i])...)
		b = append(b, ',')
		b = append(b, FormatNumber(coords[i+1])...)
	}
	return New("polygon").Set("points", string(b))
}

// PathElement returns a path element drawing `p`.
func PathElement(p Path) *Element {
	return New("path").Set("d", p.String())
}

// Text returns a text element anchored at (x, y).
func Text(x, y float64, content string) *Element {
	e := New("text").setNums("x y", x, y)
	e.Text = content
	return e
}

// Group returns a g element wrapping the children.
func Group(children ...*Element) *Element {
	return New("g").Append(children...)
}
