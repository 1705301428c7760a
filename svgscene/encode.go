package svgscene

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
)

const svgNamespace = "http://www.w3.org/2000/svg"

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

func xmlAttrs(attrs []Attr) []xml.Attr {
	out := make([]xml.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value}
	}
	return out
}

func encodeElement(enc *xml.Encoder, e *Element) error {
	start := xml.StartElement{Name: xml.Name{Local: e.Tag}, Attr: xmlAttrs(e.Attrs)}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := encodeElement(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// WriteTo writes the SVG document to `w`: the root element, the
// definitions, then one group per non empty layer, in painting order.
// Elements of unnamed layers are written without group.
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	enc := xml.NewEncoder(cw)
	enc.Indent("", "  ")

	width, height := strconv.Itoa(d.Width), strconv.Itoa(d.Height)
	root := xml.StartElement{Name: xml.Name{Local: "svg"}, Attr: []xml.Attr{
		{Name: xml.Name{Local: "width"}, Value: width},
		{Name: xml.Name{Local: "height"}, Value: height},
		{Name: xml.Name{Local: "viewBox"}, Value: "0 0 " + width + " " + height},
		{Name: xml.Name{Local: "xmlns"}, Value: svgNamespace},
	}}
	if err := enc.EncodeToken(root); err != nil {
		return cw.n, err
	}
	if len(d.Defs) != 0 {
		if err := encodeElement(enc, &Element{Tag: "defs", Children: d.Defs}); err != nil {
			return cw.n, err
		}
	}
	for _, layer := range d.Layers {
		if len(layer.Elements) == 0 {
			continue
		}
		if layer.Name == "" {
			for _, e := range layer.Elements {
				if err := encodeElement(enc, e); err != nil {
					return cw.n, err
				}
			}
			continue
		}
		g := &Element{Tag: "g", Attrs: []Attr{{Name: "id", Value: layer.Name}}, Children: layer.Elements}
		if err := encodeElement(enc, g); err != nil {
			return cw.n, err
		}
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return cw.n, err
	}
	if err := enc.Flush(); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// MarshalSVG returns the SVG document.
func (d *Drawing) MarshalSVG() ([]byte, error) {
	var buf bytes.Buffer
	_, err := d.WriteTo(&buf)
	return buf.Bytes(), err
}
