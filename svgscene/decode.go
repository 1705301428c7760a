package svgscene

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

var errNoRoot = errors.New("invalid svg document: missing <svg> root")

// Decode reads a SVG document from the given io.Reader.
// The direct children of the root are mapped as follows: the content
// of <defs> becomes Defs, groups with an id become layers, and the other
// elements are gathered in unnamed layers, keeping the document order.
// Whitespace outside of text elements is dropped.
func Decode(stream io.Reader) (*Drawing, error) {
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("invalid svg document: %w", err)
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			e := &Element{Tag: se.Name.Local}
			for _, attr := range se.Attr {
				if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
					continue // namespaces declarations are implied
				}
				e.Attrs = append(e.Attrs, Attr{Name: attr.Name.Local, Value: attr.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("invalid svg document: multiple roots")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if top := stack[len(stack)-1]; top.Tag == "text" || top.Tag == "tspan" {
				top.Text += string(se)
			}
		}
	}
	if root == nil || root.Tag != "svg" {
		return nil, errNoRoot
	}
	return fromRoot(root)
}

func fromRoot(root *Element) (*Drawing, error) {
	var (
		d    Drawing
		w, h float64
		err  error
	)
	if v, ok := root.Get("viewBox"); ok {
		points, err := readNumbers(v)
		if err != nil || len(points) != 4 {
			return nil, fmt.Errorf("invalid svg viewBox %q", v)
		}
		w, h = points[2], points[3]
	}
	if v, ok := root.Get("width"); ok {
		if w, err = parseLength(v); err != nil {
			return nil, fmt.Errorf("invalid svg width: %w", err)
		}
	}
	if v, ok := root.Get("height"); ok {
		if h, err = parseLength(v); err != nil {
			return nil, fmt.Errorf("invalid svg height: %w", err)
		}
	}
	d.Width, d.Height = int(math.Ceil(w)), int(math.Ceil(h))

	for _, child := range root.Children {
		if child.Tag == "defs" {
			d.Defs = append(d.Defs, child.Children...)
			continue
		}
		if id, _ := child.Get("id"); child.Tag == "g" && id != "" && len(child.Attrs) == 1 {
			d.Layers = append(d.Layers, Layer{Name: id, Elements: child.Children})
			continue
		}
		if n := len(d.Layers); n == 0 || d.Layers[n-1].Name != "" {
			d.Layers = append(d.Layers, Layer{})
		}
		last := &d.Layers[len(d.Layers)-1]
		last.Elements = append(last.Elements, child)
	}
	return &d, nil
}

// parseLength accepts unit-less and pixel lengths
func parseLength(v string) (float64, error) {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(v), "px"))
}

// ReadFile reads the SVG document stored in the named file.
func ReadFile(name string) (*Drawing, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Decode(fin)
}
