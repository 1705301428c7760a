package svgscene

import (
	"fmt"
	"strings"
)

// walker resolves references while painting a Drawing
type walker struct {
	grads   map[string]Gradient
	clips   map[string]*Element
	clipped bool // inside a clip region
}

// skipped are not painted
var skipped = map[string]bool{
	"defs": true, "clipPath": true, "linearGradient": true, "radialGradient": true,
	"filter": true, "title": true, "desc": true, "metadata": true, "style": true,
}

func newWalker(dr *Drawing) (*walker, error) {
	w := &walker{grads: make(map[string]Gradient), clips: make(map[string]*Element)}
	viewBox := Bounds{W: float64(dr.Width), H: float64(dr.Height)}
	var err error
	for _, def := range dr.Defs {
		def.Walk(func(e *Element) {
			id, _ := e.Get("id")
			if id == "" || err != nil {
				return
			}
			switch e.Tag {
			case "linearGradient", "radialGradient":
				var grad Gradient
				grad, err = parseGradient(e, viewBox)
				if err != nil {
					err = fmt.Errorf("gradient %s: %w", id, err)
				}
				w.grads[id] = grad
			case "clipPath":
				w.clips[id] = e
			}
		})
	}
	return w, err
}

func (w *walker) drawElement(d Driver, e *Element, parent PathStyle) error {
	if skipped[e.Tag] {
		return nil
	}
	style, err := w.pushStyle(parent, e.Attrs)
	if err != nil {
		return fmt.Errorf("invalid style for <%s>: %w", e.Tag, err)
	}

	if ref, ok := e.Get("clip-path"); ok && !w.clipped {
		id, _ := readURL(ref)
		clip, hasClip := w.clips[id]
		cd, isClipDriver := d.(ClipDriver)
		switch {
		case !hasClip:
			Logger().Debug("svgscene: unknown clip path, ignored", "ref", ref)
		case !isClipDriver:
			Logger().Debug("svgscene: driver without clip support, clip ignored", "ref", ref)
		default:
			if err := w.beginClip(cd, clip, style.transform); err != nil {
				return err
			}
			w.clipped = true
			defer func() {
				cd.EndClip()
				w.clipped = false
			}()
		}
	}

	switch e.Tag {
	case "g", "svg", "a":
		for _, child := range e.Children {
			if err := w.drawElement(d, child, style); err != nil {
				return err
			}
		}
	case "text":
		w.drawText(d, e, style)
	default:
		path, err := ElementPath(e)
		if err != nil {
			return fmt.Errorf("invalid geometry for <%s>: %w", e.Tag, err)
		}
		if len(path) != 0 {
			drawPath(d, path, style)
		}
	}
	return nil
}

// beginClip sends the union of the clip children outlines
// to the driver clip filler.
func (w *walker) beginClip(cd ClipDriver, clip *Element, m Matrix2D) error {
	f := cd.BeginClip()
	for _, child := range clip.Children {
		path, err := ElementPath(child)
		if err != nil {
			cd.EndClip()
			return fmt.Errorf("invalid clip path: %w", err)
		}
		tr := m
		if v, ok := child.Get("transform"); ok {
			if tr, err = parseTransform(m, v); err != nil {
				cd.EndClip()
				return fmt.Errorf("invalid clip path: %w", err)
			}
		}
		f.Clear()
		f.SetWinding(true)
		path.drawTo(f, tr)
		f.SetColor(NewPlainColor(0, 0, 0, 0xff), 1)
		f.Draw()
	}
	return nil
}

func (w *walker) drawText(d Driver, e *Element, style PathStyle) {
	text := strings.TrimSpace(e.Text)
	if text == "" || style.FillerColor == nil {
		return
	}
	td, ok := d.(TextDriver)
	if !ok {
		Logger().Debug("svgscene: driver without text support, text ignored", "text", text)
		return
	}
	var x, y float64
	if v, ok := e.Get("x"); ok {
		x, _ = parseFloat(v)
	}
	if v, ok := e.Get("y"); ok {
		y, _ = parseFloat(v)
	}
	td.DrawText(TextRun{
		Text:     text,
		Position: style.transform.tr(Point{x, y}),
		Size:     style.FontSize * style.transform.scaleFactor(),
		Bold:     style.Bold,
		Family:   style.FontFamily,
		Anchor:   style.Anchor,
		Color:    style.FillerColor,
		Opacity:  style.FillOpacity,
	})
}
