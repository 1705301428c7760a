package svgscene

import (
	"math"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// in ellipse parametric when approximating an off-axis ellipse.
const maxDx float64 = math.Pi / 8

// kappa is the control distance, relative to the radius,
// of a cubic approximating a quarter of circle.
const kappa = 0.5522847498307936

// ElementPath reduces a shape element (rect, circle, ellipse, line,
// polyline, polygon, path) to its outline. Other elements, and
// degenerate shapes, give an empty path.
func ElementPath(e *Element) (Path, error) {
	num := func(name string) (float64, error) {
		v, ok := e.Get(name)
		if !ok {
			return 0, nil
		}
		return parseFloat(v)
	}
	nums := func(names ...string) ([]float64, error) {
		out := make([]float64, len(names))
		for i, name := range names {
			var err error
			if out[i], err = num(name); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	switch e.Tag {
	case "rect":
		v, err := nums("x", "y", "width", "height", "rx", "ry")
		if err != nil {
			return nil, err
		}
		_, hasRx := e.Get("rx")
		_, hasRy := e.Get("ry")
		if !hasRy { // a single radius applies to both axis
			v[5] = v[4]
		} else if !hasRx {
			v[4] = v[5]
		}
		if v[2] <= 0 || v[3] <= 0 {
			return nil, nil
		}
		return roundRect(v[0], v[1], v[0]+v[2], v[1]+v[3], v[4], v[5]), nil
	case "circle", "ellipse":
		v, err := nums("cx", "cy", "r", "rx", "ry")
		if err != nil {
			return nil, err
		}
		rx, ry := v[3], v[4]
		if e.Tag == "circle" {
			rx, ry = v[2], v[2]
		}
		if rx <= 0 || ry <= 0 { // not drawn, but not an error
			return nil, nil
		}
		return ellipse(v[0], v[1], rx, ry), nil
	case "line":
		v, err := nums("x1", "y1", "x2", "y2")
		if err != nil {
			return nil, err
		}
		return Path{}.MoveTo(v[0], v[1]).LineTo(v[2], v[3]), nil
	case "polyline", "polygon":
		attr, _ := e.Get("points")
		points, err := readPoints(attr)
		if err != nil {
			return nil, err
		}
		if len(points) < 4 {
			return nil, nil
		}
		p := Path{}.MoveTo(points[0], points[1])
		for i := 2; i+1 < len(points); i += 2 {
			p = p.LineTo(points[i], points[i+1])
		}
		if e.Tag == "polygon" {
			p = p.Close()
		}
		return p, nil
	case "path":
		d, _ := e.Get("d")
		return ParsePath(d)
	}
	return nil, nil
}

// ellipse returns the outline of an axis aligned ellipse,
// made of four cubic bezier curves.
func ellipse(cx, cy, rx, ry float64) Path {
	kx, ky := rx*kappa, ry*kappa
	return Path{}.MoveTo(cx+rx, cy).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		Close()
}

// roundRect returns the outline of a rectangle with corners
// of radius rx in the x axis and ry in the y axis.
func roundRect(minX, minY, maxX, maxY, rx, ry float64) Path {
	if rx <= 0 || ry <= 0 {
		return Path{}.MoveTo(minX, minY).LineTo(maxX, minY).LineTo(maxX, maxY).LineTo(minX, maxY).Close()
	}
	if w := maxX - minX; w < rx*2 {
		rx = w / 2
	}
	if h := maxY - minY; h < ry*2 {
		ry = h / 2
	}
	kx, ky := rx*(1-kappa), ry*(1-kappa)
	return Path{}.MoveTo(minX+rx, minY).
		LineTo(maxX-rx, minY).
		CubicTo(maxX-kx, minY, maxX, minY+ky, maxX, minY+ry).
		LineTo(maxX, maxY-ry).
		CubicTo(maxX, maxY-ky, maxX-kx, maxY, maxX-rx, maxY).
		LineTo(minX+rx, maxY).
		CubicTo(minX+kx, maxY, minX, maxY-ky, minX, maxY-ry).
		LineTo(minX, minY+ry).
		CubicTo(minX, minY+ky, minX+kx, minY, minX+rx, minY).
		Close()
}

// addArc adds an arc to the path p
func (p *Path) addArc(points []float64, cx, cy, px, py float64) (lx, ly float64) {
	rotX := points[2] * math.Pi / 180 // Convert degress to radians
	largeArc := points[3] != 0
	sweep := points[4] != 0
	startAngle := math.Atan2(py-cy, px-cx) - rotX
	endAngle := math.Atan2(points[6]-cy, points[5]-cx) - rotX
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	// Approximate ellipse using cubic bezeir splines
	etaStart := math.Atan2(math.Sin(startAngle)/points[1], math.Cos(startAngle)/points[0])
	etaEnd := math.Atan2(math.Sin(endAngle)/points[1], math.Cos(endAngle)/points[0])
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// This check might be needed if the center point of the elipse is
	// at the midpoint of the start and end lines.
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// Round up to determine number of cubic splines to approximate bezier curve
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly = px, py
	sinTheta, cosTheta := math.Sin(rotX), math.Cos(rotX)
	ldx, ldy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		var px, py float64
		if i == segs {
			px, py = points[5], points[6] // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(points[0], points[1], sinTheta, cosTheta, eta, cx, cy)
		}
		dx, dy := ellipsePrime(points[0], points[1], sinTheta, cosTheta, eta)
		*p = p.CubicTo(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	return lx, ly
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

// findEllipseCenter locates the center of the Ellipse if it exists. If it does not exist,
// the radius values will be increased minimally for a solution to be possible
// while preserving the ra to rb ratio.  ra and rb arguments are pointers that can be
// checked after the call to see if the values changed.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	cos, sin := math.Cos(rotX), math.Sin(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra // Now the ellipse is a circle radius rb; therefore foci and center coincide

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit.
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// Notice that if hr is zero, both answers are the same.
	if (sweep && smallArc) || (!sweep && !smallArc) {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	//Reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
