// Copyright 2023 The okvector Authors. All rights reserved.

// shapes.go translates SVG geometry primitives into pathData command
// strings as used by both the SVG d attribute and the vector drawable
// pathData attribute.

package okvector

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// fnum formats a coordinate without trailing zeros, so that 2.0
// prints as "2" the way hand-authored path data is written.
func fnum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// attrFloat reads a numeric attribute. Missing or unparseable values
// yield the fallback; geometry never fails, it degrades.
func attrFloat(attrs map[string]string, name string, fallback float64) float64 {
	v, ok := attrs[name]
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// RectPath converts a rect element to path data. A rect with zero
// corner radii becomes a four corner closed polygon; a rounded rect
// becomes eight segments alternating straight edges and quadratic
// corners. Oversized radii are passed through as-is.
func RectPath(attrs map[string]string) string {
	x := attrFloat(attrs, "x", 0)
	y := attrFloat(attrs, "y", 0)
	w := attrFloat(attrs, "width", 0)
	h := attrFloat(attrs, "height", 0)
	rx := attrFloat(attrs, "rx", 0)
	ry := attrFloat(attrs, "ry", rx)
	if rx == 0 && ry == 0 {
		return fmt.Sprintf("M%s,%s L%s,%s L%s,%s L%s,%s Z",
			fnum(x), fnum(y),
			fnum(x+w), fnum(y),
			fnum(x+w), fnum(y+h),
			fnum(x), fnum(y+h))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", fnum(x+rx), fnum(y))
	fmt.Fprintf(&b, " L%s,%s", fnum(x+w-rx), fnum(y))
	fmt.Fprintf(&b, " Q%s,%s %s,%s", fnum(x+w), fnum(y), fnum(x+w), fnum(y+ry))
	fmt.Fprintf(&b, " L%s,%s", fnum(x+w), fnum(y+h-ry))
	fmt.Fprintf(&b, " Q%s,%s %s,%s", fnum(x+w), fnum(y+h), fnum(x+w-rx), fnum(y+h))
	fmt.Fprintf(&b, " L%s,%s", fnum(x+rx), fnum(y+h))
	fmt.Fprintf(&b, " Q%s,%s %s,%s", fnum(x), fnum(y+h), fnum(x), fnum(y+h-ry))
	fmt.Fprintf(&b, " L%s,%s", fnum(x), fnum(y+ry))
	fmt.Fprintf(&b, " Q%s,%s %s,%s", fnum(x), fnum(y), fnum(x+rx), fnum(y))
	b.WriteString(" Z")
	return b.String()
}

// CirclePath converts a circle element to two 180 degree arcs, from
// (cx-r, cy) to (cx+r, cy) and back.
func CirclePath(attrs map[string]string) string {
	cx := attrFloat(attrs, "cx", 0)
	cy := attrFloat(attrs, "cy", 0)
	r := attrFloat(attrs, "r", 0)
	return arcPairPath(cx, cy, r, r)
}

// EllipsePath converts an ellipse element, same two-arc construction
// as CirclePath with independent radii.
func EllipsePath(attrs map[string]string) string {
	cx := attrFloat(attrs, "cx", 0)
	cy := attrFloat(attrs, "cy", 0)
	rx := attrFloat(attrs, "rx", 0)
	ry := attrFloat(attrs, "ry", 0)
	return arcPairPath(cx, cy, rx, ry)
}

func arcPairPath(cx, cy, rx, ry float64) string {
	return fmt.Sprintf("M%s,%s A%s,%s 0 1 0 %s,%s A%s,%s 0 1 0 %s,%s",
		fnum(cx-rx), fnum(cy),
		fnum(rx), fnum(ry), fnum(cx+rx), fnum(cy),
		fnum(rx), fnum(ry), fnum(cx-rx), fnum(cy))
}

// LinePath converts a line element to a single move and line pair,
// left open.
func LinePath(attrs map[string]string) string {
	x1 := attrFloat(attrs, "x1", 0)
	y1 := attrFloat(attrs, "y1", 0)
	x2 := attrFloat(attrs, "x2", 0)
	y2 := attrFloat(attrs, "y2", 0)
	return fmt.Sprintf("M%s,%s L%s,%s", fnum(x1), fnum(y1), fnum(x2), fnum(y2))
}

// PolygonPath converts a polygon element to a closed polyline path.
// Fewer than two coordinate pairs yields an empty string.
func PolygonPath(attrs map[string]string) string {
	p := polyPath(attrs)
	if p == "" {
		return ""
	}
	return p + " Z"
}

// PolylinePath converts a polyline element; same as PolygonPath but
// the path is not closed.
func PolylinePath(attrs map[string]string) string {
	return polyPath(attrs)
}

func polyPath(attrs map[string]string) string {
	pts := splitPoints(attrs["points"])
	if len(pts) < 4 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M%s,%s", fnum(pts[0]), fnum(pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		fmt.Fprintf(&b, " L%s,%s", fnum(pts[i]), fnum(pts[i+1]))
	}
	return b.String()
}

// splitPoints tokenizes a points attribute on whitespace and commas.
// Non-numeric tokens degrade to 0 like every other numeric attribute.
func splitPoints(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	pts := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			v = 0
		}
		pts[i] = v
	}
	return pts
}
