// Copyright 2023 The okvector Authors. All rights reserved.

// style.go resolves the paint attributes of a single shape element.
// Only the element's own attributes are consulted; paint does not
// inherit from enclosing groups.

package okvector

import (
	"regexp"
	"strings"
)

type paintState uint8

const (
	paintUnset paintState = iota // nothing declared, caller default may apply
	paintNone                    // explicit none/transparent, suppress on output
	paintColor
)

// Paint is a three-state optional color: unset, explicitly none, or a
// color value. Collapsing none and unset would break the default-fill
// fallback, so both states are kept distinct.
type Paint struct {
	val   string
	state paintState
}

// Color returns the paint value; only meaningful when Ok reports true.
func (p Paint) Color() string { return p.val }

// Ok reports whether the paint carries a color to emit.
func (p Paint) Ok() bool { return p.state == paintColor }

// None reports whether the paint was declared none or transparent.
func (p Paint) None() bool { return p.state == paintNone }

// ShapeStyle is the resolved paint of one shape element.
type ShapeStyle struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth string
}

var (
	styleFillRe        = regexp.MustCompile(`fill\s*:\s*([^;]+)`)
	styleStrokeRe      = regexp.MustCompile(`stroke\s*:\s*([^;]+)`)
	styleStrokeWidthRe = regexp.MustCompile(`stroke-width\s*:\s*([^;]+)`)
)

// ResolveStyle extracts fill, stroke and stroke-width for one shape.
// A presentation attribute wins over the same property inside the
// style attribute; only the first occurrence inside style counts.
// When neither declares a fill the caller's default applies; stroke
// and stroke-width simply stay unset.
func ResolveStyle(attrs map[string]string, defaultFill string) ShapeStyle {
	st := ShapeStyle{
		Fill:   resolvePaint(attrs, "fill", styleFillRe),
		Stroke: resolvePaint(attrs, "stroke", styleStrokeRe),
	}
	if st.Fill.state == paintUnset && defaultFill != "" {
		st.Fill = Paint{val: NormalizeColor(defaultFill), state: paintColor}
	}
	if w, ok := lookupProp(attrs, "stroke-width", styleStrokeWidthRe); ok {
		w = strings.TrimSpace(w)
		if w != "none" && w != "transparent" {
			st.StrokeWidth = w
		}
	}
	return st
}

func resolvePaint(attrs map[string]string, name string, re *regexp.Regexp) Paint {
	v, ok := lookupProp(attrs, name, re)
	if !ok {
		return Paint{}
	}
	v = strings.TrimSpace(v)
	if v == "none" || v == "transparent" {
		return Paint{state: paintNone}
	}
	return Paint{val: NormalizeColor(v), state: paintColor}
}

func lookupProp(attrs map[string]string, name string, re *regexp.Regexp) (string, bool) {
	if v, ok := attrs[name]; ok {
		return v, true
	}
	if m := re.FindStringSubmatch(attrs["style"]); m != nil {
		return m[1], true
	}
	return "", false
}
