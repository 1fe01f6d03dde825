// Copyright 2023 The okvector Authors. All rights reserved.

// The okvector package converts a subset of SVG into Android vector
// drawable XML and back again for preview. It understands the basic
// geometry elements (path, rect, circle, ellipse, line, polygon,
// polyline), flattens groups and nested svg containers, and resolves
// fill/stroke from presentation attributes or an inline style
// attribute. Transforms, gradients, clip paths and text are not
// supported; unsupported elements are skipped, logged or rejected
// depending on the ErrorMode.

package okvector

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// Options is the caller-owned conversion surface.
type Options struct {
	Width       string    // target width in dp, "24" when unset or non-numeric
	Height      string    // target height in dp
	DefaultFill string    // fill applied to shapes that declare none, e.g. "#000000"
	Pretty      bool      // re-indent the emitted XML
	ErrorMode   ErrorMode // what to do with unsupported elements
}

// PathEntry is one converted shape of the output document.
type PathEntry struct {
	Data        string
	Fill        Paint
	Stroke      Paint
	StrokeWidth string
}

// Viewport carries the drawable sizing: dp dimensions from the caller
// and the coordinate space taken from the source document.
type Viewport struct {
	Width, Height                 string
	ViewportWidth, ViewportHeight float64
}

// Drawable is the converted document, held by the caller until the
// next conversion supersedes it.
type Drawable struct {
	Viewport Viewport
	Paths    []PathEntry
}

// Convert transcodes an SVG document into vector drawable XML.
func Convert(svg string, opts Options) (string, error) {
	d, err := Transcode(strings.NewReader(svg), opts)
	if err != nil {
		return "", err
	}
	out := d.Encode()
	if opts.Pretty {
		out = PrettyXML(out)
	}
	return out, nil
}

// ConvertFile reads the named SVG file and converts it.
func ConvertFile(name string, opts Options) (string, error) {
	fin, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer fin.Close()
	d, err := Transcode(fin, opts)
	if err != nil {
		return "", err
	}
	out := d.Encode()
	if opts.Pretty {
		out = PrettyXML(out)
	}
	return out, nil
}

// Transcode parses an SVG stream and walks it into a Drawable. Each
// call is independent; nothing is shared between conversions.
func Transcode(r io.Reader, opts Options) (*Drawable, error) {
	root, err := ParseSVG(r)
	if err != nil {
		return nil, err
	}
	d := &Drawable{Viewport: viewportOf(root, opts)}
	if err := walk(root, &opts, &d.Paths); err != nil {
		return nil, err
	}
	return d, nil
}

// walk flattens the tree depth-first in document order. Groups and
// nested svg containers recurse into the same accumulator, supported
// shapes append one entry each, everything else is skipped without
// recursion.
func walk(el *Element, opts *Options, acc *[]PathEntry) error {
	for _, child := range el.Children {
		switch child.Tag {
		case "g", "svg":
			if err := walk(child, opts, acc); err != nil {
				return err
			}
		case "path", "rect", "circle", "ellipse", "line", "polygon", "polyline":
			data := shapePath(child)
			if data == "" {
				continue
			}
			st := ResolveStyle(child.Attrs, opts.DefaultFill)
			*acc = append(*acc, PathEntry{
				Data:        data,
				Fill:        st.Fill,
				Stroke:      st.Stroke,
				StrokeWidth: st.StrokeWidth,
			})
		default:
			if err := opts.ErrorMode.handle("okvector: cannot process svg element <" + child.Tag + ">"); err != nil {
				return err
			}
		}
	}
	return nil
}

func shapePath(el *Element) string {
	switch el.Tag {
	case "path":
		return el.Attrs["d"]
	case "rect":
		return RectPath(el.Attrs)
	case "circle":
		return CirclePath(el.Attrs)
	case "ellipse":
		return EllipsePath(el.Attrs)
	case "line":
		return LinePath(el.Attrs)
	case "polygon":
		return PolygonPath(el.Attrs)
	case "polyline":
		return PolylinePath(el.Attrs)
	}
	return ""
}

// viewportOf derives the coordinate space with the usual fallback
// chain: viewBox, then the root width/height attributes, then the
// caller's dimensions.
func viewportOf(root *Element, opts Options) Viewport {
	vp := Viewport{
		Width:  dimension(opts.Width),
		Height: dimension(opts.Height),
	}
	vp.ViewportWidth, _ = strconv.ParseFloat(vp.Width, 64)
	vp.ViewportHeight, _ = strconv.ParseFloat(vp.Height, 64)
	if w, err := strconv.ParseFloat(strings.TrimSpace(root.Attrs["width"]), 64); err == nil {
		vp.ViewportWidth = w
	}
	if h, err := strconv.ParseFloat(strings.TrimSpace(root.Attrs["height"]), 64); err == nil {
		vp.ViewportHeight = h
	}
	if box := splitPoints(root.Attrs["viewBox"]); len(box) == 4 && box[2] != 0 && box[3] != 0 {
		vp.ViewportWidth = box[2]
		vp.ViewportHeight = box[3]
	}
	return vp
}

// dimension validates a caller-supplied dp size, falling back to 24
// when unset or non-numeric.
func dimension(s string) string {
	s = strings.TrimSpace(s)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return "24"
	}
	return s
}
