// Copyright 2023 The okvector Authors. All rights reserved.

// preview.go reconstructs a minimal SVG fragment from previously
// emitted vector drawable XML, so a drawable can be shown with any
// plain SVG renderer.

package okvector

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

type previewPath struct {
	data, fill, stroke, strokeWidth string
}

// Preview extracts the viewport and path entries from vector drawable
// XML and rebuilds an equivalent SVG fragment. Extraction is
// structural, one attribute at a time, so attribute order in the
// input does not matter. Missing attributes are simply omitted from
// the output; the viewport defaults to 24.
func Preview(vectorXML string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(vectorXML))
	decoder.CharsetReader = charset.NewReaderLabel
	vw, vh := "24", "24"
	var paths []previewPath
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "vector":
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "viewportWidth":
					vw = attr.Value
				case "viewportHeight":
					vh = attr.Value
				}
			}
		case "path":
			var p previewPath
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "pathData":
					p.data = attr.Value
				case "fillColor":
					p.fill = attr.Value
				case "strokeColor":
					p.stroke = attr.Value
				case "strokeWidth":
					p.strokeWidth = attr.Value
				}
			}
			if p.data != "" {
				paths = append(paths, p)
			}
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<svg viewBox="0 0 %s %s">`, vw, vh)
	for _, p := range paths {
		fmt.Fprintf(&b, `<path d="%s"`, attrEscaper.Replace(p.data))
		if p.fill != "" {
			fmt.Fprintf(&b, ` fill="%s"`, attrEscaper.Replace(p.fill))
		}
		if p.stroke != "" {
			fmt.Fprintf(&b, ` stroke="%s"`, attrEscaper.Replace(p.stroke))
			if p.strokeWidth != "" {
				fmt.Fprintf(&b, ` stroke-width="%s"`, attrEscaper.Replace(p.strokeWidth))
			}
		}
		b.WriteString("/>")
	}
	b.WriteString("</svg>")
	return b.String(), nil
}
