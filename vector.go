// Copyright 2023 The okvector Authors. All rights reserved.

package okvector

import (
	"fmt"
	"strings"
)

const androidNS = "http://schemas.android.com/apk/res/android"

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Encode emits the drawable as a single flat XML string. Per-path
// attribute order is fixed: pathData, fillColor, strokeColor,
// strokeWidth; strokeWidth is only written alongside a stroke color.
// Entries with empty path data are skipped.
func (d *Drawable) Encode() string {
	var b strings.Builder
	fmt.Fprintf(&b, `<vector xmlns:android=%q android:width="%sdp" android:height="%sdp" android:viewportWidth="%s" android:viewportHeight="%s">`,
		androidNS,
		d.Viewport.Width, d.Viewport.Height,
		fnum(d.Viewport.ViewportWidth), fnum(d.Viewport.ViewportHeight))
	for _, p := range d.Paths {
		if p.Data == "" {
			continue
		}
		fmt.Fprintf(&b, `<path android:pathData="%s"`, attrEscaper.Replace(p.Data))
		if p.Fill.Ok() {
			fmt.Fprintf(&b, ` android:fillColor="%s"`, attrEscaper.Replace(p.Fill.Color()))
		}
		if p.Stroke.Ok() {
			fmt.Fprintf(&b, ` android:strokeColor="%s"`, attrEscaper.Replace(p.Stroke.Color()))
			if p.StrokeWidth != "" {
				fmt.Fprintf(&b, ` android:strokeWidth="%s"`, attrEscaper.Replace(p.StrokeWidth))
			}
		}
		b.WriteString("/>")
	}
	b.WriteString("</vector>")
	return b.String()
}
