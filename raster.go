// Copyright 2023 The okvector Authors. All rights reserved.

package okvector

import (
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize renders an SVG fragment, such as the one Preview
// produces, into a w by h RGBA image. The preview collaborator owns
// putting the image on screen; this only draws it.
func Rasterize(svg string, w, h int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(strings.NewReader(svg))
	if err != nil {
		return nil, err
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return img, nil
}
