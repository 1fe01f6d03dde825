// Copyright 2023 The okvector Authors. All rights reserved.

package okvector_test

import (
	"strings"
	"testing"

	. "github.com/raykov/okvector"
)

const testRectSVG = `<svg viewBox="0 0 24 24"><rect x="2" y="2" width="10" height="10"/></svg>`

const testRectVector = `<vector xmlns:android="http://schemas.android.com/apk/res/android" ` +
	`android:width="24dp" android:height="24dp" android:viewportWidth="24" android:viewportHeight="24">` +
	`<path android:pathData="M2,2 L12,2 L12,12 L2,12 Z" android:fillColor="#000000"/></vector>`

func TestConvertRect(t *testing.T) {
	got, err := Convert(testRectSVG, Options{DefaultFill: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if got != testRectVector {
		t.Errorf("converted vector = %q, want %q", got, testRectVector)
	}
}

func TestConvertInvalidRoot(t *testing.T) {
	if _, err := Convert(`<notsvg/>`, Options{}); err == nil {
		t.Error("a non-svg root must fail the conversion")
	}
	if _, err := Convert(``, Options{}); err == nil {
		t.Error("an empty document must fail the conversion")
	}
}

func TestConvertNestedGroups(t *testing.T) {
	src := `<svg><g><rect width="4" height="4"/><g><circle cx="2" cy="2" r="1"/></g></g></svg>`
	d, err := Transcode(strings.NewReader(src), Options{DefaultFill: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 2 {
		t.Fatalf("flattened walk produced %d entries, want 2", len(d.Paths))
	}
	if !strings.HasPrefix(d.Paths[0].Data, "M0,0 L4,0") {
		t.Errorf("rect must come before circle, got %q first", d.Paths[0].Data)
	}
	if !strings.Contains(d.Paths[1].Data, "A1,1") {
		t.Errorf("second entry should be the circle, got %q", d.Paths[1].Data)
	}
}

func TestConvertSkipsUnsupported(t *testing.T) {
	// Unsupported elements are skipped without recursing into them.
	src := `<svg><defs><rect width="4" height="4"/></defs><text>hi</text></svg>`
	d, err := Transcode(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 0 {
		t.Errorf("unsupported subtrees must not contribute entries, got %d", len(d.Paths))
	}
}

func TestConvertStrictMode(t *testing.T) {
	src := `<svg><text>hi</text></svg>`
	if _, err := Transcode(strings.NewReader(src), Options{ErrorMode: StrictErrorMode}); err == nil {
		t.Error("strict mode must reject unsupported elements")
	}
}

func TestConvertNestedSvgRecurses(t *testing.T) {
	src := `<svg><svg><line x2="4" y2="4"/></svg></svg>`
	d, err := Transcode(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 1 {
		t.Fatalf("nested svg containers must flatten, got %d entries", len(d.Paths))
	}
}

func TestConvertDropsEmptyPaths(t *testing.T) {
	src := `<svg><polygon points="5,5"/><path/><rect width="2" height="2"/></svg>`
	d, err := Transcode(strings.NewReader(src), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Paths) != 1 {
		t.Fatalf("empty path data must be dropped, got %d entries", len(d.Paths))
	}
}

func TestConvertStroke(t *testing.T) {
	src := `<svg><line x2="4" y2="4" stroke="red" stroke-width="2"/></svg>`
	got, err := Convert(src, Options{DefaultFill: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	want := `<path android:pathData="M0,0 L4,4" android:fillColor="#000000" ` +
		`android:strokeColor="#ff0000" android:strokeWidth="2"/>`
	if !strings.Contains(got, want) {
		t.Errorf("stroke emission wrong:\n%s", got)
	}
}

func TestConvertStrokeWidthNeedsStroke(t *testing.T) {
	src := `<svg><line x2="4" y2="4" stroke-width="2"/></svg>`
	got, err := Convert(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "strokeWidth") {
		t.Errorf("strokeWidth without a stroke color must be omitted:\n%s", got)
	}
}

func TestConvertFillNoneOmitted(t *testing.T) {
	src := `<svg><rect width="2" height="2" fill="none"/></svg>`
	got, err := Convert(src, Options{DefaultFill: "#000000"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "fillColor") {
		t.Errorf("explicit fill=none must suppress fillColor:\n%s", got)
	}
}

func TestViewportFromDimensions(t *testing.T) {
	d, err := Transcode(strings.NewReader(`<svg width="100" height="50"/>`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Viewport.ViewportWidth != 100 || d.Viewport.ViewportHeight != 50 {
		t.Errorf("viewport = %v, want 100x50", d.Viewport)
	}
}

func TestViewportViewBoxWins(t *testing.T) {
	d, err := Transcode(strings.NewReader(`<svg width="100" height="50" viewBox="0 0 24 24"/>`), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if d.Viewport.ViewportWidth != 24 || d.Viewport.ViewportHeight != 24 {
		t.Errorf("viewBox must win over width/height, got %v", d.Viewport)
	}
}

func TestViewportCallerFallback(t *testing.T) {
	d, err := Transcode(strings.NewReader(`<svg/>`), Options{Width: "48", Height: "48"})
	if err != nil {
		t.Fatal(err)
	}
	if d.Viewport.ViewportWidth != 48 || d.Viewport.ViewportHeight != 48 {
		t.Errorf("caller dimensions must be the last fallback, got %v", d.Viewport)
	}
}

func TestDimensionDefaults(t *testing.T) {
	got, err := Convert(`<svg/>`, Options{Width: "wide", Height: ""})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `android:width="24dp"`) || !strings.Contains(got, `android:height="24dp"`) {
		t.Errorf("non-numeric dimensions must default to 24dp:\n%s", got)
	}
}

func TestConvertFile(t *testing.T) {
	got, err := ConvertFile("testdata/shapes.svg", Options{DefaultFill: "#000000", Pretty: true})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `android:viewportWidth="24"`) {
		t.Errorf("fixture viewport missing:\n%s", got)
	}
	if strings.Count(got, "<path ") != 4 {
		t.Errorf("fixture should convert to 4 paths:\n%s", got)
	}
}
