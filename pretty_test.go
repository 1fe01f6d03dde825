// Copyright 2023 The okvector Authors. All rights reserved.

package okvector_test

import (
	"strings"
	"testing"

	. "github.com/raykov/okvector"
)

func TestPrettyXML(t *testing.T) {
	got := PrettyXML(testRectVector)
	want := `<vector xmlns:android="http://schemas.android.com/apk/res/android" ` +
		`android:width="24dp" android:height="24dp" android:viewportWidth="24" android:viewportHeight="24">` + "\n" +
		`    <path android:pathData="M2,2 L12,2 L12,12 L2,12 Z" android:fillColor="#000000"/>` + "\n" +
		`</vector>`
	if got != want {
		t.Errorf("pretty output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyXMLManyPaths(t *testing.T) {
	got := PrettyXML(`<vector a="1"><path b="2"/><path c="3"/></vector>`)
	lines := strings.Split(got, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), got)
	}
	for _, l := range lines[1:3] {
		if !strings.HasPrefix(l, "    <path") {
			t.Errorf("path line not indented: %q", l)
		}
	}
	if lines[3] != "</vector>" {
		t.Errorf("closing tag must sit at column zero: %q", lines[3])
	}
}

func TestPrettyXMLSingleLine(t *testing.T) {
	if got := PrettyXML("<vector/>"); got != "<vector/>" {
		t.Errorf("nothing to split, got %q", got)
	}
}
