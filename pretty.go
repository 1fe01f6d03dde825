// Copyright 2023 The okvector Authors. All rights reserved.

package okvector

import "strings"

const indentUnit = "    "

// PrettyXML re-indents a flat XML string, one element per line. The
// depth of a line is counted from that line alone: opening tags found
// on it, minus one when it starts with a closing tag, floored at
// zero. For the documents Encode produces this agrees with the real
// nesting depth.
func PrettyXML(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "><", ">\n<"), "\n")
	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
			depth := strings.Count(line, "<") - strings.Count(line, "</")
			if strings.HasPrefix(line, "</") {
				depth--
			}
			if depth > 0 {
				b.WriteString(strings.Repeat(indentUnit, depth))
			}
		}
		b.WriteString(line)
	}
	return b.String()
}
