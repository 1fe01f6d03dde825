// Copyright 2023 The okvector Authors. All rights reserved.

package okvector

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// NormalizeColor rewrites an SVG color into the #rrggbb form the
// drawable format accepts. It handles all SVG 1.1 color names via the
// colornames package, #abc shorthand and rgb(r,g,b) with plain or
// percent components. Anything it cannot make sense of is returned
// verbatim rather than rejected.
func NormalizeColor(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if cn, ok := colornames.Map[v]; ok {
		return fmt.Sprintf("#%02x%02x%02x", cn.R, cn.G, cn.B)
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return s
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return s
		}
		return "#" + hex
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		vals := strings.Split(v[4:len(v)-1], ",")
		if len(vals) != 3 {
			return s
		}
		var cvals [3]uint8
		for i := range cvals {
			c, err := parseColorValue(vals[i])
			if err != nil {
				return s
			}
			cvals[i] = c
		}
		return fmt.Sprintf("#%02x%02x%02x", cvals[0], cvals[1], cvals[2])
	}
	return s
}

func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(v[:len(v)-1]))
		if err != nil {
			return 0, err
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}
