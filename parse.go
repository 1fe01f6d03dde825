// Copyright 2023 The okvector Authors. All rights reserved.

package okvector

import (
	"encoding/xml"
	"errors"
	"io"
	"log"

	"golang.org/x/net/html/charset"
)

type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported elements and keeps going.
	WarnErrorMode
	// StrictErrorMode fails the conversion on the first unsupported element.
	StrictErrorMode
)

func (m ErrorMode) handle(msg string) error {
	switch m {
	case WarnErrorMode:
		log.Println(msg)
	case StrictErrorMode:
		return errors.New(msg)
	}
	return nil
}

var errNotSvg = errors.New("root element is not svg")

// Element is a node of the parsed source document: local tag name,
// attribute map and children in document order. The tree is built once
// per conversion and read-only afterwards.
type Element struct {
	Tag      string
	Attrs    map[string]string
	Children []*Element
}

// ParseSVG builds the element tree for an SVG document. The root
// element must be svg; anything else fails the whole conversion.
// Character data, comments and processing instructions are discarded,
// only element structure and attributes are kept.
func ParseSVG(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		root  *Element
		stack []*Element
	)
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := &Element{Tag: se.Name.Local, Attrs: make(map[string]string, len(se.Attr))}
			for _, attr := range se.Attr {
				el.Attrs[attr.Name.Local] = attr.Value
			}
			if root == nil {
				if el.Tag != "svg" {
					return nil, errNotSvg
				}
				root = el
			} else if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if root == nil {
		return nil, errNotSvg
	}
	return root, nil
}
