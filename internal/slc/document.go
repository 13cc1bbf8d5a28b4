// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slc reads SLC level collections: XML documents holding Sokoban
// levels as Level elements with an Id attribute and one child element per
// board row. It lists level identifiers and selects a single level by Id.
package slc

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"golang.org/x/net/html/charset"
)

// Element and attribute names of the SLC format.
const (
	LevelElement = "Level"
	IDAttr       = "Id"
)

// Node is one element of a parsed document. Text holds the character data
// that precedes the first child element and is nil when there is none.
// Names in a namespace, for elements and attributes alike, are keyed as
// "{namespace}local"; namespace declarations are not kept as attributes.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     *string
	Children []*Node
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// TextOr returns the element text, or def when the element has none.
func (n *Node) TextOr(def string) string {
	if n.Text == nil {
		return def
	}
	return *n.Text
}

// walk visits n and its descendants in document order.
func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Document is a parsed SLC file. It is read-only once returned by Parse.
type Document struct {
	Path string
	Root *Node
}

// Levels yields every Level element at any depth, in document order.
func (d *Document) Levels() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if d.Root == nil {
			return
		}
		d.Root.walk(func(n *Node) bool {
			if n.Name != LevelElement {
				return true
			}
			return yield(n)
		})
	}
}

// ParseFile reads and parses the SLC file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	root, err := decode(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return &Document{Path: path, Root: root}, nil
}

// Parse parses an SLC document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := decode(r)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Document{Root: root}, nil
}

var utf8BOM = []byte("\xef\xbb\xbf")

// decode builds the element tree from the token stream. Comments,
// processing instructions and directives are dropped.
func decode(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)
	d.CharsetReader = charset.NewReaderLabel

	var root *Node
	var stack []*Node
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: qualified(t.Name)}
			for _, a := range t.Attr {
				if isNamespaceDecl(a.Name) {
					continue
				}
				if n.Attrs == nil {
					n.Attrs = make(map[string]string, len(t.Attr))
				}
				n.Attrs[qualified(a.Name)] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					line, _ := d.InputPos()
					return nil, fmt.Errorf("line %d: more than one root element", line)
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(bytes.TrimPrefix(t, utf8BOM))) > 0 {
					line, _ := d.InputPos()
					return nil, fmt.Errorf("line %d: text outside the root element", line)
				}
				continue
			}
			n := stack[len(stack)-1]
			if len(n.Children) > 0 {
				continue
			}
			s := string(t)
			if n.Text != nil {
				s = *n.Text + s
			}
			n.Text = &s
		}
	}

	if root == nil {
		return nil, errors.New("no root element")
	}
	return root, nil
}

// qualified names an element or attribute as "{namespace}local" when it is
// in a namespace and by its bare local name otherwise.
func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}

func isNamespaceDecl(n xml.Name) bool {
	return n.Space == "xmlns" || (n.Space == "" && n.Local == "xmlns")
}
