// Package tree projects a parsed document set into an immutable tree of
// renderable nodes with short labels, truncated previews, and on-demand
// full-text detail.
package tree

import (
	"fmt"
	"strconv"

	"jsonlens/internal/jsondoc"

	"github.com/creachadair/jtree/ast"
)

// DefaultTruncateLimit is the preview length cap, in characters.
const DefaultTruncateLimit = 500

// Kind identifies the shape of the value behind a node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
	KindError // a line that failed to decode
)

// A Node is one renderable unit of the projected tree. Nodes are built once
// and never mutated; collapse/expand state belongs to the rendering layer.
type Node struct {
	// Label is the short, single-line display text.
	Label string
	Kind  Kind
	// Expandable reports whether the underlying value can carry children:
	// objects, arrays, and line-error records.
	Expandable bool
	// FullValue holds the untruncated text of a string leaf whose preview
	// was shortened. Empty for everything else.
	FullValue string
	// Path locates the node structurally within the document set, in the
	// usual $.key[index] form.
	Path     string
	Children []*Node
}

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Project builds the display tree for a document set: a synthetic root with
// one child per document, in document order. Projection is total: every
// document the parser can produce has a defined label and child set, and an
// empty set yields a childless root rather than an error.
func Project(docs []jsondoc.Document, limit int) *Node {
	root := &Node{Label: "JSON Data", Kind: KindArray, Expandable: true, Path: "$"}
	for i, doc := range docs {
		path := fmt.Sprintf("$[%d]", i)
		switch d := doc.(type) {
		case jsondoc.Parsed:
			root.Children = append(root.Children, newValueNode(fmt.Sprintf("[%d]: ", i), d.Value, path, limit))
		case jsondoc.LineError:
			root.Children = append(root.Children, newErrorNode(i, d, path, limit))
		}
	}
	return root
}

// newErrorNode renders a failed line as an inspectable node: the original
// text and the decoder message, and nothing to descend into beyond those.
func newErrorNode(index int, e jsondoc.LineError, path string, limit int) *Node {
	raw := &Node{
		Label: "Original text: " + Truncate(e.Raw, limit),
		Kind:  KindString,
		Path:  path + ".raw",
	}
	if len([]rune(e.Raw)) > limit {
		raw.FullValue = e.Raw
	}
	msg := &Node{
		Label: "Error: " + e.Message,
		Kind:  KindString,
		Path:  path + ".error",
	}
	return &Node{
		Label:      fmt.Sprintf("[%d]: Line %d: Parsing Error", index, e.Line),
		Kind:       KindError,
		Expandable: true,
		Path:       path,
		Children:   []*Node{raw, msg},
	}
}

// newValueNode builds the node for v, labeled with the given heading prefix
// (a "key: " or "[i]: " fragment), and recurses into containers.
func newValueNode(heading string, v ast.Value, path string, limit int) *Node {
	n := &Node{
		Label:      heading + Preview(v, limit),
		Kind:       kindOf(v),
		Expandable: expandable(v),
		Path:       path,
	}
	if s, ok := v.(*ast.String); ok {
		if text := string(s.Unquote()); len([]rune(text)) > limit {
			n.FullValue = text
		}
	}
	switch t := v.(type) {
	case *ast.Object:
		for _, m := range t.Members {
			key := string(m.Key.Unquote())
			n.Children = append(n.Children, newValueNode(key+": ", m.Value, memberPath(path, key), limit))
		}
	case *ast.Array:
		for i, el := range t.Values {
			n.Children = append(n.Children, newValueNode(fmt.Sprintf("[%d]: ", i), el, fmt.Sprintf("%s[%d]", path, i), limit))
		}
	}
	return n
}

// Preview returns the short display form of a value: strings verbatim up to
// limit characters, container placeholders regardless of size, and the
// source token text for the remaining scalars.
func Preview(v ast.Value, limit int) string {
	switch t := v.(type) {
	case *ast.Object:
		return "{...}"
	case *ast.Array:
		return "[...]"
	case *ast.String:
		return Truncate(string(t.Unquote()), limit)
	case ast.Datum:
		// null, true/false, and numbers keep their input spelling.
		return t.Text()
	default:
		return ""
	}
}

// Truncate shortens s to limit characters (runes, not bytes), appending an
// ellipsis marker. Strings at or under the limit come back unchanged, so
// re-truncating a short string is a no-op.
func Truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func kindOf(v ast.Value) Kind {
	switch v.(type) {
	case *ast.Object:
		return KindObject
	case *ast.Array:
		return KindArray
	case *ast.String:
		return KindString
	case *ast.Integer, *ast.Number:
		return KindNumber
	case *ast.Bool:
		return KindBool
	default:
		return KindNull
	}
}

func expandable(v ast.Value) bool {
	switch v.(type) {
	case *ast.Object, *ast.Array:
		return true
	}
	return false
}

// memberPath appends an object key to a path, quoting keys that would not
// read cleanly in dotted form.
func memberPath(parent, key string) string {
	if isBareKey(key) {
		return parent + "." + key
	}
	return parent + "[" + strconv.Quote(key) + "]"
}

func isBareKey(key string) bool {
	if key == "" {
		return false
	}
	for i, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
