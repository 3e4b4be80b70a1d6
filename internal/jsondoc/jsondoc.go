// Package jsondoc classifies a raw text blob as a single JSON document or a
// JSON-Lines stream and decodes it into an ordered sequence of documents.
//
// Object member order is preserved by the underlying jtree parser, so the
// decoded values can be displayed in source order without extra bookkeeping.
package jsondoc

import (
	"strings"

	"github.com/creachadair/jtree/ast"
)

// A Document is one top-level unit of input: either a successfully decoded
// JSON value or a line that failed to decode in line-oriented mode.
type Document interface{ isDocument() }

// Parsed is a document whose value decoded successfully.
type Parsed struct {
	Value ast.Value
}

// LineError records a line that failed to decode as an independent JSON
// value. Line numbers are 1-based and count every physical line of the
// original input, including blank ones, matching what a text editor shows.
type LineError struct {
	Line    int
	Raw     string
	Message string
}

func (Parsed) isDocument()    {}
func (LineError) isDocument() {}

// Parse turns raw input into an ordered sequence of documents.
//
// Whole-input decoding wins: if raw is exactly one JSON value (object,
// array, or scalar), the result is that single document and line splitting
// is never attempted. Otherwise the input is treated as JSON Lines:
// whitespace-only lines are skipped silently, and a line that fails to
// decode becomes a LineError record carrying the decoder's message
// verbatim, so one bad line never invalidates its siblings.
//
// Parse never fails. Input with no decodable content (e.g. only blank
// lines) yields an empty set; how to present "no data" is the caller's
// decision.
func Parse(raw string) []Document {
	if v, err := ast.ParseSingle(strings.NewReader(raw)); err == nil {
		return []Document{Parsed{Value: v}}
	}

	var docs []Document
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		// ParseSingle rejects both empty lines and trailing data, so a line
		// holding two values is an error, not two documents.
		v, err := ast.ParseSingle(strings.NewReader(line))
		if err != nil {
			docs = append(docs, LineError{Line: i + 1, Raw: line, Message: err.Error()})
			continue
		}
		docs = append(docs, Parsed{Value: v})
	}
	return docs
}
