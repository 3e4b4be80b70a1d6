package jsondoc

import (
	"strings"
	"testing"

	"github.com/creachadair/jtree/ast"
)

func TestParse_WholeJSONWins(t *testing.T) {
	docs := Parse(`{"a": 1}`)
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	p, ok := docs[0].(Parsed)
	if !ok {
		t.Fatalf("expected Parsed document, got %T", docs[0])
	}
	obj, ok := p.Value.(*ast.Object)
	if !ok {
		t.Fatalf("expected object value, got %T", p.Value)
	}
	if len(obj.Members) != 1 || string(obj.Members[0].Key.Unquote()) != "a" {
		t.Fatalf("unexpected object members: %+v", obj.Members)
	}
}

func TestParse_WholeJSONScalar(t *testing.T) {
	cases := []string{`42`, `"hello"`, `true`, `null`, `3.25`}
	for _, in := range cases {
		docs := Parse(in)
		if len(docs) != 1 {
			t.Fatalf("Parse(%q): expected 1 document, got %d", in, len(docs))
		}
		if _, ok := docs[0].(Parsed); !ok {
			t.Fatalf("Parse(%q): expected Parsed, got %T", in, docs[0])
		}
	}
}

func TestParse_MultilineDocumentStaysSingle(t *testing.T) {
	// Pretty-printed JSON spans lines but is still one document; line mode
	// must never be attempted for it.
	in := "{\n  \"a\": [1, 2],\n  \"b\": {\"c\": true}\n}\n"
	docs := Parse(in)
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if _, ok := docs[0].(Parsed); !ok {
		t.Fatalf("expected Parsed, got %T", docs[0])
	}
}

func TestParse_PerLineIsolation(t *testing.T) {
	docs := Parse("{\"a\":1}\n{bad}\n{\"b\":2}")
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	if _, ok := docs[0].(Parsed); !ok {
		t.Fatalf("doc 0: expected Parsed, got %T", docs[0])
	}
	le, ok := docs[1].(LineError)
	if !ok {
		t.Fatalf("doc 1: expected LineError, got %T", docs[1])
	}
	if le.Line != 2 {
		t.Fatalf("doc 1: expected line 2, got %d", le.Line)
	}
	if le.Raw != "{bad}" {
		t.Fatalf("doc 1: expected raw text preserved, got %q", le.Raw)
	}
	if strings.TrimSpace(le.Message) == "" {
		t.Fatalf("doc 1: expected a decoder message")
	}
	if _, ok := docs[2].(Parsed); !ok {
		t.Fatalf("doc 2: expected Parsed, got %T", docs[2])
	}
}

func TestParse_BlankLinesSkippedButCounted(t *testing.T) {
	docs := Parse("{\"a\":1}\n\n{bad\n{\"b\":2}")
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents (blank line contributes none), got %d", len(docs))
	}
	le, ok := docs[1].(LineError)
	if !ok {
		t.Fatalf("doc 1: expected LineError, got %T", docs[1])
	}
	// Physical line numbering: the blank second line still counts.
	if le.Line != 3 {
		t.Fatalf("expected line number 3, got %d", le.Line)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\n", " \n\t\n "} {
		if docs := Parse(in); len(docs) != 0 {
			t.Fatalf("Parse(%q): expected empty document set, got %d docs", in, len(docs))
		}
	}
}

func TestParse_CRLFLines(t *testing.T) {
	docs := Parse("{\"a\":1}\r\n{\"b\":2}\r\n")
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for i, d := range docs {
		if _, ok := d.(Parsed); !ok {
			t.Fatalf("doc %d: expected Parsed, got %T", i, d)
		}
	}
}

func TestParse_ExtraDataOnLine(t *testing.T) {
	docs := Parse("1 2\n{\"ok\":true}")
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	le, ok := docs[0].(LineError)
	if !ok {
		t.Fatalf("doc 0: expected LineError for multiple values on one line, got %T", docs[0])
	}
	if le.Line != 1 {
		t.Fatalf("expected line 1, got %d", le.Line)
	}
}

func TestParse_MemberOrderPreserved(t *testing.T) {
	docs := Parse(`{"z": 1, "a": 2, "m": 3}`)
	p := docs[0].(Parsed)
	obj := p.Value.(*ast.Object)
	var keys []string
	for _, m := range obj.Members {
		keys = append(keys, string(m.Key.Unquote()))
	}
	want := []string{"z", "a", "m"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected key order %v, got %v", want, keys)
		}
	}
}
