package graph

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidgen/pkg/mermaid"
)

func flowDoc() Document {
	return Document{
		Dialect: DialectFlowchart,
		Nodes:   []Node{{Label: "Start"}, {Label: "End"}},
		Edges:   []Edge{{From: 0, To: 1, Arrow: "normal"}},
	}
}

func TestCompileFlowchart(t *testing.T) {
	got, err := Compile(flowDoc())
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	want := "flowchart LR\n" +
		"v0@{shape: rect, label: \"Start\"}\n" +
		"v1@{shape: rect, label: \"End\"}\n" +
		"v0 ---> v1\n"
	if got != want {
		t.Errorf("Compile() = %q, want %q", got, want)
	}
}

func TestCompileClass(t *testing.T) {
	doc := Document{
		Dialect: DialectClass,
		Nodes:   []Node{{Label: "Animal"}, {Label: "Dog"}},
		Edges:   []Edge{{From: 0, To: 1, Arrow: "inheritance"}},
	}
	got, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, want := range []string{
		"classDiagram\n",
		"class v0[\"Animal\"] { }\n",
		"class v1[\"Dog\"] { }\n",
		"v0 --|> v1\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Compile() = %q, missing %q", got, want)
		}
	}
}

func TestCompileER(t *testing.T) {
	doc := Document{
		Dialect: DialectER,
		Nodes:   []Node{{Label: "CUSTOMER"}, {Label: "ORDER"}},
		Edges:   []Edge{{From: 0, To: 1, Cardinality: "one-or-more"}},
	}
	got, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(got, "v0 }|--|{ v1 : \"\"\n") {
		t.Errorf("Compile() = %q, missing one-or-more edge", got)
	}
}

func TestCompileERAsymmetric(t *testing.T) {
	doc := Document{
		Dialect: DialectER,
		Nodes:   []Node{{Label: "A"}, {Label: "B"}},
		Edges:   []Edge{{From: 0, To: 1, Left: "exactly-one", Right: "zero-or-more"}},
	}
	got, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !strings.Contains(got, "v0 ||--o{ v1 : \"\"\n") {
		t.Errorf("Compile() = %q, missing asymmetric edge", got)
	}
}

func TestCompileUnknownDialect(t *testing.T) {
	_, err := Compile(Document{Dialect: "gantt"})
	if !errors.Is(err, ErrUnknownDialect) {
		t.Fatalf("Compile error = %v, want ErrUnknownDialect", err)
	}
}

func TestCompileValidationErrors(t *testing.T) {
	t.Run("missing label", func(t *testing.T) {
		_, err := Compile(Document{Dialect: DialectFlowchart, Nodes: []Node{{}}})
		var missing *mermaid.MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "label" {
			t.Errorf("Compile error = %v, want MissingFieldError{label}", err)
		}
	})

	t.Run("dangling edge", func(t *testing.T) {
		_, err := Compile(Document{
			Dialect: DialectFlowchart,
			Nodes:   []Node{{Label: "A"}},
			Edges:   []Edge{{From: 0, To: 7, Arrow: "normal"}},
		})
		var unknown *mermaid.UnknownNodeError
		if !errors.As(err, &unknown) || unknown.ID != 7 {
			t.Errorf("Compile error = %v, want UnknownNodeError{7}", err)
		}
	})

	t.Run("missing relationship", func(t *testing.T) {
		_, err := Compile(Document{
			Dialect: DialectClass,
			Nodes:   []Node{{Label: "A"}, {Label: "B"}},
			Edges:   []Edge{{From: 0, To: 1}},
		})
		var missing *mermaid.MissingFieldError
		if !errors.As(err, &missing) || missing.Field != "relationship" {
			t.Errorf("Compile error = %v, want MissingFieldError{relationship}", err)
		}
	})
}

func TestCompileBadTokens(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
	}{
		{"bad direction", Document{Dialect: DialectFlowchart, Direction: "UP"}},
		{"bad shape", Document{Dialect: DialectFlowchart, Nodes: []Node{{Label: "A", Shape: "blob"}}}},
		{"bad arrow", Document{
			Dialect: DialectFlowchart,
			Nodes:   []Node{{Label: "A"}, {Label: "B"}},
			Edges:   []Edge{{From: 0, To: 1, Arrow: "zigzag"}},
		}},
		{"bad cardinality", Document{
			Dialect: DialectER,
			Nodes:   []Node{{Label: "A"}, {Label: "B"}},
			Edges:   []Edge{{From: 0, To: 1, Cardinality: "many"}},
		}},
		{"bad theme", Document{Dialect: DialectER, Theme: "solarized"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Compile(tt.doc); err == nil {
				t.Error("Compile succeeded, want error")
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := flowDoc()
	doc.Title = "Pipeline"
	doc.Direction = "TB"

	data, err := MarshalDocument(doc)
	if err != nil {
		t.Fatalf("MarshalDocument: %v", err)
	}
	parsed, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument: %v", err)
	}

	// Round-trip must compile to identical text.
	first, err := Compile(doc)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	second, err := Compile(parsed)
	if err != nil {
		t.Fatalf("Compile round-tripped: %v", err)
	}
	if first != second {
		t.Errorf("round-trip changed output: %q vs %q", first, second)
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flow.json")
	if err := WriteDocumentFile(flowDoc(), path); err != nil {
		t.Fatalf("WriteDocumentFile: %v", err)
	}

	doc, err := ReadDocumentFile(path)
	if err != nil {
		t.Fatalf("ReadDocumentFile: %v", err)
	}
	if doc.Dialect != DialectFlowchart || len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Errorf("ReadDocumentFile = %+v, want original document", doc)
	}
}

func TestReadDocumentMalformed(t *testing.T) {
	if _, err := ReadDocument(bytes.NewReader([]byte("{not json"))); err == nil {
		t.Error("ReadDocument accepted malformed JSON")
	}
	if _, err := ReadDocumentFile(filepath.Join(t.TempDir(), "absent.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadDocumentFile error = %v, want ErrNotExist", err)
	}
}
