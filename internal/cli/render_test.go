package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	"github.com/matzehuels/mermaidgen/pkg/graph"
)

func writeDocument(t *testing.T, doc graph.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := graph.WriteDocumentFile(doc, path); err != nil {
		t.Fatalf("write document: %v", err)
	}
	return path
}

func TestLoadDocumentAppliesDefaults(t *testing.T) {
	path := writeDocument(t, graph.Document{
		Dialect: graph.DialectFlowchart,
		Nodes:   []graph.Node{{Label: "A"}},
	})

	cfg := defaultConfig()
	cfg.Defaults.Direction = "TB"
	cfg.Defaults.Theme = "forest"

	doc, err := loadDocument(cfg, path)
	if err != nil {
		t.Fatalf("loadDocument: %v", err)
	}
	if doc.Direction != "TB" {
		t.Errorf("Direction = %q, want TB from config", doc.Direction)
	}
	if doc.Theme != "forest" {
		t.Errorf("Theme = %q, want forest from config", doc.Theme)
	}
}

func TestLoadDocumentKeepsExplicitValues(t *testing.T) {
	path := writeDocument(t, graph.Document{
		Dialect:   graph.DialectFlowchart,
		Direction: "RL",
		Nodes:     []graph.Node{{Label: "A"}},
	})

	cfg := defaultConfig()
	cfg.Defaults.Direction = "TB"

	doc, err := loadDocument(cfg, path)
	if err != nil {
		t.Fatalf("loadDocument: %v", err)
	}
	if doc.Direction != "RL" {
		t.Errorf("Direction = %q, document value should win over config", doc.Direction)
	}
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := loadDocument(defaultConfig(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Error("missing document should error")
	}
}

func TestCheckDocument(t *testing.T) {
	valid := writeDocument(t, graph.Document{
		Dialect: graph.DialectFlowchart,
		Nodes:   []graph.Node{{Label: "Start"}, {Label: "End"}},
		Edges:   []graph.Edge{{From: 0, To: 1, Arrow: "normal"}},
	})
	if err := checkDocument(defaultConfig(), valid); err != nil {
		t.Errorf("valid document should pass check, got %v", err)
	}

	invalid := writeDocument(t, graph.Document{
		Dialect: graph.DialectFlowchart,
		Nodes:   []graph.Node{{Shape: "rect"}}, // no label
	})
	err := checkDocument(defaultConfig(), invalid)
	if err == nil {
		t.Fatal("document with unlabeled node should fail check")
	}
	if errors.Classify(err).Code != errors.ErrCodeMissingField {
		t.Errorf("check error code = %q, want MISSING_FIELD", errors.Classify(err).Code)
	}
}

func TestResolveCacheDir(t *testing.T) {
	cfg := defaultConfig()
	cfg.Cache.Dir = "/tmp/custom-cache"
	dir, err := resolveCacheDir(cfg)
	if err != nil {
		t.Fatalf("resolveCacheDir: %v", err)
	}
	if dir != "/tmp/custom-cache" {
		t.Errorf("dir = %q, want configured value", dir)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err = resolveCacheDir(defaultConfig())
	if err != nil {
		t.Fatalf("resolveCacheDir: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg", appName) {
		t.Errorf("dir = %q, want XDG location", dir)
	}
}

func TestPreviewModelScrolling(t *testing.T) {
	lines := make([]string, 50)
	for i := range lines {
		lines[i] = "line"
	}
	m := PreviewModel{Title: "t", Lines: lines, Height: 10}

	if m.maxOffset() != 40 {
		t.Errorf("maxOffset = %d, want 40", m.maxOffset())
	}

	m.Offset = m.maxOffset()
	view := m.View()
	if !strings.Contains(view, "t") {
		t.Error("view should contain the title")
	}
	if got := strings.Count(view, "line"); got != 10 {
		t.Errorf("view shows %d lines, want 10", got)
	}
}

func TestPreviewModelShortDocument(t *testing.T) {
	m := newPreviewModel("doc.json", "flowchart LR\nv0@{shape: rect, label: \"A\"}\n")
	if len(m.Lines) != 2 {
		t.Errorf("got %d lines, want 2", len(m.Lines))
	}
	if m.maxOffset() != 0 {
		t.Errorf("maxOffset = %d, want 0 for short document", m.maxOffset())
	}
}

func TestRenderToFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	docPath := writeDocument(t, graph.Document{
		Dialect: graph.DialectFlowchart,
		Nodes:   []graph.Node{{Label: "Start"}, {Label: "End"}},
		Edges:   []graph.Edge{{From: 0, To: 1, Arrow: "normal"}},
	})
	outPath := filepath.Join(t.TempDir(), "out.mmd")

	cmd := newRenderCmd()
	cmd.SetContext(t.Context())
	cmd.SetArgs([]string{docPath, "--output", outPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	want := "flowchart LR\n" +
		"v0@{shape: rect, label: \"Start\"}\n" +
		"v1@{shape: rect, label: \"End\"}\n" +
		"v0 ---> v1\n"
	if string(data) != want {
		t.Errorf("output = %q, want %q", string(data), want)
	}
}
