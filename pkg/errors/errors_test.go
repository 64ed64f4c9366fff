package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/mermaidgen/pkg/graph"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
	"github.com/matzehuels/mermaidgen/pkg/store"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeInvalidDialect, "unknown dialect: %s", "gantt")
	want := `INVALID_DIALECT: unknown dialect: gantt`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeInternal, stderrors.New("boom"), "render failed")
	want = `INTERNAL_ERROR: render failed: boom`
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "persist failed")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	err := New(ErrCodeNotFound, "no such diagram")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if got := GetCode(err); got != ErrCodeNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeNotFound)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode on plain error = %q, want empty", got)
	}

	// Codes survive wrapping with fmt.Errorf.
	outer := fmt.Errorf("handler: %w", err)
	if !Is(outer, ErrCodeNotFound) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "title too long")
	if got := UserMessage(err); got != "title too long" {
		t.Errorf("UserMessage = %q, want %q", got, "title too long")
	}

	plain := stderrors.New("something broke")
	if got := UserMessage(plain); got != "something broke" {
		t.Errorf("UserMessage = %q, want %q", got, "something broke")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"missing field", &mermaid.MissingFieldError{Field: "label"}, ErrCodeMissingField},
		{"unknown node", &mermaid.UnknownNodeError{ID: 3}, ErrCodeUnknownNode},
		{"unknown dialect", fmt.Errorf("%w: gantt", graph.ErrUnknownDialect), ErrCodeInvalidDialect},
		{"wrapped missing field", fmt.Errorf("node 2: %w", &mermaid.MissingFieldError{Field: "label"}), ErrCodeMissingField},
		{"store not found", fmt.Errorf("get: %w", store.ErrNotFound), ErrCodeDiagramNotFound},
		{"plain error", stderrors.New("boom"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if got.Code != tt.want {
				t.Errorf("Classify(%v).Code = %q, want %q", tt.err, got.Code, tt.want)
			}
			if got.Message == "" {
				t.Error("classified error should carry a message")
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if got := Classify(nil); got != nil {
		t.Errorf("Classify(nil) = %v, want nil", got)
	}
}

func TestClassifyPassesThroughStructured(t *testing.T) {
	orig := New(ErrCodeDiagramNotFound, "no diagram with id")
	got := Classify(fmt.Errorf("store: %w", orig))
	if got != orig {
		t.Errorf("Classify should return the original *Error, got %v", got)
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle(""); err != nil {
		t.Errorf("empty title should be valid, got %v", err)
	}
	if err := ValidateTitle("Checkout Flow"); err != nil {
		t.Errorf("normal title should be valid, got %v", err)
	}
	if err := ValidateTitle(strings.Repeat("x", 257)); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("overlong title should be INVALID_INPUT, got %v", err)
	}
	if err := ValidateTitle("bad\x00title"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("title with null byte should be INVALID_INPUT, got %v", err)
	}
}

func TestValidateDiagramID(t *testing.T) {
	if err := ValidateDiagramID("8f14e45f-ceea-4672-9b6b-2b7e1c3e9f10"); err != nil {
		t.Errorf("valid UUID should pass, got %v", err)
	}
	if err := ValidateDiagramID(""); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("empty id should be INVALID_INPUT, got %v", err)
	}
	if err := ValidateDiagramID("not-a-uuid"); !Is(err, ErrCodeInvalidInput) {
		t.Errorf("garbage id should be INVALID_INPUT, got %v", err)
	}
}

func TestValidateDocumentPath(t *testing.T) {
	if err := ValidateDocumentPath("diagrams/flow.json"); err != nil {
		t.Errorf("relative path should be valid, got %v", err)
	}
	if err := ValidateDocumentPath("/tmp/flow.json"); err != nil {
		t.Errorf("absolute path should be valid, got %v", err)
	}
	if err := ValidateDocumentPath(""); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("empty path should be INVALID_PATH, got %v", err)
	}
	if err := ValidateDocumentPath("bad\x00path"); !Is(err, ErrCodeInvalidPath) {
		t.Errorf("path with null byte should be INVALID_PATH, got %v", err)
	}
}
