package errors

import (
	"errors"

	"github.com/matzehuels/mermaidgen/pkg/graph"
	"github.com/matzehuels/mermaidgen/pkg/mermaid"
	"github.com/matzehuels/mermaidgen/pkg/store"
)

// Classify maps a domain error to a structured *Error with an
// appropriate code. Errors that are already structured pass through
// unchanged; anything unrecognized becomes an internal error.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}

	code := ErrCodeInternal

	var missing *mermaid.MissingFieldError
	var unknown *mermaid.UnknownNodeError
	switch {
	case errors.As(err, &missing):
		code = ErrCodeMissingField
	case errors.As(err, &unknown):
		code = ErrCodeUnknownNode
	case errors.Is(err, graph.ErrUnknownDialect):
		code = ErrCodeInvalidDialect
	case errors.Is(err, store.ErrNotFound):
		code = ErrCodeDiagramNotFound
	}

	return &Error{Code: code, Message: err.Error()}
}
