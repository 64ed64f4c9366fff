package mermaid

import "fmt"

// MissingFieldError is returned when a node or edge builder is finalized
// without a required field. Field names the missing attribute, e.g. "label",
// "source", "destination", or "relationship".
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// UnknownNodeError is returned when an edge references a NodeID that was
// never produced by the target builder. It catches ids constructed out of
// thin air as well as ids borrowed from an unrelated diagram that happen
// to fall outside this builder's range.
type UnknownNodeError struct {
	ID NodeID
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node reference %s", e.ID)
}
