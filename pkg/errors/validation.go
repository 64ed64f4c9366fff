package errors

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateTitle validates a diagram title supplied by a caller.
//
// The validation rules are intentionally conservative:
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// An empty title is valid: it means the diagram is untitled.
func ValidateTitle(title string) error {
	if len(title) > 256 {
		return New(ErrCodeInvalidInput, "title too long (max 256 characters)")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains invalid control characters")
		}
	}

	return nil
}

// ValidateDiagramID validates a stored-diagram identifier.
// Identifiers are UUIDs assigned by the store on creation.
func ValidateDiagramID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "diagram id cannot be empty")
	}

	if _, err := uuid.Parse(id); err != nil {
		return New(ErrCodeInvalidInput, "invalid diagram id: %q", id)
	}

	return nil
}

// ValidateDocumentPath validates a user-supplied document file path.
// It prevents null bytes and enforces a reasonable length; both relative
// and absolute paths are allowed.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidPath, "path contains invalid characters")
	}

	return nil
}
