package server

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/mermaidgen/pkg/errors"
)

// errorResponse is the JSON envelope for API errors.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

// respondJSON writes v as JSON with the given status code.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// respondError classifies err and writes it as a structured JSON error.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	classified := errors.Classify(err)
	status := statusForCode(classified.Code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", classified.Code, "error", err)
	}
	s.respondJSON(w, status, errorResponse{Error: errorBody{
		Code:    classified.Code,
		Message: classified.Message,
	}})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidDialect,
		errors.ErrCodeInvalidDocument,
		errors.ErrCodeMissingField,
		errors.ErrCodeUnknownNode,
		errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeDiagramNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
