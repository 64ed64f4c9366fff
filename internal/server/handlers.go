package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/mermaidgen/pkg/errors"
	"github.com/matzehuels/mermaidgen/pkg/graph"
	"github.com/matzehuels/mermaidgen/pkg/pipeline"
	"github.com/matzehuels/mermaidgen/pkg/store"
)

// renderResponse is the body returned by POST /api/v1/render.
type renderResponse struct {
	Text    string `json:"text"`
	DocHash string `json:"doc_hash"`
	Cached  bool   `json:"cached"`
	Nodes   int    `json:"nodes"`
	Edges   int    `json:"edges"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDialects(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string][]string{
		"dialects": graph.Dialects(),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	doc, err := s.decodeDocument(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	opts := pipeline.Options{
		Refresh: r.URL.Query().Get("refresh") == "true",
	}
	result, err := s.runner.Render(r.Context(), doc, opts)
	if err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, renderResponse{
		Text:    result.Text,
		DocHash: result.DocHash,
		Cached:  result.Cached,
		Nodes:   result.Stats.NodeCount,
		Edges:   result.Stats.EdgeCount,
	})
}

func (s *Server) handleCreateDiagram(w http.ResponseWriter, r *http.Request) {
	doc, err := s.decodeDocument(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.runner.Render(r.Context(), doc, pipeline.Options{})
	if err != nil {
		s.respondError(w, err)
		return
	}

	d := store.NewDiagram(doc, result.Text)
	if err := s.store.Create(r.Context(), d); err != nil {
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDiagrams(w http.ResponseWriter, r *http.Request) {
	diagrams, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string][]*store.Diagram{
		"diagrams": diagrams,
	})
}

func (s *Server) handleGetDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateDiagramID(id); err != nil {
		s.respondError(w, err)
		return
	}

	d, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleUpdateDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateDiagramID(id); err != nil {
		s.respondError(w, err)
		return
	}

	doc, err := s.decodeDocument(r)
	if err != nil {
		s.respondError(w, err)
		return
	}

	result, err := s.runner.Render(r.Context(), doc, pipeline.Options{})
	if err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.store.Update(r.Context(), &store.Diagram{
		ID:       id,
		Document: doc,
		Text:     result.Text,
	}); err != nil {
		s.respondError(w, err)
		return
	}

	d, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDiagram(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateDiagramID(id); err != nil {
		s.respondError(w, err)
		return
	}

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDocument reads and validates a document from the request body.
func (s *Server) decodeDocument(r *http.Request) (graph.Document, error) {
	var doc graph.Document
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return graph.Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "invalid document body")
	}
	if err := errors.ValidateTitle(doc.Title); err != nil {
		return graph.Document{}, err
	}
	return doc, nil
}
