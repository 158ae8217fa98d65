package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/protodiagram/pkg/buildinfo"
	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
	diagramio "github.com/matzehuels/protodiagram/pkg/io"
	"github.com/matzehuels/protodiagram/pkg/pipeline"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

type listResponse struct {
	IDs []string `json:"ids"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	d, err := readDiagram(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, d)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Store.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{IDs: ids})
}

func (s *Server) handlePut(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := errors.ValidateID(id); err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := readDiagram(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	rec, err := s.Store.Put(r.Context(), id, d.Document())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderStored(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := diagram.FromDocument(rec.Document)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, d)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, d *diagram.Diagram) {
	res, err := s.Runner.Render(r.Context(), d, r.URL.Query().Get("format"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(res.Format))
	w.Header().Set("ETag", `"`+res.Hash[:16]+`"`)
	if res.Hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output)
}

// readDiagram decodes and validates a JSON diagram from the request body.
func readDiagram(w http.ResponseWriter, r *http.Request) (*diagram.Diagram, error) {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer body.Close()
	return diagramio.Read(body, diagramio.FormatJSON)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	msg := errors.UserMessage(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.Logger.Error("request failed", "path", r.URL.Path, "error", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func statusFor(err error) int {
	switch {
	case errors.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
