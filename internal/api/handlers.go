package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/sectionrank/sectionrank/internal/pipeline"
)

// maxRequestBytes bounds the rank request body.
const maxRequestBytes = 4 << 20

// handleRank runs the ranking pipeline for one request. The body is the
// same input-configuration JSON the CLI takes; num_results may be
// overridden via query parameter.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		jsonError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	input, err := pipeline.ParseInput(body)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	numResults := s.numResults
	if v := r.URL.Query().Get("num_results"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, "invalid num_results", http.StatusBadRequest)
			return
		}
		numResults = n
	}

	out, err := s.pipe.Run(r.Context(), pipeline.Request{
		Input:      input,
		Folder:     s.folder,
		NumResults: numResults,
	})
	if err != nil {
		s.log.Error("rank failed", "error", err)
		jsonError(w, "ranking failed", http.StatusBadGateway)
		return
	}
	if out == nil {
		jsonError(w, "no rankable content", http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(out)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
