package handlers

import (
	"net/http"
	"strings"
)

// HandleAnalyses serves GET /api/analyses, newest first.
func (h *Handler) HandleAnalyses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	records := h.analysisStore.GetAll()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}

// HandleAnalysisDetail serves GET /api/analyses/{id}.
func (h *Handler) HandleAnalysisDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/analyses/")
	record, ok := h.analysisStore.Get(id)
	if !ok {
		h.writeError(w, "Analysis not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    record,
	})
}
