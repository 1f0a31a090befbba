package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gruhalankar/roomdecor/internal/catalog"
)

// HandleFurnitureList serves GET /api/furniture with optional category
// and style query filters.
func (h *Handler) HandleFurnitureList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := h.catalog.List(catalog.Filter{
		Category: r.URL.Query().Get("category"),
		Style:    r.URL.Query().Get("style"),
	})

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// HandleFurnitureDetail serves GET /api/furniture/{id}.
func (h *Handler) HandleFurnitureDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/furniture/")
	item, ok := h.catalog.Get(id)
	if !ok {
		h.writeError(w, "Furniture not found", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    item,
	})
}

// HandleFurnitureBatch serves POST /api/furniture/batch for id lookups.
func (h *Handler) HandleFurnitureBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.IDs) == 0 {
		h.writeError(w, "No furniture IDs provided", http.StatusBadRequest)
		return
	}

	items := h.catalog.GetBatch(request.IDs)
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}
