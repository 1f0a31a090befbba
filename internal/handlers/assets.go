package handlers

import (
	"io"
	"net/http"
)

// maxModelBytes caps 3D model uploads at 50MB.
const maxModelBytes = 50 * 1024 * 1024

// HandleListModels serves GET /api/assets/models.
func (h *Handler) HandleListModels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	models, err := h.assetStore.ListModels()
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(models),
		"data":    models,
	})
}

// HandleUploadModel serves POST /api/assets/upload-model.
func (h *Handler) HandleUploadModel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxModelBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(data) > maxModelBytes {
		h.writeError(w, "File too large (max 50MB)", http.StatusBadRequest)
		return
	}

	info, err := h.assetStore.SaveModel(header.Filename, r.FormValue("category"), data)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data":    info,
	})
}

// HandleUploadThumbnail serves POST /api/assets/upload-thumbnail.
func (h *Handler) HandleUploadThumbnail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		h.writeError(w, "Failed to read file contents: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if len(data) > maxUploadBytes {
		h.writeError(w, "File too large (max 10MB)", http.StatusBadRequest)
		return
	}

	url, err := h.assetStore.SaveThumbnail(header.Filename, data)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"data": map[string]any{
			"filename": header.Filename,
			"path":     url,
		},
	})
}
