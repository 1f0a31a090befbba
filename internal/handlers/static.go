package handlers

import (
	"net/http"
	"strings"
)

// HandleStatic serves uploaded images, 3D models, and thumbnails.
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/static/")

	// Prevent directory traversal attacks
	if strings.Contains(path, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	if strings.HasPrefix(path, "uploads/") {
		http.ServeFile(w, r, path)
		return
	}

	http.ServeFile(w, r, "static/"+path)
}
