package handlers

import (
	"net/http"

	"github.com/gruhalankar/roomdecor/internal/vision"
)

// HandleRedesign generates redesigned room renders from the uploaded
// photo and the user's style preferences.
func (h *Handler) HandleRedesign(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	imageData, filename, err := h.readImageUpload(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.saveUpload(imageData, filename); err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	prefs := vision.RedesignPreferences{
		Style:          r.FormValue("style"),
		ColorScheme:    r.FormValue("color_scheme"),
		FurnitureFocus: r.FormValue("furniture_focus"),
	}

	result, err := h.visionService.RedesignRoom(r.Context(), prefs)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"mode":             "redesign",
		"assets":           []string{},
		"generated_images": result.GeneratedImages,
		"style":            result.Style,
		"prompt_used":      result.PromptUsed,
	})
}
