package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gruhalankar/roomdecor/internal/catalog"
	"github.com/gruhalankar/roomdecor/internal/models"
	"github.com/gruhalankar/roomdecor/internal/recommend"
)

// HandleAnalyzeRoom runs the suggestion flow: the vision model proposes
// furniture pieces for the uploaded room photo and the reconciler maps
// them onto concrete catalog assets.
func (h *Handler) HandleAnalyzeRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	imageData, filename, err := h.readImageUpload(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	storedName, err := h.saveUpload(imageData, filename)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	analysis, err := h.visionService.SuggestFurniture(r.Context(), imageData, imageMIME(filename))
	if err != nil {
		h.writeError(w, "Failed to analyze room: "+err.Error(), http.StatusInternalServerError)
		return
	}

	snapshot := h.catalog.List(catalog.Filter{})
	matched := recommend.ReconcileSuggestions(analysis.Recommendations, snapshot)

	record := &models.AnalysisRecord{
		ID:        uuid.New().String(),
		ImageName: filename,
		ImageURL:  "/static/uploads/" + storedName,
		Profile: models.RoomProfile{
			RoomType: analysis.RoomType,
			Style:    analysis.Style,
		},
		Assets:    matched,
		CreatedAt: time.Now(),
	}
	h.analysisStore.Set(record.ID, record)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"mode":             "recommendation",
		"analysis_id":      record.ID,
		"assets":           matched,
		"generated_images": []string{},
		"analysis": map[string]any{
			"room_type":    analysis.RoomType,
			"style":        analysis.Style,
			"color_scheme": analysis.ColorScheme,
			"empty_spaces": analysis.EmptySpaces,
			"confidence":   analysis.Confidence,
		},
	})
}

// HandleRecommendFurniture runs the profile flow: the vision model
// describes the room and the scorer ranks the whole catalog against it.
func (h *Handler) HandleRecommendFurniture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	imageData, filename, err := h.readImageUpload(r)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	storedName, err := h.saveUpload(imageData, filename)
	if err != nil {
		h.writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	profile, err := h.visionService.AnalyzeRoom(r.Context(), imageData, imageMIME(filename))
	if err != nil {
		h.writeError(w, "Failed to analyze room: "+err.Error(), http.StatusInternalServerError)
		return
	}

	snapshot := h.catalog.List(catalog.Filter{})
	scored := recommend.ScoreCatalog(profile, snapshot)

	record := &models.AnalysisRecord{
		ID:        uuid.New().String(),
		ImageName: filename,
		ImageURL:  "/static/uploads/" + storedName,
		Profile:   profile,
		Furniture: scored,
		CreatedAt: time.Now(),
	}
	h.analysisStore.Set(record.ID, record)

	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"analysis_id": record.ID,
		"analysis":    profile,
		"furniture":   scored,
		"recommendations": map[string]any{
			"summary": recommendationSummary(profile, len(scored)),
			"tips":    h.visionService.ArrangementTips(r.Context(), profile, scored),
		},
	})
}

// HandleAnalyzeTest verifies the recommendation pipeline is wired up.
func (h *Handler) HandleAnalyzeTest(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"message":         "Room analysis service is ready",
		"furniture_items": h.catalog.Count(),
	})
}
