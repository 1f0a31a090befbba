package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gruhalankar/roomdecor/internal/assets"
	"github.com/gruhalankar/roomdecor/internal/catalog"
	"github.com/gruhalankar/roomdecor/internal/storage"
	"github.com/gruhalankar/roomdecor/internal/utils"
	"github.com/gruhalankar/roomdecor/internal/vision"
)

// maxUploadBytes caps room image uploads at 10MB.
const maxUploadBytes = 10 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type Handler struct {
	catalog       *catalog.Store
	visionService *vision.Service
	analysisStore *storage.AnalysisStore
	assetStore    *assets.Store
}

func New(catalogStore *catalog.Store) *Handler {
	return &Handler{
		catalog:       catalogStore,
		visionService: vision.NewService(),
		analysisStore: storage.New(),
		assetStore:    assets.NewStore(os.Getenv("STATIC_DIR")),
	}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	h.writeJSON(w, code, map[string]any{
		"success": false,
		"error":   message,
	})
}

// readImageUpload extracts and validates the uploaded room image from a
// multipart request, accepting either the "image" or "file" field name.
func (h *Handler) readImageUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		file, header, err = r.FormFile("file")
		if err != nil {
			return nil, "", fmt.Errorf("no image file provided")
		}
	}
	defer file.Close()

	return readValidatedImage(file, header)
}

func readValidatedImage(file multipart.File, header *multipart.FileHeader) ([]byte, string, error) {
	if header.Filename == "" {
		return nil, "", fmt.Errorf("empty filename")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExtensions[ext] {
		return nil, "", fmt.Errorf("invalid file type %q, allowed: png, jpg, jpeg, webp", ext)
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file contents: %w", err)
	}
	if len(data) > maxUploadBytes {
		return nil, "", fmt.Errorf("file too large (max 10MB)")
	}
	if len(data) == 0 {
		return nil, "", fmt.Errorf("empty file")
	}

	return data, header.Filename, nil
}

// saveUpload writes the image under uploads/ using a content-addressed
// filename and returns the stored filename.
func (h *Handler) saveUpload(data []byte, originalFilename string) (string, error) {
	if err := os.MkdirAll("uploads", 0755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	filename := utils.CalculateDataMD5(data) + strings.ToLower(filepath.Ext(originalFilename))
	path := filepath.Join("uploads", filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	slog.Info("Image saved", "filename", filename, "bytes", len(data))
	return filename, nil
}

// imageMIME derives the MIME type from the upload's extension.
func imageMIME(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

// HandleHealth reports service readiness and catalog size.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"service":         "GruhaAlankar API",
		"status":          "healthy",
		"success":         true,
		"furniture_count": h.catalog.Count(),
	})
}
