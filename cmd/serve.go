package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gruhalankar/roomdecor/internal/assets"
	"github.com/gruhalankar/roomdecor/internal/catalog"
	"github.com/gruhalankar/roomdecor/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var catalogFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the furniture recommendation API server",
		Long: `Starts the Roomdecor HTTP API on the specified port.

The API accepts room photo uploads, analyzes them with vision-capable
LLMs (Gemini, OpenAI, or Ollama), and recommends furniture from the
local catalog of placeable 3D assets.`,
		Example: `  # Start server on default port 5000
  roomdecor serve

  # Start server on custom port with a specific catalog file
  roomdecor serve --port 8080 --catalog data/furniture.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := catalog.New(catalogFile)
			if err := store.Load(); err != nil {
				return err
			}

			// Pull the published asset pack so 3D models are servable
			// without a manual copy step. Failure is non-fatal.
			if baseURL := os.Getenv("ASSETS_BASE_URL"); baseURL != "" {
				assetStore := assets.NewStore(os.Getenv("STATIC_DIR"))
				fetcher := assets.NewFetcher()
				if _, err := fetcher.SyncAssetPack(cmd.Context(), baseURL, assetStore.ModelsDir()); err != nil {
					slog.Warn("Asset pack sync failed", "err", err)
				}
			}

			handler := handlers.New(store)

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/api/analyze-room", handler.HandleAnalyzeRoom)
			mux.HandleFunc("/api/analyze-room/test", handler.HandleAnalyzeTest)
			mux.HandleFunc("/api/recommend-furniture", handler.HandleRecommendFurniture)
			mux.HandleFunc("/api/redesign", handler.HandleRedesign)
			mux.HandleFunc("/api/furniture", handler.HandleFurnitureList)
			mux.HandleFunc("/api/furniture/batch", handler.HandleFurnitureBatch)
			mux.HandleFunc("/api/furniture/", handler.HandleFurnitureDetail)
			mux.HandleFunc("/api/assets/models", handler.HandleListModels)
			mux.HandleFunc("/api/assets/upload-model", handler.HandleUploadModel)
			mux.HandleFunc("/api/assets/upload-thumbnail", handler.HandleUploadThumbnail)
			mux.HandleFunc("/api/analyses", handler.HandleAnalyses)
			mux.HandleFunc("/api/analyses/", handler.HandleAnalysisDetail)
			mux.HandleFunc("/api/health", handler.HandleHealth)
			mux.HandleFunc("/static/", handler.HandleStatic)

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Roomdecor API available", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "5000", "Port to listen on")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Path to the catalog JSON file")

	return cmd
}
