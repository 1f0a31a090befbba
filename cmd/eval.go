package cmd

import (
	"fmt"
	"log/slog"

	"github.com/gruhalankar/roomdecor/internal/catalog"
	"github.com/gruhalankar/roomdecor/internal/eval/dataset"
	"github.com/gruhalankar/roomdecor/internal/eval/metrics"
	"github.com/gruhalankar/roomdecor/internal/eval/results"
	"github.com/gruhalankar/roomdecor/internal/models"
	"github.com/gruhalankar/roomdecor/internal/recommend"
	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var datasetPath string
	var catalogFile string
	var limit int

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Evaluate recommendation quality against a labeled dataset",
		Long: `Runs the recommendation scorer over a dataset of labeled rooms and
measures how well the ranked output matches designer-picked items.

The dataset file may be Parquet or JSONL; each row holds a room profile
and the catalog ids a designer marked as good picks for it. Results are
written as a YAML report under evals/.`,
		Example: `  roomdecor eval --dataset evals/rooms.parquet
  roomdecor eval --dataset evals/rooms.jsonl --limit 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeEval(datasetPath, catalogFile, limit)
		},
	}

	cmd.Flags().StringVarP(&datasetPath, "dataset", "d", "", "Path to the labeled room dataset (.parquet or .jsonl)")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Path to the catalog JSON file")
	cmd.Flags().IntVar(&limit, "limit", 0, "Evaluate at most this many rooms (0 = all)")

	if err := cmd.MarkFlagRequired("dataset"); err != nil {
		slog.Error("Failed to mark flag required", "err", err)
	}

	return cmd
}

func executeEval(datasetPath, catalogFile string, limit int) error {
	slog.Info("Starting evaluation run", "dataset", datasetPath)

	store := catalog.New(catalogFile)
	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	items := store.List(catalog.Filter{})
	if len(items) == 0 {
		return fmt.Errorf("catalog is empty, run `roomdecor seed` first")
	}

	rooms, err := dataset.NewLoader(datasetPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	if limit > 0 && limit < len(rooms) {
		rooms = rooms[:limit]
	}

	slog.Info("Dataset loaded", "rooms", len(rooms), "catalog_items", len(items))

	perRoom := make([]metrics.RoomResult, 0, len(rooms))
	reportRows := make([]results.EvalResult, 0, len(rooms))

	for i, room := range rooms {
		profile := models.RoomProfile{
			RoomType:    models.ParseRoomType(room.RoomType),
			Style:       room.Style,
			SpaceSize:   models.ParseSpaceSize(room.SpaceSize),
			ColorScheme: room.ColorScheme,
		}

		ranked := recommend.ScoreCatalog(profile, items)
		scored := metrics.ScoreRanking(room.RoomID, ranked, room.ExpectedIDs)
		perRoom = append(perRoom, scored)

		rankedIDs := make([]string, 0, len(ranked))
		for _, r := range ranked {
			rankedIDs = append(rankedIDs, r.Item.ID)
		}

		reportRows = append(reportRows, results.EvalResult{
			RoomID:         room.RoomID,
			RoomType:       string(profile.RoomType),
			Style:          profile.Style,
			SpaceSize:      string(profile.SpaceSize),
			ExpectedIDs:    room.ExpectedIDs,
			RecommendedIDs: rankedIDs,
			Hits:           scored.Hits,
			Precision:      scored.Precision,
			Recall:         scored.Recall,
			ReciprocalRank: scored.ReciprocalRank,
		})

		slog.Info("Evaluated room", "id", room.RoomID, "progress", fmt.Sprintf("%d/%d", i+1, len(rooms)), "hits", scored.Hits)
	}

	summary := metrics.Aggregate(perRoom)
	slog.Info("Evaluation complete",
		"rooms", summary.Rooms,
		"mean_precision", fmt.Sprintf("%.3f", summary.MeanPrecision),
		"mean_recall", fmt.Sprintf("%.3f", summary.MeanRecall),
		"mrr", fmt.Sprintf("%.3f", summary.MRR))

	return results.SaveToYAML(catalogFile, datasetPath, len(items), reportRows, summary)
}
