package results

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gruhalankar/roomdecor/internal/eval/metrics"
	"gopkg.in/yaml.v3"
)

// EvalConfig represents the configuration section of the eval YAML
type EvalConfig struct {
	CatalogPath string `yaml:"catalogpath"`
	DatasetPath string `yaml:"datasetpath"`
	CatalogSize int    `yaml:"catalogsize"`
	SampleSize  int    `yaml:"samplesize"`
	Timestamp   string `yaml:"timestamp"`
}

// EvalResult represents a single room evaluation result
type EvalResult struct {
	RoomID         string   `yaml:"roomid"`
	RoomType       string   `yaml:"roomtype"`
	Style          string   `yaml:"style"`
	SpaceSize      string   `yaml:"spacesize"`
	ExpectedIDs    []string `yaml:"expectedids"`
	RecommendedIDs []string `yaml:"recommendedids"`
	Hits           int      `yaml:"hits"`
	Precision      float64  `yaml:"precision"`
	Recall         float64  `yaml:"recall"`
	ReciprocalRank float64  `yaml:"reciprocalrank"`
}

// EvalSummary represents the aggregate section of the eval YAML
type EvalSummary struct {
	Rooms         int     `yaml:"rooms"`
	MeanPrecision float64 `yaml:"meanprecision"`
	MeanRecall    float64 `yaml:"meanrecall"`
	MRR           float64 `yaml:"mrr"`
}

// EvalSpec represents the complete evaluation report
type EvalSpec struct {
	Config  EvalConfig   `yaml:"config"`
	Summary EvalSummary  `yaml:"summary"`
	Results []EvalResult `yaml:"results"`
}

// SaveToYAML saves evaluation results to a YAML file in evals/ directory
func SaveToYAML(catalogPath, datasetPath string, catalogSize int, results []EvalResult, summary metrics.Summary) error {
	if err := os.MkdirAll("evals", 0755); err != nil {
		return fmt.Errorf("failed to create evals directory: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")

	spec := EvalSpec{
		Config: EvalConfig{
			CatalogPath: catalogPath,
			DatasetPath: datasetPath,
			CatalogSize: catalogSize,
			SampleSize:  len(results),
			Timestamp:   timestamp,
		},
		Summary: EvalSummary{
			Rooms:         summary.Rooms,
			MeanPrecision: summary.MeanPrecision,
			MeanRecall:    summary.MeanRecall,
			MRR:           summary.MRR,
		},
		Results: results,
	}

	filename := fmt.Sprintf("evals/recommend-%s.yaml", timestamp)

	data, err := yaml.Marshal(&spec)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("\n✅ Evaluation results saved to: %s\n", absPath)

	return nil
}
