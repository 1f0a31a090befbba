package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoader(t *testing.T) {
	path := "./rooms.parquet"
	loader := NewLoader(path)

	if loader.datasetPath != path {
		t.Errorf("Expected path %s, got %s", path, loader.datasetPath)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	loader := NewLoader("rooms.csv")
	if _, err := loader.Load(); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestLoadJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.jsonl")

	content := `{"room_id":"room_1","room_type":"living","style":"minimal","space_size":"small","color_scheme":"neutral","expected_ids":["sofa_001","lamp_001"]}

{"room_id":"room_2","room_type":"bedroom","style":"modern","space_size":"large","expected_ids":["bed_001"]}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	rooms, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(rooms) != 2 {
		t.Fatalf("Expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].RoomID != "room_1" {
		t.Errorf("Expected room_1, got %s", rooms[0].RoomID)
	}
	if len(rooms[0].ExpectedIDs) != 2 || rooms[0].ExpectedIDs[0] != "sofa_001" {
		t.Errorf("Unexpected expected_ids: %v", rooms[0].ExpectedIDs)
	}
	if rooms[1].SpaceSize != "large" {
		t.Errorf("Expected large, got %s", rooms[1].SpaceSize)
	}
}

func TestLoadJSONLBadLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.jsonl")

	if err := os.WriteFile(path, []byte("{not json}\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Expected error for malformed JSON line")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := NewLoader("does/not/exist.jsonl").Load(); err == nil {
		t.Error("Expected error for missing file")
	}
}
