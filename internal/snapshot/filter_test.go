package snapshot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFilterExcluded(t *testing.T) {
	f := DefaultFilter()

	tests := []struct {
		rel  string
		want bool
	}{
		{"train.py", false},
		{"cpc/model.py", false},
		{"dataset.py", false}, // "data" is a literal component, not a prefix
		{".git/config", true},
		{".gitignore", true},
		{"data", true},
		{"data/LibriSpeech/x.flac", true},
		{"__pycache__", true},
		{"cpc/__pycache__/model.pyc", true},
		{"model.pyc", true},
		{"exploration.ipynb", true},
		{"notebooks/run.ipynb", true},
		{"checkpoints", true},
		{"checkpoints/epoch_5.pt", true},
	}

	for _, tt := range tests {
		if got := f.Excluded(tt.rel); got != tt.want {
			t.Errorf("Excluded(%q) = %v, want %v", tt.rel, got, tt.want)
		}
	}
}

func TestFilterRootNeverExcluded(t *testing.T) {
	f := DefaultFilter()
	if f.Excluded(".") || f.Excluded("") {
		t.Error("source root must never be excluded")
	}
}

func TestLoadIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("*.log\nsecret/\n"), 0644); err != nil {
		t.Fatal(err)
	}

	f := DefaultFilter()
	if err := f.LoadIgnoreFile(path); err != nil {
		t.Fatalf("LoadIgnoreFile: %v", err)
	}

	for rel, want := range map[string]bool{
		"train.log":      true,
		"logs/train.log": true,
		"secret/key":     true,
		"train.py":       false,
	} {
		if got := f.Excluded(rel); got != want {
			t.Errorf("Excluded(%q) = %v, want %v", rel, got, want)
		}
	}
}

func TestLoadIgnoreFileMissing(t *testing.T) {
	f := DefaultFilter()
	if err := f.LoadIgnoreFile(filepath.Join(t.TempDir(), ".gitignore")); err != nil {
		t.Fatalf("missing ignore file should not be an error: %v", err)
	}
	if f.Excluded("train.py") {
		t.Error("filter changed behavior after loading a missing file")
	}
}
