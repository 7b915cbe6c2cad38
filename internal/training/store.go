// Package training keeps per-launch run records.
package training

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tsellier/cpctrain/internal/config"
)

// RunStore persists Run records as JSON files, one directory per run.
type RunStore struct {
	baseDir string
}

// NewRunStore creates a RunStore using the default runs directory.
func NewRunStore() *RunStore {
	return &RunStore{baseDir: config.RunsDir()}
}

// NewRunStoreAt creates a RunStore at a custom directory (for testing).
func NewRunStoreAt(dir string) *RunStore {
	return &RunStore{baseDir: dir}
}

func (s *RunStore) runDir(id string) string {
	return filepath.Join(s.baseDir, id)
}

func (s *RunStore) recordPath(id string) string {
	return filepath.Join(s.runDir(id), "run.json")
}

// Save persists a run record to disk.
func (s *RunStore) Save(run *Run) error {
	if err := os.MkdirAll(s.runDir(run.ID), 0755); err != nil {
		return fmt.Errorf("create run dir: %w", err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}

	if err := os.WriteFile(s.recordPath(run.ID), data, 0644); err != nil {
		return fmt.Errorf("write run record: %w", err)
	}

	return nil
}

// Load reads a run record from disk.
func (s *RunStore) Load(id string) (*Run, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		return nil, fmt.Errorf("read run record: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("unmarshal run: %w", err)
	}

	return &run, nil
}

// List returns all run records, newest first.
func (s *RunStore) List() ([]*Run, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read runs dir: %w", err)
	}

	var runs []*Run
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		run, err := s.Load(entry.Name())
		if err != nil {
			continue // skip corrupt entries
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})

	return runs, nil
}

// Delete removes a run record.
func (s *RunStore) Delete(id string) error {
	dir := s.runDir(id)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("run %s not found", id)
	}
	return os.RemoveAll(dir)
}
