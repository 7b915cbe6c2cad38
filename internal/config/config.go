package config

import "path/filepath"

// Config holds the launcher configuration.
type Config struct {
	SourceRoot  string // root of the source tree to snapshot and run from
	PythonBin   string // python interpreter used to run the trainer
	TrainScript string // trainer entry point, relative to SourceRoot
	ProfilePath string // optional hyperparameter profile (HCL)
	RunsDir     string // where run records are kept
}

// DefaultConfig returns a Config with the resolved source root and
// environment overrides applied.
func DefaultConfig() (*Config, error) {
	root, err := SourceRoot()
	if err != nil {
		return nil, err
	}
	return &Config{
		SourceRoot:  root,
		PythonBin:   PythonBin(),
		TrainScript: "train.py",
		ProfilePath: ProfilePath(root),
		RunsDir:     RunsDir(),
	}, nil
}

// TrainScriptPath returns the absolute path of the trainer entry point.
func (c *Config) TrainScriptPath() string {
	return filepath.Join(c.SourceRoot, c.TrainScript)
}
