package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the default data directory for cpctrain.
// Windows: %LOCALAPPDATA%\cpctrain
// Linux/Mac: ~/.local/share/cpctrain
func DataDir() string {
	if dir := os.Getenv("CPCTRAIN_DATA_DIR"); dir != "" {
		return dir
	}
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("LOCALAPPDATA"), "cpctrain")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "cpctrain")
}

// RunsDir returns the directory where run records are stored.
func RunsDir() string {
	return filepath.Join(DataDir(), "runs")
}

// SourceRoot returns the root of the source tree the launcher snapshots and
// runs from: the directory containing the launcher executable, symlinks
// resolved. The caller's working directory is deliberately not consulted, so
// a run started from anywhere snapshots the same tree. CPCTRAIN_SRC overrides.
func SourceRoot() (string, error) {
	if dir := os.Getenv("CPCTRAIN_SRC"); dir != "" {
		return dir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve launcher executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolve launcher executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// PythonBin returns the python interpreter used to run the trainer.
func PythonBin() string {
	if bin := os.Getenv("CPCTRAIN_PYTHON"); bin != "" {
		return bin
	}
	return "python"
}

// ProfilePath returns the hyperparameter profile location for a source root.
// The file is optional; callers tolerate its absence.
func ProfilePath(sourceRoot string) string {
	if path := os.Getenv("CPCTRAIN_PROFILE"); path != "" {
		return path
	}
	return filepath.Join(sourceRoot, "cpctrain.hcl")
}

// EnsureDirs creates the required directories if they don't exist.
func EnsureDirs() error {
	for _, dir := range []string{DataDir(), RunsDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
