// Package launch implements the snapshot-then-launch sequence: bootstrap the
// experiment directory, copy a filtered snapshot of the source tree into it,
// record the invocation, then run the trainer with its output teed into the
// run log.
package launch

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsellier/cpctrain/internal/config"
	"github.com/tsellier/cpctrain/internal/profile"
	"github.com/tsellier/cpctrain/internal/runner"
	"github.com/tsellier/cpctrain/internal/snapshot"
	"github.com/tsellier/cpctrain/internal/training"
)

// Launcher turns a destination path into a populated, logged experiment
// directory and runs the training process to completion.
type Launcher struct {
	cfg   *config.Config
	store *training.RunStore
}

// New creates a Launcher.
func New(cfg *config.Config) *Launcher {
	return &Launcher{
		cfg:   cfg,
		store: training.NewRunStoreAt(cfg.RunsDir),
	}
}

// Run executes the full launch sequence for a raw argument list and returns
// the trainer's exit code. A returned error means the trainer never ran to
// completion on its own terms: missing --pathCheckpoint, a bootstrap
// failure, or a trainer that could not start. No retry in any case; this is
// a single best-effort run.
func (l *Launcher) Run(args []string) (int, error) {
	dst, err := ExtractCheckpointPath(args)
	if err != nil {
		return 0, err
	}

	codeDir := filepath.Join(dst, "code")
	if err := os.MkdirAll(codeDir, 0755); err != nil {
		return 0, fmt.Errorf("create %s: %w", codeDir, err)
	}

	filter := snapshot.DefaultFilter()
	if err := filter.LoadIgnoreFile(filepath.Join(l.cfg.SourceRoot, ".gitignore")); err != nil {
		return 0, err
	}
	log.Printf("[cpctrain] snapshotting %s -> %s", l.cfg.SourceRoot, codeDir)
	if err := snapshot.Snapshot(l.cfg.SourceRoot, codeDir, filter); err != nil {
		return 0, fmt.Errorf("snapshot source tree: %w", err)
	}

	// Opened once in append mode; the handle doubles as the tee's log sink
	// for the rest of the run.
	logFile, err := os.OpenFile(filepath.Join(dst, "out.txt"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, fmt.Errorf("open run log: %w", err)
	}
	defer logFile.Close()

	if _, err := fmt.Fprintln(logFile, launcherName()+" "+strings.Join(args, " ")); err != nil {
		return 0, fmt.Errorf("write invocation record: %w", err)
	}

	trainArgs, err := l.trainArgs(args)
	if err != nil {
		return 0, err
	}

	run := l.record(dst, args, trainArgs)

	proc := runner.New(runner.Config{
		Bin:    l.cfg.PythonBin,
		Args:   trainArgs,
		Dir:    l.cfg.SourceRoot,
		Output: runner.NewTee(os.Stdout, logFile),
	})
	code, err := proc.Run()
	if err != nil {
		l.finish(run, -1, err)
		return 0, err
	}
	l.finish(run, code, nil)
	return code, nil
}

// trainArgs builds the trainer argument list: entry script, default
// hyperparameters with profile overrides applied, then every forwarded
// argument verbatim.
func (l *Launcher) trainArgs(forwarded []string) ([]string, error) {
	hp := DefaultHyperparameters()
	prof, err := profile.Load(l.cfg.ProfilePath)
	if err != nil {
		return nil, err
	}
	hp.ApplyProfile(prof)

	args := append([]string{l.cfg.TrainScriptPath()}, hp.Args()...)
	return append(args, forwarded...), nil
}

// record persists the run record. Record-keeping is best effort: the launch
// proceeds even if the store is unusable.
func (l *Launcher) record(dst string, forwarded, trainArgs []string) *training.Run {
	run := training.NewRun(dst, forwarded, append([]string{l.cfg.PythonBin}, trainArgs...))
	if err := l.store.Save(run); err != nil {
		log.Printf("[cpctrain] run record not saved: %v", err)
	}
	return run
}

func (l *Launcher) finish(run *training.Run, code int, runErr error) {
	run.Finish(code, runErr)
	if err := l.store.Save(run); err != nil {
		log.Printf("[cpctrain] run record not saved: %v", err)
	}
}

func launcherName() string {
	return filepath.Base(os.Args[0])
}
