// Package runner runs the training command as a child process and streams
// its merged output.
package runner

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
)

// TrainProcess runs the training command to completion. Go cannot replace
// its own process image and keep an in-process tee alive, so the launcher
// spawns the child, relays termination signals to it, and adopts its exit
// code — the behavioral equivalent of an exec handoff.
type TrainProcess struct {
	cmd    *exec.Cmd
	label  string
	doneCh chan struct{} // closed when the process exits
}

// Config holds everything needed to run the training command.
type Config struct {
	Bin    string    // executable name or path, resolved via PATH
	Args   []string  // argument list after the binary
	Dir    string    // working directory
	Output io.Writer // receives merged stdout+stderr; nil = launcher stdout
	Env    []string  // nil = inherit the launcher's environment
	Label  string    // log prefix (default "train")
}

// New creates a TrainProcess but does not start it. Call Run() next.
func New(cfg Config) *TrainProcess {
	label := cfg.Label
	if label == "" {
		label = "train"
	}

	cmd := exec.Command(cfg.Bin, cfg.Args...)
	cmd.Dir = cfg.Dir
	if cfg.Env != nil {
		cmd.Env = cfg.Env
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	// One writer for both streams: exec.Cmd then feeds stdout and stderr
	// through a single pipe, so the child's own interleaving order survives.
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.Stdin = os.Stdin

	return &TrainProcess{
		cmd:    cmd,
		label:  label,
		doneCh: make(chan struct{}),
	}
}

// Run starts the child, relays SIGINT/SIGTERM to it, waits for it to exit,
// and returns its exit code. A start failure (binary missing, unreadable
// script) comes back as an error; a non-zero child exit does not.
func (p *TrainProcess) Run() (int, error) {
	log.Printf("[%s] starting: %s %s", p.label, p.cmd.Path, strings.Join(p.cmd.Args[1:], " "))

	if err := p.cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", p.label, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go p.relaySignals(sigCh)

	err := p.cmd.Wait()
	close(p.doneCh)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("wait for %s: %w", p.label, err)
	}
	return 0, nil
}

// relaySignals forwards termination signals to the child. The launcher
// itself stays alive until the child exits so the output tee keeps draining.
func (p *TrainProcess) relaySignals(ch <-chan os.Signal) {
	for {
		select {
		case sig := <-ch:
			log.Printf("[%s] forwarding %v", p.label, sig)
			p.cmd.Process.Signal(sig)
		case <-p.doneCh:
			return
		}
	}
}
