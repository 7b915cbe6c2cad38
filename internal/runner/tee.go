package runner

import (
	"io"
	"log"
	"sync"
)

// Tee duplicates every write to a primary and a secondary sink, primary
// first. Each chunk is forwarded as it arrives, so a crash mid-run leaves a
// usable partial log rather than a buffered-but-lost tail. A failing
// secondary is disabled after one logged complaint; terminal output is never
// blocked by a full disk under the run log.
type Tee struct {
	mu        sync.Mutex
	primary   io.Writer
	secondary io.Writer
	dropped   bool
}

// NewTee creates a Tee writing to primary and secondary.
func NewTee(primary, secondary io.Writer) *Tee {
	return &Tee{primary: primary, secondary: secondary}
}

func (t *Tee) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, err := t.primary.Write(p)
	if !t.dropped {
		if _, werr := t.secondary.Write(p); werr != nil {
			t.dropped = true
			log.Printf("[cpctrain] run log write failed, continuing without it: %v", werr)
		}
	}
	return n, err
}
