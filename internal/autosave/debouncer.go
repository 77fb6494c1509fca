// Package autosave coalesces rapid successive saves into one write after a
// quiet period, the same way the notes editor persists while the user types.
package autosave

import (
	"context"
	"sync"
	"time"
)

// DefaultQuiet is the pause that has to elapse after the last update before
// the pending value is written.
const DefaultQuiet = time.Second

// SaveFunc persists the latest value.
type SaveFunc func(ctx context.Context, text string) error

// Debouncer holds the most recent value and writes it once updates go quiet.
// All methods are safe for concurrent use.
type Debouncer struct {
	quiet time.Duration
	save  SaveFunc

	mu      sync.Mutex
	timer   *time.Timer
	pending string
	dirty   bool
	stopped bool
	lastErr error
}

func NewDebouncer(quiet time.Duration, save SaveFunc) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer{quiet: quiet, save: save}
}

// Update records a new value and re-arms the quiet timer. Earlier unsaved
// values are discarded; only the latest one will be written.
func (d *Debouncer) Update(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.pending = text
	d.dirty = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.dirty || d.stopped {
		d.mu.Unlock()
		return
	}
	text := d.pending
	d.dirty = false
	d.mu.Unlock()

	err := d.save(context.Background(), text)

	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
}

// Flush writes the pending value immediately if there is one. It returns the
// write error, or the most recent background write error otherwise.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	if !d.dirty {
		err := d.lastErr
		d.mu.Unlock()
		return err
	}
	text := d.pending
	d.dirty = false
	d.mu.Unlock()

	err := d.save(ctx, text)

	d.mu.Lock()
	d.lastErr = err
	d.mu.Unlock()
	return err
}

// Stop flushes any pending value and rejects further updates.
func (d *Debouncer) Stop(ctx context.Context) error {
	err := d.Flush(ctx)
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.mu.Unlock()
	return err
}
