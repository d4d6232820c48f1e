// Package save decides when an edited prompt layout is worth persisting. It
// keeps the last successfully persisted snapshot and compares it, deep and
// value-based, against the live value to derive a dirty flag; saves are
// debounced so only the last edit in a burst reaches the sink, and a clean
// flush is elided entirely. Failures never roll back the in-memory edit —
// the snapshot stays dirty and the next cycle retries.
package save

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// DefaultDebounce is how long the controller waits after the last edit
// before persisting.
const DefaultDebounce = 2 * time.Second

// Snapshot is the unit of persistence: the layout plus its sibling prompt
// metadata, captured as one value so the dirty comparison covers everything
// the sink stores.
type Snapshot struct {
	Layout        layout.PromptLayout
	PromptName    string
	Content       string
	IsPublic      bool
	ExecutionMode string
}

// Sink is the external persistence collaborator.
type Sink interface {
	SavePrompt(ctx context.Context, snapshot Snapshot) error
}

// Option configures a Controller.
type Option func(*Controller)

// WithDebounce overrides the debounce window.
func WithDebounce(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.debounce = d
		}
	}
}

// WithLogger injects a logger for save diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithPersisted seeds the last-persisted snapshot, for prompts loaded from
// storage rather than created fresh.
func WithPersisted(snapshot Snapshot) Option {
	return func(c *Controller) {
		c.saved = snapshot
		c.hasSaved = true
	}
}

// Controller is the debounced, dirty-tracked persistence bridge between the
// canvas editor and a Sink.
type Controller struct {
	sink     Sink
	debounce time.Duration
	logger   *zap.Logger

	mu       sync.Mutex
	live     Snapshot
	hasLive  bool
	saved    Snapshot
	hasSaved bool
	timer    *time.Timer
	closed   bool
}

// New constructs a save controller over the given sink.
func New(sink Sink, options ...Option) (*Controller, error) {
	if sink == nil {
		return nil, errors.New("save: sink is required")
	}
	c := &Controller{
		sink:     sink,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Record captures the live value after an edit and (re)arms the debounce
// timer: every edit in a burst pushes the save out, so only the final value
// is persisted.
func (c *Controller) Record(snapshot Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.live = snapshot
	c.hasLive = true

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		if err := c.Flush(context.Background()); err != nil {
			c.logger.Warn("debounced save failed", zap.Error(err))
		}
	})
}

// Dirty reports whether the live value differs from the last successfully
// persisted snapshot. The comparison is only ever against "what was last
// saved", never against a save response, so a slow save landing after a
// newer edit cannot clobber the in-memory value.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirtyLocked()
}

func (c *Controller) dirtyLocked() bool {
	if !c.hasLive {
		return false
	}
	if !c.hasSaved {
		return true
	}
	return !reflect.DeepEqual(c.live, c.saved)
}

// Flush persists the live value now, bypassing the debounce. A flush that
// finds the live value unchanged from the last-persisted snapshot is elided
// even though the timer fired; this also covers the navigate-away signal
// arriving before the debounce elapsed.
func (c *Controller) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if !c.dirtyLocked() {
		c.mu.Unlock()
		return nil
	}
	snapshot := c.live
	c.mu.Unlock()

	if err := c.sink.SavePrompt(ctx, snapshot); err != nil {
		return fmt.Errorf("save: persist prompt %q: %w", snapshot.PromptName, err)
	}

	c.mu.Lock()
	c.saved = snapshot
	c.hasSaved = true
	c.mu.Unlock()
	return nil
}

// Close cancels any pending debounce timer. Required on teardown; a
// dangling timer is a resource leak. Close does not flush — hosts that want
// a final save call Flush first.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
