package execution

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/form"
)

// DefaultPollInterval is how often an active execution is refetched.
const DefaultPollInterval = 2 * time.Second

var (
	// ErrNotFound is returned by Client implementations when the execution
	// does not exist. The controller renders it as a terminal read-only
	// state and never retries.
	ErrNotFound = errors.New("execution: not found")

	// ErrReadOnly rejects submission attempts against an expired or
	// terminal execution.
	ErrReadOnly = errors.New("execution: read-only")

	// ErrInvalid rejects submission while required fields are missing.
	ErrInvalid = errors.New("execution: form is not valid")

	// ErrAlreadySubmitted rejects a second submit after a successful one.
	ErrAlreadySubmitted = errors.New("execution: already submitted")
)

// Option configures a Controller.
type Option func(*Controller)

// WithPollInterval overrides the refetch interval.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Controller) {
		if interval > 0 {
			c.interval = interval
		}
	}
}

// WithClock injects the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger injects a logger for poll and submit diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBindings supplies runtime table bindings shared by every prompt
// session bound to the execution.
func WithBindings(bindings form.Bindings) Option {
	return func(c *Controller) {
		c.bindings = bindings
	}
}

// WithOnUpdate registers a callback fired after every accepted fetch, with
// the fresh execution snapshot.
func WithOnUpdate(fn func(PromptExecution)) Option {
	return func(c *Controller) {
		c.onUpdate = fn
	}
}

// Controller is the client-side state machine for one execution. It owns
// the form sessions of every bound prompt and aggregates their field writes
// into a single response bag keyed by logical field key; field keys must be
// unique across all prompts bound to one execution.
type Controller struct {
	client   Client
	id       string
	interval time.Duration
	now      func() time.Time
	logger   *zap.Logger
	bindings form.Bindings
	onUpdate func(PromptExecution)

	mu        sync.Mutex
	current   PromptExecution
	fetched   bool
	missing   bool
	submitted bool
	sessions  []*form.Session
	formData  map[string]any
}

// NewController constructs a controller for an execution id. Call Refresh or
// Run to populate it.
func NewController(client Client, executionID string, options ...Option) (*Controller, error) {
	if client == nil {
		return nil, errors.New("execution: client is required")
	}
	if executionID == "" {
		return nil, errors.New("execution: execution id is required")
	}
	c := &Controller{
		client:   client,
		id:       executionID,
		interval: DefaultPollInterval,
		now:      time.Now,
		logger:   zap.NewNop(),
		formData: make(map[string]any),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c, nil
}

// Refresh fetches the execution once and applies the result. A not-found
// response marks the controller missing and is not retried.
func (c *Controller) Refresh(ctx context.Context) error {
	exec, err := c.client.FetchExecution(ctx, c.id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.mu.Lock()
			c.missing = true
			c.mu.Unlock()
			return err
		}
		return fmt.Errorf("execution: fetch %q: %w", c.id, err)
	}
	c.apply(exec)
	return nil
}

// Run polls the execution until a terminal status is observed or the
// context ends. The refetch predicate is re-evaluated on every tick, so the
// loop halts the instant a terminal (or missing) state lands; there is no
// separate cancellation path. Fetch failures are logged and retried on the
// next tick.
func (c *Controller) Run(ctx context.Context) error {
	if err := c.Refresh(ctx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return err
		}
		c.logger.Warn("execution poll failed", zap.String("id", c.id), zap.Error(err))
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		if !c.shouldPoll() {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !c.shouldPoll() {
				return nil
			}
			if err := c.Refresh(ctx); err != nil {
				if errors.Is(err, ErrNotFound) {
					return err
				}
				c.logger.Warn("execution poll failed", zap.String("id", c.id), zap.Error(err))
			}
		}
	}
}

func (c *Controller) shouldPoll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.missing {
		return false
	}
	if !c.fetched {
		return true
	}
	return c.current.Status.Active()
}

func (c *Controller) apply(exec PromptExecution) {
	c.mu.Lock()
	rebuild := !c.fetched
	c.current = exec
	c.fetched = true
	if rebuild {
		c.buildSessionsLocked()
	}
	c.refreshSessionModeLocked()
	onUpdate := c.onUpdate
	c.mu.Unlock()

	if onUpdate != nil {
		onUpdate(exec)
	}
}

// buildSessionsLocked creates one form session per bound prompt, ordered by
// the prompt order field, all wired into the shared response bag.
func (c *Controller) buildSessionsLocked() {
	prompts := append([]BoundPrompt(nil), c.current.Prompts...)
	sort.SliceStable(prompts, func(i, j int) bool {
		return prompts[i].Order < prompts[j].Order
	})

	readOnly := c.readOnlyLocked()
	c.sessions = c.sessions[:0]
	for _, prompt := range prompts {
		session := form.NewSession(prompt.Layout,
			form.WithData(c.seedDataLocked()),
			form.WithBindings(c.bindings),
			form.WithReadOnly(readOnly),
			form.WithOnChange(c.mergeChange),
			form.WithLogger(c.logger),
		)
		for key, value := range session.Values() {
			c.formData[key] = value
		}
		c.sessions = append(c.sessions, session)
	}
}

// seedDataLocked picks the data bag sessions seed from. A terminal
// execution shows what was actually submitted; everything else prefills
// from the input data.
func (c *Controller) seedDataLocked() map[string]any {
	if c.current.Status.Terminal() && len(c.current.ResponseData) > 0 {
		return c.current.ResponseData
	}
	return c.current.InputData
}

// refreshSessionModeLocked rebuilds sessions read-only once the execution
// turns terminal or expires. Server-reported response data wins over
// locally collected values; absent that, collected values are preserved.
func (c *Controller) refreshSessionModeLocked() {
	if !c.readOnlyLocked() {
		return
	}
	for i, session := range c.sessions {
		if !session.ReadOnly() {
			data := session.Values()
			if len(c.current.ResponseData) > 0 {
				data = c.current.ResponseData
			}
			c.sessions[i] = form.NewSession(session.Layout(),
				form.WithData(data),
				form.WithBindings(c.bindings),
				form.WithReadOnly(true),
				form.WithLogger(c.logger),
			)
		}
	}
}

func (c *Controller) mergeChange(change form.Change) {
	c.mu.Lock()
	c.formData[change.Field] = change.Value
	c.mu.Unlock()
}

// Sessions returns the form sessions of the bound prompts in display order.
func (c *Controller) Sessions() []*form.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*form.Session(nil), c.sessions...)
}

// Snapshot returns the last fetched execution; ok is false before the first
// successful fetch.
func (c *Controller) Snapshot() (PromptExecution, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current, c.fetched
}

// Missing reports whether the execution was not found; the host renders
// this as a terminal banner.
func (c *Controller) Missing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.missing
}

// IsReadOnly reports whether the forms must render disabled: not yet
// fetched, missing, expired, completed, or failed-like.
func (c *Controller) IsReadOnly() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readOnlyLocked()
}

func (c *Controller) readOnlyLocked() bool {
	if !c.fetched || c.missing {
		return true
	}
	if c.current.Expired(c.now()) {
		return true
	}
	return c.current.Status == StatusCompleted || c.current.Status.FailedLike()
}

// IsFormValid reports whether every bound prompt's validation passes, for
// host submit-button enablement.
func (c *Controller) IsFormValid() bool {
	c.mu.Lock()
	sessions := append([]*form.Session(nil), c.sessions...)
	c.mu.Unlock()
	for _, session := range sessions {
		if !session.Validation().IsValid {
			return false
		}
	}
	return true
}

// FormData returns a copy of the aggregated response bag, including any
// reserved keys a host may have merged in.
func (c *Controller) FormData() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]any, len(c.formData))
	for key, value := range c.formData {
		out[key] = value
	}
	return out
}

// Submit sends the aggregated form data exactly once. The gate mirrors the
// host's submit-button enablement: read-only and invalid states are
// rejected before any network call. The reserved validation key is stripped
// from the payload. A successful submit triggers an immediate refetch
// rather than an optimistic local transition, so the displayed status
// always reflects server truth.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.submitted:
		c.mu.Unlock()
		return ErrAlreadySubmitted
	case c.readOnlyLocked():
		c.mu.Unlock()
		return ErrReadOnly
	}
	payload := form.StripValidation(c.formData)
	c.mu.Unlock()

	if !c.IsFormValid() {
		return ErrInvalid
	}

	if err := c.client.SubmitExecution(ctx, c.id, payload); err != nil {
		return fmt.Errorf("execution: submit %q: %w", c.id, err)
	}

	c.mu.Lock()
	c.submitted = true
	c.mu.Unlock()

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("post-submit refresh failed", zap.String("id", c.id), zap.Error(err))
	}
	return nil
}
