package form

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// ErrReadOnly is returned by mutating session operations once the session
// has been frozen (completed, expired, or display-only).
var ErrReadOnly = fmt.Errorf("form: session is read-only")

// Change is the notification emitted after every accepted field write. It
// deliberately carries only the written field plus the fresh validation
// summary, not the whole form state; hosts with many fields merge it into
// their own aggregate.
type Change struct {
	Field      string
	Value      any
	Validation Validation
}

// Payload renders the change in its wire shape: the written field keyed by
// its logical id plus the reserved validation entry.
func (c Change) Payload() map[string]any {
	return map[string]any{
		c.Field:       c.Value,
		ValidationKey: c.Validation,
	}
}

// ChangeFunc receives change notifications from a session.
type ChangeFunc func(Change)

// Option configures a Session.
type Option func(*Session)

// WithData seeds the session with externally supplied field values.
func WithData(values map[string]any) Option {
	return func(s *Session) {
		for key, value := range values {
			if key == ValidationKey {
				continue
			}
			s.values[key] = value
		}
	}
}

// WithBindings supplies runtime table bindings keyed by logical field key.
func WithBindings(bindings Bindings) Option {
	return func(s *Session) {
		s.bindings = bindings
	}
}

// WithReadOnly freezes the session: controls render disabled and every
// write is rejected without emitting events.
func WithReadOnly(readOnly bool) Option {
	return func(s *Session) {
		s.readOnly = readOnly
	}
}

// WithOnChange registers the host's change callback.
func WithOnChange(fn ChangeFunc) Option {
	return func(s *Session) {
		s.onChange = fn
	}
}

// WithLogger injects a logger for skipped-component diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is the live interpretation of one prompt layout: current values,
// table sub-state, and the derived validation summary.
type Session struct {
	layout   layout.PromptLayout
	values   map[string]any
	bindings Bindings
	readOnly bool
	onChange ChangeFunc
	logger   *zap.Logger
	tables   map[string]*TableState
}

// NewSession interprets a layout against externally supplied data. Values
// are seeded from the data option first; afterwards every select or radio
// field still without a value resolves its default from the first option
// marked as default.
func NewSession(l layout.PromptLayout, options ...Option) *Session {
	s := &Session{
		layout: l.Clone(),
		values: make(map[string]any),
		logger: zap.NewNop(),
		tables: make(map[string]*TableState),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	s.seedDefaults()
	s.seedTableSelections()
	return s
}

func (s *Session) seedDefaults() {
	for _, item := range s.layout.Items {
		if item.Type != layout.TypeSelect && item.Type != layout.TypeRadio {
			continue
		}
		key := item.FieldKey()
		if value, ok := s.values[key]; ok && value != nil {
			continue
		}
		if def, ok := layout.DefaultOption(item.Config.Options); ok {
			s.values[key] = def.Value
		}
	}
}

// Layout returns the layout this session interprets.
func (s *Session) Layout() layout.PromptLayout {
	return s.layout
}

// ReadOnly reports whether the session rejects writes.
func (s *Session) ReadOnly() bool {
	return s.readOnly
}

// Values returns a copy of the current submittable values. The reserved
// validation key is never present here.
func (s *Session) Values() map[string]any {
	out := make(map[string]any, len(s.values))
	for key, value := range s.values {
		out[key] = value
	}
	return out
}

// Value reads a single field.
func (s *Session) Value(field string) (any, bool) {
	value, ok := s.values[field]
	return value, ok
}

// Validation recomputes the current validation summary.
func (s *Session) Validation() Validation {
	return Validate(s.layout, s.values)
}

// SetValue writes a field value, recomputes validation, and notifies the
// host. Writes against a read-only session return ErrReadOnly and emit
// nothing. Writes to the reserved validation key are rejected.
func (s *Session) SetValue(field string, value any) error {
	if s.readOnly {
		return ErrReadOnly
	}
	if field == "" {
		return fmt.Errorf("form: field key is required")
	}
	if field == ValidationKey {
		return fmt.Errorf("form: %q is a reserved key", ValidationKey)
	}
	s.values[field] = value
	s.emit(field, value)
	return nil
}

func (s *Session) emit(field string, value any) {
	if s.onChange == nil {
		return
	}
	s.onChange(Change{
		Field:      field,
		Value:      value,
		Validation: s.Validation(),
	})
}
