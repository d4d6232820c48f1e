package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-promptform/pkg/form"
	"github.com/goliatone/go-promptform/pkg/layout"
)

// Option configures a Filler.
type Option func(*Filler)

// WithDriver injects a PromptDriver; the default is the survey-backed one.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Filler walks a form session's addressable fields and collects values
// interactively, one prompt per field.
type Filler struct {
	driver PromptDriver
}

// New constructs a Filler applying any provided options.
func New(options ...Option) *Filler {
	f := &Filler{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Run prompts for every addressable field in placement order and returns
// the session's submittable values. Required fields are enforced inline for
// text inputs and re-checked through the session validation before
// returning; an invalid result after the pass is an error.
func (f *Filler) Run(ctx context.Context, session *form.Session) (map[string]any, error) {
	if session == nil {
		return nil, errors.New("tui: session is required")
	}
	if session.ReadOnly() {
		return nil, ErrReadOnly
	}

	for _, field := range session.Fields() {
		if err := f.fill(ctx, session, field); err != nil {
			return nil, err
		}
	}

	if validation := session.Validation(); !validation.IsValid {
		return nil, fmt.Errorf("tui: missing required fields: %s",
			strings.Join(validation.MissingRequired, ", "))
	}
	return session.Values(), nil
}

func (f *Filler) fill(ctx context.Context, session *form.Session, field form.Field) error {
	switch field.Type {
	case layout.TypeTextInput:
		return f.fillText(ctx, session, field)
	case layout.TypeSelect, layout.TypeRadio:
		return f.fillChoice(ctx, session, field)
	case layout.TypeCheckbox:
		return f.fillCheckbox(ctx, session, field)
	case layout.TypeTable:
		return f.fillTable(ctx, session, field)
	default:
		return nil
	}
}

func (f *Filler) fillText(ctx context.Context, session *form.Session, field form.Field) error {
	cfg := InputConfig{
		Message:     messageFor(field),
		Default:     stringValue(field.Value),
		Placeholder: field.Item.Config.Placeholder,
	}
	if field.Required {
		cfg.Validator = func(value string) error {
			if strings.TrimSpace(value) == "" {
				return errors.New("a value is required")
			}
			return nil
		}
	}
	value, err := f.driver.Input(ctx, cfg)
	if err != nil {
		return err
	}
	return session.SetValue(field.Key, value)
}

func (f *Filler) fillChoice(ctx context.Context, session *form.Session, field form.Field) error {
	if len(field.Options) == 0 {
		return nil
	}
	labels := make([]string, len(field.Options))
	defaultIndex := -1
	current := stringValue(field.Value)
	for i, opt := range field.Options {
		labels[i] = opt.Label
		if opt.Value == current && current != "" {
			defaultIndex = i
		}
	}

	idx, err := f.driver.Select(ctx, SelectConfig{
		Message:      messageFor(field),
		Options:      labels,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return nil
	}
	return session.SetValue(field.Key, field.Options[idx].Value)
}

func (f *Filler) fillCheckbox(ctx context.Context, session *form.Session, field form.Field) error {
	checked, err := f.driver.Confirm(ctx, ConfirmConfig{
		Message: messageFor(field),
		Default: field.Value == true,
	})
	if err != nil {
		return err
	}
	return session.SetValue(field.Key, checked)
}

func (f *Filler) fillTable(ctx context.Context, session *form.Session, field form.Field) error {
	binding, ok := session.Binding(field.Key)
	if !ok || len(binding.Rows) == 0 {
		return nil
	}

	labels := make([]string, len(binding.Rows))
	for i, row := range binding.Rows {
		labels[i] = rowPreview(row)
	}

	switch binding.Selection.Mode {
	case layout.TableSelectionSingle:
		idx, err := f.driver.Select(ctx, SelectConfig{
			Message: messageFor(field),
			Options: labels,
		})
		if err != nil {
			return err
		}
		if idx < 0 {
			return nil
		}
		return session.SelectRow(field.Item.ID, idx)
	case layout.TableSelectionMulti:
		var defaults []int
		if indices, ok := field.Value.([]int); ok {
			defaults = indices
		}
		indices, err := f.driver.MultiSelect(ctx, SelectConfig{
			Message:  messageFor(field),
			Options:  labels,
			Defaults: defaults,
		})
		if err != nil {
			return err
		}
		// SelectRow toggles membership, so only rows whose desired state
		// differs from the current selection get toggled.
		desired := make(map[int]struct{}, len(indices))
		for _, idx := range indices {
			desired[idx] = struct{}{}
		}
		current := make(map[int]struct{}, len(defaults))
		if existing, ok := field.Value.([]int); ok {
			for _, idx := range existing {
				current[idx] = struct{}{}
			}
		}
		for idx := range binding.Rows {
			_, want := desired[idx]
			_, have := current[idx]
			if want != have {
				if err := session.SelectRow(field.Item.ID, idx); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		// Display-only table.
		return f.driver.Info(ctx, fmt.Sprintf("%s (%d rows)", messageFor(field), len(binding.Rows)))
	}
}

func messageFor(field form.Field) string {
	label := strings.TrimSpace(field.Label)
	if label == "" {
		label = field.Key
	}
	if field.Required {
		label += " *"
	}
	return label
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

func rowPreview(row []any) string {
	parts := make([]string, 0, len(row))
	for _, cell := range row {
		parts = append(parts, strings.TrimSpace(fmt.Sprint(cell)))
	}
	return strings.Join(parts, " | ")
}
