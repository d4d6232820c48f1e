package canvas

import "github.com/goliatone/go-promptform/pkg/layout"

// ConfigPatch is a partial component configuration. Nil fields are left
// untouched; set fields replace the current value (shallow merge, matching
// the property-panel semantics where each control edits one key).
type ConfigPatch struct {
	ComponentID *string

	Width        *int
	Height       *int
	FontSize     *int
	TextColor    *string
	Background   *string
	BorderColor  *string
	BorderWidth  *int
	BorderStyle  *string
	BorderRadius *int

	Required    *bool
	Disabled    *bool
	Placeholder *string

	Options       []layout.Option
	LabelPosition *string
	Orientation   *string

	Thickness *int
	Style     *string

	Columns       []layout.TableColumn
	Selection     *layout.TableSelection
	ShowGridLines *bool
	GridLineStyle *string
}

func (p ConfigPatch) apply(cfg *layout.Config) {
	if p.ComponentID != nil {
		cfg.ComponentID = *p.ComponentID
	}
	if p.Width != nil {
		cfg.Width = *p.Width
	}
	if p.Height != nil {
		cfg.Height = *p.Height
	}
	if p.FontSize != nil {
		cfg.FontSize = *p.FontSize
	}
	if p.TextColor != nil {
		cfg.TextColor = *p.TextColor
	}
	if p.Background != nil {
		cfg.Background = *p.Background
	}
	if p.BorderColor != nil {
		cfg.BorderColor = *p.BorderColor
	}
	if p.BorderWidth != nil {
		cfg.BorderWidth = *p.BorderWidth
	}
	if p.BorderStyle != nil {
		cfg.BorderStyle = *p.BorderStyle
	}
	if p.BorderRadius != nil {
		cfg.BorderRadius = *p.BorderRadius
	}
	if p.Required != nil {
		cfg.Required = *p.Required
	}
	if p.Disabled != nil {
		cfg.Disabled = *p.Disabled
	}
	if p.Placeholder != nil {
		cfg.Placeholder = *p.Placeholder
	}
	if p.Options != nil {
		cfg.Options = append([]layout.Option(nil), p.Options...)
	}
	if p.LabelPosition != nil {
		cfg.LabelPosition = *p.LabelPosition
	}
	if p.Orientation != nil {
		cfg.Orientation = *p.Orientation
	}
	if p.Thickness != nil {
		cfg.Thickness = *p.Thickness
	}
	if p.Style != nil {
		cfg.Style = *p.Style
	}
	if p.Columns != nil {
		cfg.Columns = append([]layout.TableColumn(nil), p.Columns...)
	}
	if p.Selection != nil {
		sel := *p.Selection
		cfg.Selection = &sel
	}
	if p.ShowGridLines != nil {
		cfg.ShowGridLines = *p.ShowGridLines
	}
	if p.GridLineStyle != nil {
		cfg.GridLineStyle = *p.GridLineStyle
	}
}

// Ptr is a convenience for building patches from literals.
func Ptr[T any](v T) *T {
	return &v
}
