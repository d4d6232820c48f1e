package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-promptform/pkg/form"
)

// RenderOptions carry per-request data renderers can use without mutating
// the layout itself.
type RenderOptions struct {
	// Values pre-populates controls, keyed by logical field key.
	Values map[string]any
	// Bindings supplies runtime table data keyed by logical field key.
	Bindings form.Bindings
	// ReadOnly renders every control disabled; no runtime change events are
	// wired into the output.
	ReadOnly bool
	// UniformWidth stretches controls to a shared width instead of their
	// per-component configured widths, used when several prompts render in
	// one execution view.
	UniformWidth bool
	// Theme supplies resolved theme tokens, partial overrides, and CSS
	// variables for renderers that emit chrome.
	Theme *theme.RendererConfig
	// HiddenFields adds name/value pairs emitted as hidden inputs by HTML
	// renderers (CSRF tokens, version stamps).
	HiddenFields map[string]string
}
