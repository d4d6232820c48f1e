// Package promptform builds interactive prompt forms from positional layout
// documents. A layout places components (labels, inputs, selects, checkboxes,
// radios, dividers, tables) on a canvas; this package loads such documents,
// interprets them into live form sessions, and renders them through pluggable
// renderers.
//
// The root package re-exports the orchestrator entry points so most callers
// only need a single import. The subpackages remain available for callers
// that want to compose the pipeline themselves:
//
//   - pkg/layout holds the document model and its invariants.
//   - pkg/canvas implements the editing surface (drag, drop, resize).
//   - pkg/form interprets layouts into sessions with values and validation.
//   - pkg/execution drives the run lifecycle around bound prompts.
//   - pkg/save debounces layout persistence.
//   - pkg/render and pkg/renderers provide the output side.
package promptform

import (
	"context"

	"github.com/goliatone/go-promptform/pkg/layout"
	"github.com/goliatone/go-promptform/pkg/orchestrator"
	"github.com/goliatone/go-promptform/pkg/render"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values, attach table bindings, or switch to read-only output.
type RenderOptions = render.RenderOptions

// Request describes the inputs required to render a form from a layout
// document.
type Request = orchestrator.Request

// Transformer mutates a layout between loading and rendering.
type Transformer = orchestrator.Transformer

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the layout document at path and renders it using the
// named renderer. It is the simplest entry point for callers that just want
// HTML output.
func GenerateHTML(ctx context.Context, path, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   path,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromLayout renders a form using a pre-built layout, bypassing
// the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromLayout(ctx context.Context, doc layout.PromptLayout, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Layout:   &doc,
		Renderer: rendererName,
	})
}

// WithRegistry, WithDefaultRenderer, and the other orchestrator options are
// re-exported so callers composing GenerateHTML do not need a second import.
var (
	WithLoader          = orchestrator.WithLoader
	WithRegistry        = orchestrator.WithRegistry
	WithDefaultRenderer = orchestrator.WithDefaultRenderer
	WithTransformers    = orchestrator.WithTransformers
	WithLogger          = orchestrator.WithLogger
)
