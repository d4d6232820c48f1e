package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/layout"
	layoutloader "github.com/goliatone/go-promptform/pkg/layout/loader"
	"github.com/goliatone/go-promptform/pkg/render"
	"github.com/goliatone/go-promptform/pkg/renderers/html"
)

const defaultRendererName = "html"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom layout document loader.
func WithLoader(l *layoutloader.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithTransformers registers transformers that can mutate layouts after
// loading but before rendering.
func WithTransformers(transformers ...Transformer) Option {
	return func(o *Orchestrator) {
		if len(transformers) == 0 {
			return
		}
		o.transformers = append(o.transformers, transformers...)
	}
}

// WithLogger attaches a logger for diagnostic output.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the full pipeline from layout document to rendered
// output. It applies sensible defaults (html renderer, embedded templates)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          *layoutloader.Loader
	registry        *render.Registry
	defaultRenderer string
	transformers    []Transformer
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a form from a layout
// document.
type Request struct {
	// Source is a path to a JSON or YAML layout document. Optional when
	// Layout is supplied.
	Source string

	// Layout allows callers to bypass the loader when they already have a
	// parsed layout.
	Layout *layout.PromptLayout

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// RenderOptions carries per-request instructions such as prefilled
	// values, table bindings, or read-only mode. When omitted, renderers
	// receive the zero-value struct.
	RenderOptions render.RenderOptions

	// HiddenFields are merged over RenderOptions.HiddenFields before
	// rendering; later entries win on name collisions. Build them with
	// render.Hidden, render.CSRFToken, or render.VersionField.
	HiddenFields []render.HiddenField
}

// Generate executes the loader, transformer, and renderer sequence and
// returns the rendered bytes (HTML for the default renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	doc, err := o.resolveLayout(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := o.applyTransformers(ctx, &doc); err != nil {
		return nil, err
	}

	doc = doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("orchestrator: validate layout: %w", err)
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	opts := req.RenderOptions
	if len(req.HiddenFields) > 0 {
		opts.HiddenFields = render.MergeHiddenFields(opts.HiddenFields, req.HiddenFields...)
	}

	output, err := renderer.Render(ctx, doc, opts)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	o.logger.Debug("rendered layout",
		zap.String("renderer", renderer.Name()),
		zap.Int("items", len(doc.Items)),
		zap.Int("bytes", len(output)))

	return output, nil
}

func (o *Orchestrator) resolveLayout(ctx context.Context, req Request) (layout.PromptLayout, error) {
	if req.Layout != nil {
		return req.Layout.Clone(), nil
	}
	if req.Source == "" {
		return layout.PromptLayout{}, errors.New("orchestrator: source or layout is required")
	}
	doc, err := o.loader.LoadFile(ctx, req.Source)
	if err != nil {
		return layout.PromptLayout{}, fmt.Errorf("orchestrator: load layout: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyTransformers(ctx context.Context, doc *layout.PromptLayout) error {
	for _, transformer := range o.transformers {
		if transformer == nil {
			continue
		}
		if err := transformer.Transform(ctx, doc); err != nil {
			return fmt.Errorf("orchestrator: transform layout: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = layoutloader.New()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := html.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
