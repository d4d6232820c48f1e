// Package html renders a prompt layout into a standalone absolutely
// positioned HTML form. It is a pure interpreter of the layout document: the
// same markup backs the editor's live preview and the end-user execution
// view, differing only through the render options (values, bindings,
// read-only).
package html

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-promptform/pkg/layout"
	"github.com/goliatone/go-promptform/pkg/render"
	rendertemplate "github.com/goliatone/go-promptform/pkg/render/template"
	gotemplate "github.com/goliatone/go-promptform/pkg/render/template/gotemplate"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	sanitizer        *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplateRenderer injects a custom template engine implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithSanitizer overrides the label sanitization policy. The default strips
// everything but inline formatting.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.sanitizer = policy
		}
	}
}

// Renderer is the HTML interpreter of prompt layouts.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		built, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	sanitizer := cfg.sanitizer
	if sanitizer == nil {
		sanitizer = bluemonday.StrictPolicy()
	}

	return &Renderer{templates: engine, sanitizer: sanitizer}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render interprets the layout against the options' values and bindings.
// Components with unknown types render nothing.
func (r *Renderer) Render(ctx context.Context, l layout.PromptLayout, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := l.Normalize()
	controls, err := r.renderControls(normalized, options)
	if err != nil {
		return nil, err
	}

	result, err := r.templates.RenderTemplate("templates/form", map[string]any{
		"canvasWidth":  int(normalized.CanvasWidth),
		"canvasHeight": int(normalized.CanvasHeight),
		"controls":     controls,
		"hiddenFields": render.SortedHiddenFields(options.HiddenFields),
		"theme":        buildThemeContext(options.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}
