package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptform/pkg/layout"
	layoutloader "github.com/goliatone/go-promptform/pkg/layout/loader"
	"github.com/goliatone/go-promptform/pkg/orchestrator"
	"github.com/goliatone/go-promptform/pkg/render"
	"github.com/goliatone/go-promptform/pkg/testsupport"
)

type captureRenderer struct {
	name     string
	lastDoc  layout.PromptLayout
	lastOpts render.RenderOptions
	calls    int
}

func (r *captureRenderer) Name() string        { return r.name }
func (r *captureRenderer) ContentType() string { return "text/plain" }
func (r *captureRenderer) Render(_ context.Context, l layout.PromptLayout, options render.RenderOptions) ([]byte, error) {
	r.calls++
	r.lastDoc = l
	r.lastOpts = options
	return []byte("rendered:" + r.name), nil
}

func registryWith(renderers ...render.Renderer) *render.Registry {
	registry := render.NewRegistry()
	for _, r := range renderers {
		registry.MustRegister(r)
	}
	return registry
}

func TestGenerateFromLayout(t *testing.T) {
	renderer := &captureRenderer{name: "capture"}
	gen := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer("capture"),
	)

	doc := testsupport.SampleLayout()
	out, err := gen.Generate(context.Background(), orchestrator.Request{
		Layout: &doc,
		RenderOptions: render.RenderOptions{
			ReadOnly: true,
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(out) != "rendered:capture" {
		t.Fatalf("output = %q", out)
	}
	if !renderer.lastOpts.ReadOnly {
		t.Fatal("render options not forwarded")
	}
	if len(renderer.lastDoc.Items) != len(doc.Items) {
		t.Fatal("layout not forwarded")
	}
}

func TestGenerateMergesHiddenFields(t *testing.T) {
	renderer := &captureRenderer{name: "capture"}
	gen := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer("capture"),
	)

	doc := testsupport.SampleLayout()
	_, err := gen.Generate(context.Background(), orchestrator.Request{
		Layout: &doc,
		RenderOptions: render.RenderOptions{
			HiddenFields: map[string]string{"version": "1", "origin": "editor"},
		},
		HiddenFields: []render.HiddenField{
			render.CSRFToken("_csrf", "token123"),
			render.VersionField("version", 2),
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	want := map[string]string{
		"_csrf":   "token123",
		"origin":  "editor",
		"version": "2",
	}
	if diff := cmp.Diff(want, renderer.lastOpts.HiddenFields); diff != "" {
		t.Fatalf("hidden fields mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateFromSource(t *testing.T) {
	fsys := fstest.MapFS{
		"prompt.json": &fstest.MapFile{Data: []byte(
			`{"canvasWidth":800,"canvasHeight":600,"items":[{"id":"a","type":"label","x":1,"y":2,"label":"Hi","config":{}}]}`,
		)},
	}
	renderer := &captureRenderer{name: "capture"}
	gen := orchestrator.New(
		orchestrator.WithLoader(layoutloader.New(layoutloader.WithFS(fsys))),
		orchestrator.WithRegistry(registryWith(renderer)),
	)

	if _, err := gen.Generate(context.Background(), orchestrator.Request{
		Source:   "prompt.json",
		Renderer: "capture",
	}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatalf("render calls = %d, want 1", renderer.calls)
	}
}

func TestGenerateRequiresSourceOrLayout(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithRegistry(registryWith(&captureRenderer{name: "capture"})))
	if _, err := gen.Generate(context.Background(), orchestrator.Request{}); err == nil {
		t.Fatal("expected error without source or layout")
	}
}

func TestGenerateRejectsInvalidLayout(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithRegistry(registryWith(&captureRenderer{name: "capture"})))
	doc := layout.PromptLayout{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Items: []layout.ComponentItem{
			{ID: "dup", Type: layout.TypeLabel},
			{ID: "dup", Type: layout.TypeLabel},
		},
	}
	_, err := gen.Generate(context.Background(), orchestrator.Request{Layout: &doc, Renderer: "capture"})
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("err = %v, want duplicate id failure", err)
	}
}

func TestRendererFallback(t *testing.T) {
	renderer := &captureRenderer{name: "only"}
	gen := orchestrator.New(orchestrator.WithRegistry(registryWith(renderer)))
	doc := testsupport.SampleLayout()

	// Default renderer "html" is absent; an empty request falls back to the
	// single registered renderer.
	if _, err := gen.Generate(context.Background(), orchestrator.Request{Layout: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if renderer.calls != 1 {
		t.Fatal("fallback renderer not used")
	}

	// An explicitly named missing renderer is an error, not a fallback.
	if _, err := gen.Generate(context.Background(), orchestrator.Request{
		Layout:   &doc,
		Renderer: "pdf",
	}); err == nil {
		t.Fatal("expected error for unknown named renderer")
	}
}

func TestTransformersRunBeforeValidation(t *testing.T) {
	renderer := &captureRenderer{name: "capture"}
	gen := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithTransformers(orchestrator.EnsureIDs(), orchestrator.DropUnknownTypes()),
	)

	doc := layout.PromptLayout{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Items: []layout.ComponentItem{
			{Type: layout.TypeLabel, Label: "No id yet"},
			{ID: "x", Type: layout.ComponentType("sparkline")},
		},
	}

	if _, err := gen.Generate(context.Background(), orchestrator.Request{Layout: &doc}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(renderer.lastDoc.Items) != 1 {
		t.Fatalf("items = %d, want unknown type dropped", len(renderer.lastDoc.Items))
	}
	if renderer.lastDoc.Items[0].ID == "" {
		t.Fatal("missing id not minted")
	}

	// The caller's document is untouched.
	if doc.Items[0].ID != "" {
		t.Fatal("transformers must run against a copy")
	}
}

func TestTransformerErrorsAbortGeneration(t *testing.T) {
	renderer := &captureRenderer{name: "capture"}
	boom := errors.New("boom")
	gen := orchestrator.New(
		orchestrator.WithRegistry(registryWith(renderer)),
		orchestrator.WithDefaultRenderer("capture"),
		orchestrator.WithTransformers(orchestrator.TransformerFunc(
			func(context.Context, *layout.PromptLayout) error { return boom },
		)),
	)

	doc := testsupport.SampleLayout()
	if _, err := gen.Generate(context.Background(), orchestrator.Request{Layout: &doc}); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped transformer failure", err)
	}
	if renderer.calls != 0 {
		t.Fatal("renderer must not run after a transformer failure")
	}
}

func TestChainStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	chain := orchestrator.Chain(
		orchestrator.TransformerFunc(func(context.Context, *layout.PromptLayout) error { return boom }),
		orchestrator.TransformerFunc(func(context.Context, *layout.PromptLayout) error {
			ran = true
			return nil
		}),
	)
	doc := layout.New()
	if err := chain.Transform(context.Background(), &doc); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if ran {
		t.Fatal("chain must stop at the first error")
	}
}
