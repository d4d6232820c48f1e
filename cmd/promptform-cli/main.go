package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-promptform/pkg/form"
	"github.com/goliatone/go-promptform/pkg/layout"
	layoutloader "github.com/goliatone/go-promptform/pkg/layout/loader"
	"github.com/goliatone/go-promptform/pkg/orchestrator"
	"github.com/goliatone/go-promptform/pkg/render"
	"github.com/goliatone/go-promptform/pkg/renderers/html"
	"github.com/goliatone/go-promptform/pkg/renderers/tui"
	"github.com/goliatone/go-promptform/pkg/schemagen"
)

func main() {
	mode := flag.String("mode", "render", "one of: render, validate, fill, schema")
	source := flag.String("source", "layout.json", "layout document path (JSON or YAML)")
	renderer := flag.String("renderer", "html", "renderer to use for -mode render")
	output := flag.String("output", "", "output file (stdout if empty)")
	title := flag.String("title", "promptform", "document title for -mode schema")
	flag.Parse()

	ctx := context.Background()

	var (
		result []byte
		err    error
	)
	switch *mode {
	case "render":
		result, err = runRender(ctx, *source, *renderer)
	case "validate":
		err = runValidate(ctx, *source)
		if err == nil {
			result = []byte("ok\n")
		}
	case "fill":
		result, err = runFill(ctx, *source)
	case "schema":
		result, err = runSchema(ctx, *source, *title)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatalf("promptform: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result, 0o644); err != nil {
			log.Fatalf("promptform: write output: %v", err)
		}
		fmt.Printf("Output written to %s\n", *output)
	} else {
		fmt.Print(string(result))
	}
}

func runRender(ctx context.Context, source, renderer string) ([]byte, error) {
	registry := render.NewRegistry()
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, err
	}
	registry.MustRegister(htmlRenderer)
	if !registry.Has(renderer) {
		return nil, fmt.Errorf("unknown renderer %q, available: %s", renderer, strings.Join(registry.List(), ", "))
	}

	gen := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer("html"),
	)
	return gen.Generate(ctx, orchestrator.Request{
		Source:   source,
		Renderer: renderer,
	})
}

func runValidate(ctx context.Context, source string) error {
	doc, err := layoutloader.New().LoadFile(ctx, source)
	if err != nil {
		return err
	}
	doc = doc.Normalize()
	return doc.Validate()
}

func runFill(ctx context.Context, source string) ([]byte, error) {
	doc, err := layoutloader.New().LoadFile(ctx, source)
	if err != nil {
		return nil, err
	}
	doc = doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	session := form.NewSession(doc)
	filler := tui.New()
	values, err := filler.Run(ctx, session)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return nil, errors.New("aborted")
		}
		return nil, err
	}

	return marshalIndent(form.StripValidation(values))
}

func runSchema(ctx context.Context, source, title string) ([]byte, error) {
	doc, err := layoutloader.New().LoadFile(ctx, source)
	if err != nil {
		return nil, err
	}
	doc = doc.Normalize()
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	schema, err := schemagen.Document(title, map[string]layout.PromptLayout{"Prompt": doc})
	if err != nil {
		return nil, err
	}
	return marshalIndent(schema)
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
