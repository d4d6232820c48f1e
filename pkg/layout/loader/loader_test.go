package loader_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptform/pkg/layout"
	"github.com/goliatone/go-promptform/pkg/layout/loader"
)

const jsonDoc = `{
  "canvasWidth": 800,
  "canvasHeight": 600,
  "items": [
    {
      "id": "item-name",
      "type": "text-input",
      "x": -10,
      "y": 40,
      "label": "Full name",
      "config": {"componentId": "customer-name", "required": true}
    }
  ]
}`

const yamlDoc = `canvasWidth: 800
canvasHeight: 600
items:
  - id: item-name
    type: text-input
    x: -10
    y: 40
    label: Full name
    config:
      componentId: customer-name
      required: true
`

func TestLoadFileDecodesBothFormats(t *testing.T) {
	fsys := fstest.MapFS{
		"prompt.json": &fstest.MapFile{Data: []byte(jsonDoc)},
		"prompt.yaml": &fstest.MapFile{Data: []byte(yamlDoc)},
	}
	l := loader.New(loader.WithFS(fsys))

	fromJSON, err := l.LoadFile(context.Background(), "prompt.json")
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	fromYAML, err := l.LoadFile(context.Background(), "prompt.yaml")
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("yaml and json decode differ (-json +yaml):\n%s", diff)
	}

	item := fromJSON.Items[0]
	if item.Config.ComponentID != "customer-name" || !item.Config.Required {
		t.Fatalf("decoded config mismatch: %+v", item.Config)
	}
	// Loaded documents come back normalized.
	if item.X != 0 {
		t.Fatalf("x = %g, want clamped 0", item.X)
	}
}

func TestLoadFileErrors(t *testing.T) {
	l := loader.New(loader.WithFS(fstest.MapFS{}))

	if _, err := l.LoadFile(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := l.LoadFile(context.Background(), "missing.json"); err == nil {
		t.Fatal("expected error for missing file")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.LoadFile(ctx, "prompt.json"); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestFormatForPath(t *testing.T) {
	cases := map[string]loader.Format{
		"prompt.yaml":    loader.FormatYAML,
		"prompt.YML":     loader.FormatYAML,
		"prompt.json":    loader.FormatJSON,
		"prompt.unknown": loader.FormatJSON,
	}
	for path, want := range cases {
		if got := loader.FormatForPath(path); got != want {
			t.Fatalf("FormatForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestDecodeRejectsUnknownFormat(t *testing.T) {
	if _, err := loader.Decode([]byte("{}"), loader.Format("toml")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestDecodeKeepsUnknownComponentTypes(t *testing.T) {
	doc := `{"canvasWidth":800,"canvasHeight":600,"items":[{"id":"a","type":"sparkline","x":1,"y":2,"label":"","config":{}}]}`
	parsed, err := loader.Decode([]byte(doc), loader.FormatJSON)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(parsed.Items) != 1 || parsed.Items[0].Type != layout.ComponentType("sparkline") {
		t.Fatalf("unknown component type not preserved: %+v", parsed.Items)
	}
}
