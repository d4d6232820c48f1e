// Package loader reads prompt layout documents from files, fs.FS bundles, or
// raw bytes. Documents may be JSON (the canonical persisted shape) or YAML
// (authoring convenience); YAML is normalized through the JSON shape so both
// paths share one decoder.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS supplies an fs.FS used to resolve relative document names.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// Loader resolves layout documents by path or name.
type Loader struct {
	fs fs.FS
}

// New constructs a Loader applying any provided options.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// LoadFile reads and decodes a layout document from disk. The decoded layout
// is normalized (positions and canvas clamped) but not validated; callers
// that require the structural invariants call Validate themselves.
func (l *Loader) LoadFile(ctx context.Context, path string) (layout.PromptLayout, error) {
	if path == "" {
		return layout.PromptLayout{}, errors.New("loader: file path is required")
	}
	if err := ctx.Err(); err != nil {
		return layout.PromptLayout{}, err
	}

	var (
		data []byte
		err  error
	)
	if l.fs != nil {
		data, err = fs.ReadFile(l.fs, path)
	} else {
		var abs string
		abs, err = filepath.Abs(path)
		if err == nil {
			data, err = os.ReadFile(abs)
		}
	}
	if err != nil {
		return layout.PromptLayout{}, fmt.Errorf("loader: read %q: %w", path, err)
	}

	return Decode(data, FormatForPath(path))
}

// Format names a supported document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath guesses the document format from a file extension, falling
// back to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a layout document in the given format and normalizes it.
func Decode(data []byte, format Format) (layout.PromptLayout, error) {
	switch format {
	case FormatYAML:
		return decodeYAML(data)
	case FormatJSON, "":
		parsed, err := layout.Parse(data)
		if err != nil {
			return layout.PromptLayout{}, fmt.Errorf("loader: %w", err)
		}
		return parsed.Normalize(), nil
	default:
		return layout.PromptLayout{}, fmt.Errorf("loader: unsupported format %q", format)
	}
}

func decodeYAML(data []byte) (layout.PromptLayout, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return layout.PromptLayout{}, fmt.Errorf("loader: decode yaml: %w", err)
	}

	// Round-trip through JSON so the layout struct tags stay the single
	// source of truth for field naming.
	raw, err := json.Marshal(doc)
	if err != nil {
		return layout.PromptLayout{}, fmt.Errorf("loader: normalize yaml: %w", err)
	}
	parsed, err := layout.Parse(raw)
	if err != nil {
		return layout.PromptLayout{}, fmt.Errorf("loader: %w", err)
	}
	return parsed.Normalize(), nil
}
