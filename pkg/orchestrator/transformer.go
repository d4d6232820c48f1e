package orchestrator

import (
	"context"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// Transformer mutates a layout after loading but before rendering. Callers
// can use transformers to inject defaults, rewrite labels, or prune items
// without touching the stored document.
type Transformer interface {
	Transform(ctx context.Context, doc *layout.PromptLayout) error
}

// TransformerFunc adapts a function to the Transformer interface.
type TransformerFunc func(ctx context.Context, doc *layout.PromptLayout) error

// Transform implements Transformer.
func (f TransformerFunc) Transform(ctx context.Context, doc *layout.PromptLayout) error {
	return f(ctx, doc)
}

// Chain runs transformers in order, stopping at the first error.
func Chain(transformers ...Transformer) Transformer {
	return TransformerFunc(func(ctx context.Context, doc *layout.PromptLayout) error {
		for _, t := range transformers {
			if t == nil {
				continue
			}
			if err := t.Transform(ctx, doc); err != nil {
				return err
			}
		}
		return nil
	})
}

// EnsureIDs mints identifiers for items that arrive without one, which is
// common for hand-written YAML documents.
func EnsureIDs() Transformer {
	return TransformerFunc(func(_ context.Context, doc *layout.PromptLayout) error {
		for i := range doc.Items {
			if doc.Items[i].ID == "" {
				doc.Items[i].ID = layout.MintID()
			}
		}
		return nil
	})
}

// DropUnknownTypes removes items whose component type is not recognised, so
// documents produced by newer tooling still render their known subset.
func DropUnknownTypes() Transformer {
	return TransformerFunc(func(_ context.Context, doc *layout.PromptLayout) error {
		kept := doc.Items[:0]
		for _, item := range doc.Items {
			if item.Type.Known() {
				kept = append(kept, item)
			}
		}
		doc.Items = kept
		return nil
	})
}
