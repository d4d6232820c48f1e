package render

import (
	"context"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// Renderer interprets a prompt layout into a byte representation (HTML, a
// terminal transcript, etc.). Renderers must skip components whose type they
// do not recognise; unknown types are a forward-compatibility escape hatch,
// not an error.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, l layout.PromptLayout, options RenderOptions) ([]byte, error)
}
