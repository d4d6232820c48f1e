// Package canvas implements the interactive layout editor: placing
// components from a palette, selecting them, dragging them (singly or as a
// group), resizing the canvas, and editing per-component configuration. The
// editor owns no server state; it emits a fresh layout snapshot to the
// host's change callback after every committed mutation.
package canvas

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// Point is a position in canvas pixel space.
type Point struct {
	X float64
	Y float64
}

// ChangeFunc receives the layout snapshot after every committed mutation.
type ChangeFunc func(layout.PromptLayout)

// Option configures an Editor.
type Option func(*Editor)

// WithLayout seeds the editor with an existing layout.
func WithLayout(l layout.PromptLayout) Option {
	return func(e *Editor) {
		e.layout = l.Normalize()
	}
}

// WithOnChange registers the host's layout-change callback.
func WithOnChange(fn ChangeFunc) Option {
	return func(e *Editor) {
		e.onChange = fn
	}
}

// WithLogger injects a logger for recovered no-op diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Editor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Editor mutates an exclusively owned prompt layout in response to user
// gestures. At most one pointer gesture (drag or resize) is active at any
// instant; selection is the only interaction state that persists between
// gestures.
type Editor struct {
	layout    layout.PromptLayout
	selection map[string]struct{}
	onChange  ChangeFunc
	logger    *zap.Logger
	gesture   gesture
}

// New constructs an editor, starting from an empty default canvas unless a
// layout is supplied.
func New(options ...Option) *Editor {
	e := &Editor{
		layout:    layout.New(),
		selection: make(map[string]struct{}),
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Layout returns a snapshot of the current layout.
func (e *Editor) Layout() layout.PromptLayout {
	return e.layout.Clone()
}

// commit replaces the owned layout and notifies the host. Mutations always
// operate on a clone so no stale references observe the change.
func (e *Editor) commit(next layout.PromptLayout) {
	e.layout = next
	if e.onChange != nil {
		e.onChange(next.Clone())
	}
}

// DropPayload is the drag payload delivered to the canvas drop target. A
// palette drop carries a component type; a move gesture carries the dragged
// item's id plus the grab offset. The two share one drop target and are
// disambiguated by payload shape, not by a type tag.
type DropPayload struct {
	ComponentType layout.ComponentType
	Label         string
	ItemID        string
	GrabOffset    Point
}

// HandleDrop routes a drop to create-from-palette or move-existing based on
// the payload shape. A missing or malformed payload is a logged no-op: the
// user sees nothing, which is the deliberate recovery policy for garbled
// drag data.
func (e *Editor) HandleDrop(payload *DropPayload, at Point) {
	switch {
	case payload == nil:
		e.logger.Warn("drop ignored: missing payload")
	case payload.ItemID != "":
		e.Move(payload.ItemID, Point{X: at.X - payload.GrabOffset.X, Y: at.Y - payload.GrabOffset.Y})
	case payload.ComponentType != "":
		e.CreateFromPaletteDrop(*payload, at)
	default:
		e.logger.Warn("drop ignored: malformed payload")
	}
}

// CreateFromPaletteDrop mints a new component of the payload's type with a
// fresh structural id and logical field key, centers it under the pointer,
// and clamps it onto the canvas. The created item is returned for hosts that
// want to focus it; ok is false when the payload carries no usable type.
func (e *Editor) CreateFromPaletteDrop(payload DropPayload, at Point) (layout.ComponentItem, bool) {
	if payload.ComponentType == "" {
		e.logger.Warn("palette drop ignored: no component type")
		return layout.ComponentItem{}, false
	}

	item := layout.NewItem(payload.ComponentType, payload.Label)
	width, height := itemFootprint(item)
	item.X, item.Y = layout.ClampPosition(at.X-width/2, at.Y-height/2)

	next := e.layout.Clone()
	next.Items = append(next.Items, item)
	e.commit(next)
	e.logger.Debug("component placed",
		zap.String("id", item.ID),
		zap.String("type", string(item.Type)))
	return item, true
}

func itemFootprint(item layout.ComponentItem) (float64, float64) {
	width, height := float64(item.Config.Width), float64(item.Config.Height)
	if width <= 0 {
		width = 120
	}
	if height <= 0 {
		height = 32
	}
	return width, height
}

// Move repositions a single component, clamping both axes at zero. Used for
// drag drops and for the numeric position steppers. Unknown ids are logged
// no-ops.
func (e *Editor) Move(id string, to Point) {
	next := e.layout.Clone()
	for i := range next.Items {
		if next.Items[i].ID != id {
			continue
		}
		next.Items[i].X, next.Items[i].Y = layout.ClampPosition(to.X, to.Y)
		e.commit(next)
		return
	}
	e.logger.Warn("move ignored: unknown component", zap.String("id", id))
}

// Delete removes every component in the current selection set and clears
// the selection. There is no cascading deletion.
func (e *Editor) Delete() {
	if len(e.selection) == 0 {
		return
	}
	next := e.layout.Clone()
	kept := next.Items[:0]
	for _, item := range next.Items {
		if _, selected := e.selection[item.ID]; !selected {
			kept = append(kept, item)
		}
	}
	next.Items = kept
	e.selection = make(map[string]struct{})
	e.commit(next)
}

// UpdateConfig shallow-merges a partial configuration into a component's
// config. The effect is immediate; there is no transaction or undo.
func (e *Editor) UpdateConfig(id string, patch ConfigPatch) {
	next := e.layout.Clone()
	for i := range next.Items {
		if next.Items[i].ID != id {
			continue
		}
		patch.apply(&next.Items[i].Config)
		e.commit(next)
		return
	}
	e.logger.Warn("config update ignored: unknown component", zap.String("id", id))
}

// SetLabel updates a component's fallback display text.
func (e *Editor) SetLabel(id, label string) {
	next := e.layout.Clone()
	for i := range next.Items {
		if next.Items[i].ID != id {
			continue
		}
		next.Items[i].Label = label
		e.commit(next)
		return
	}
	e.logger.Warn("label update ignored: unknown component", zap.String("id", id))
}
