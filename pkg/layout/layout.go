package layout

import (
	"encoding/json"
	"fmt"
)

// Canvas and position floor constants shared by the editor and the runtime.
const (
	MinCanvasWidth  = 200
	MinCanvasHeight = 200

	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 600
)

// New returns an empty layout with the default canvas size.
func New() PromptLayout {
	return PromptLayout{
		Items:        []ComponentItem{},
		CanvasWidth:  DefaultCanvasWidth,
		CanvasHeight: DefaultCanvasHeight,
	}
}

// Clone returns a deep copy of the layout. Every mutation path in the editor
// goes through Clone first so no two owners ever share a mutable instance.
func (l PromptLayout) Clone() PromptLayout {
	out := PromptLayout{
		CanvasWidth:  l.CanvasWidth,
		CanvasHeight: l.CanvasHeight,
	}
	if l.Items != nil {
		out.Items = make([]ComponentItem, len(l.Items))
		for i, item := range l.Items {
			out.Items[i] = item.clone()
		}
	}
	return out
}

func (c ComponentItem) clone() ComponentItem {
	out := c
	out.Config = c.Config.clone()
	return out
}

func (cfg Config) clone() Config {
	out := cfg
	if cfg.Options != nil {
		out.Options = append([]Option(nil), cfg.Options...)
	}
	if cfg.Columns != nil {
		out.Columns = append([]TableColumn(nil), cfg.Columns...)
	}
	if cfg.Selection != nil {
		sel := *cfg.Selection
		if cfg.Selection.Preselected != nil {
			sel.Preselected = append([]int(nil), cfg.Selection.Preselected...)
		}
		out.Selection = &sel
	}
	return out
}

// Item looks up a component by structural id.
func (l PromptLayout) Item(id string) (ComponentItem, bool) {
	for _, item := range l.Items {
		if item.ID == id {
			return item, true
		}
	}
	return ComponentItem{}, false
}

// FieldKeys returns the distinct logical field keys of every data-bearing
// component, in placement order. Radio components sharing a componentId
// contribute a single key.
func (l PromptLayout) FieldKeys() []string {
	seen := make(map[string]struct{}, len(l.Items))
	keys := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if !item.Type.DataBearing() {
			continue
		}
		key := item.FieldKey()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}
	return keys
}

// ClampPosition snaps a candidate position onto the canvas' valid range.
// Both axes floor at zero.
func ClampPosition(x, y float64) (float64, float64) {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}

// ClampCanvas enforces the minimum canvas dimensions.
func ClampCanvas(width, height float64) (float64, float64) {
	if width < MinCanvasWidth {
		width = MinCanvasWidth
	}
	if height < MinCanvasHeight {
		height = MinCanvasHeight
	}
	return width, height
}

// Normalize returns a copy with positions and canvas dimensions clamped into
// their valid ranges. Loaded documents pass through here so downstream code
// can rely on the invariants.
func (l PromptLayout) Normalize() PromptLayout {
	out := l.Clone()
	out.CanvasWidth, out.CanvasHeight = ClampCanvas(out.CanvasWidth, out.CanvasHeight)
	for i := range out.Items {
		out.Items[i].X, out.Items[i].Y = ClampPosition(out.Items[i].X, out.Items[i].Y)
	}
	return out
}

// Validate checks the structural invariants of a layout: unique item ids,
// non-negative positions, and canvas minimums. Unknown component types are
// not an error.
func (l PromptLayout) Validate() error {
	if l.CanvasWidth < MinCanvasWidth || l.CanvasHeight < MinCanvasHeight {
		return fmt.Errorf("layout: canvas %gx%g below minimum %dx%d",
			l.CanvasWidth, l.CanvasHeight, MinCanvasWidth, MinCanvasHeight)
	}
	seen := make(map[string]struct{}, len(l.Items))
	for _, item := range l.Items {
		if item.ID == "" {
			return fmt.Errorf("layout: component of type %q has no id", item.Type)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("layout: duplicate component id %q", item.ID)
		}
		seen[item.ID] = struct{}{}
		if item.X < 0 || item.Y < 0 {
			return fmt.Errorf("layout: component %q at negative position (%g,%g)", item.ID, item.X, item.Y)
		}
	}
	return nil
}

// Marshal serializes the layout to its canonical JSON document shape.
func (l PromptLayout) Marshal() ([]byte, error) {
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("layout: marshal: %w", err)
	}
	return data, nil
}

// Parse decodes a layout from its JSON document shape.
func Parse(data []byte) (PromptLayout, error) {
	var l PromptLayout
	if err := json.Unmarshal(data, &l); err != nil {
		return PromptLayout{}, fmt.Errorf("layout: parse: %w", err)
	}
	return l, nil
}
