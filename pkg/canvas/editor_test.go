package canvas_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptform/pkg/canvas"
	"github.com/goliatone/go-promptform/pkg/layout"
	"github.com/goliatone/go-promptform/pkg/testsupport"
)

func newEditor(t *testing.T, options ...canvas.Option) *canvas.Editor {
	t.Helper()
	return canvas.New(append([]canvas.Option{
		canvas.WithLayout(testsupport.SampleLayout()),
	}, options...)...)
}

func itemAt(t *testing.T, e *canvas.Editor, id string) layout.ComponentItem {
	t.Helper()
	item, ok := e.Layout().Item(id)
	if !ok {
		t.Fatalf("item %q not found", id)
	}
	return item
}

func TestMoveClampsAtZero(t *testing.T) {
	e := newEditor(t)

	e.Move("item-name", canvas.Point{X: -50, Y: -10})

	item := itemAt(t, e, "item-name")
	if item.X != 0 || item.Y != 0 {
		t.Fatalf("position = (%g,%g), want (0,0)", item.X, item.Y)
	}
}

func TestMoveUnknownIDIsNoOp(t *testing.T) {
	e := newEditor(t)
	before := e.Layout()

	e.Move("no-such-item", canvas.Point{X: 10, Y: 10})

	if diff := cmp.Diff(before, e.Layout()); diff != "" {
		t.Fatalf("layout changed by unknown-id move (-before +after):\n%s", diff)
	}
}

func TestCreateFromPaletteDropCentersAndClamps(t *testing.T) {
	e := canvas.New()

	item, ok := e.CreateFromPaletteDrop(canvas.DropPayload{
		ComponentType: layout.TypeTextInput,
		Label:         "Email",
	}, canvas.Point{X: 10, Y: 10})
	if !ok {
		t.Fatal("palette drop rejected")
	}

	// Centering a default-footprint item under (10,10) would go negative on
	// both axes, so both clamp to zero.
	if item.X != 0 || item.Y != 0 {
		t.Fatalf("position = (%g,%g), want (0,0)", item.X, item.Y)
	}
	if item.ID == "" || item.Config.ComponentID == "" {
		t.Fatalf("created item missing identifiers: %+v", item)
	}
	if _, found := e.Layout().Item(item.ID); !found {
		t.Fatal("created item not in layout")
	}
}

func TestHandleDropDisambiguatesByShape(t *testing.T) {
	e := newEditor(t)
	count := len(e.Layout().Items)

	// Move payload: carries an item id.
	e.HandleDrop(&canvas.DropPayload{
		ItemID:     "item-name",
		GrabOffset: canvas.Point{X: 5, Y: 5},
	}, canvas.Point{X: 105, Y: 55})
	item := itemAt(t, e, "item-name")
	if item.X != 100 || item.Y != 50 {
		t.Fatalf("moved to (%g,%g), want (100,50)", item.X, item.Y)
	}
	if len(e.Layout().Items) != count {
		t.Fatal("move drop must not create items")
	}

	// Palette payload: carries a component type.
	e.HandleDrop(&canvas.DropPayload{ComponentType: layout.TypeCheckbox}, canvas.Point{X: 300, Y: 300})
	if len(e.Layout().Items) != count+1 {
		t.Fatal("palette drop must create an item")
	}

	// Malformed payloads are silent no-ops.
	e.HandleDrop(nil, canvas.Point{X: 1, Y: 1})
	e.HandleDrop(&canvas.DropPayload{}, canvas.Point{X: 1, Y: 1})
	if len(e.Layout().Items) != count+1 {
		t.Fatal("malformed drops must not mutate the layout")
	}
}

func TestSelectionModes(t *testing.T) {
	e := newEditor(t)

	e.Select("item-name", false)
	e.Select("item-region", false)
	if diff := cmp.Diff([]string{"item-region"}, e.Selection()); diff != "" {
		t.Fatalf("plain click must replace selection (-want +got):\n%s", diff)
	}

	e.Select("item-name", true)
	if diff := cmp.Diff([]string{"item-name", "item-region"}, e.Selection()); diff != "" {
		t.Fatalf("append click must extend selection (-want +got):\n%s", diff)
	}

	// Append-clicking a selected member removes it.
	e.Select("item-region", true)
	if diff := cmp.Diff([]string{"item-name"}, e.Selection()); diff != "" {
		t.Fatalf("append click must toggle membership (-want +got):\n%s", diff)
	}

	e.ClearSelection()
	if len(e.Selection()) != 0 {
		t.Fatal("selection not cleared")
	}
}

func TestGroupDragPreservesRelativePositions(t *testing.T) {
	doc := layout.New()
	doc.Items = []layout.ComponentItem{
		{ID: "a", Type: layout.TypeLabel, X: 10, Y: 10},
		{ID: "b", Type: layout.TypeLabel, X: 30, Y: 30},
	}
	e := canvas.New(canvas.WithLayout(doc))
	e.Select("a", false)
	e.Select("b", true)

	drag, err := e.BeginDrag(canvas.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("begin drag: %v", err)
	}
	drag.Update(canvas.Point{X: 5, Y: 7})
	drag.End()

	a := itemAt(t, e, "a")
	b := itemAt(t, e, "b")
	if a.X != 15 || a.Y != 17 {
		t.Fatalf("a = (%g,%g), want (15,17)", a.X, a.Y)
	}
	if b.X != 35 || b.Y != 37 {
		t.Fatalf("b = (%g,%g), want (35,37)", b.X, b.Y)
	}
}

func TestGroupDragClampsEachMemberIndependently(t *testing.T) {
	doc := layout.New()
	doc.Items = []layout.ComponentItem{
		{ID: "a", Type: layout.TypeLabel, X: 5, Y: 5},
		{ID: "b", Type: layout.TypeLabel, X: 50, Y: 50},
	}
	e := canvas.New(canvas.WithLayout(doc))
	e.Select("a", false)
	e.Select("b", true)

	drag, err := e.BeginDrag(canvas.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("begin drag: %v", err)
	}
	drag.Update(canvas.Point{X: -20, Y: -20})
	drag.End()

	a := itemAt(t, e, "a")
	b := itemAt(t, e, "b")
	if a.X != 0 || a.Y != 0 {
		t.Fatalf("a = (%g,%g), want clamped (0,0)", a.X, a.Y)
	}
	if b.X != 30 || b.Y != 30 {
		t.Fatalf("b = (%g,%g), want (30,30)", b.X, b.Y)
	}
}

func TestDragOriginsAreCapturedOnce(t *testing.T) {
	e := newEditor(t)
	e.Select("item-name", false)
	start := itemAt(t, e, "item-name")

	drag, err := e.BeginDrag(canvas.Point{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("begin drag: %v", err)
	}
	defer drag.Dispose()

	// Each update is origin plus total delta, not cumulative.
	drag.Update(canvas.Point{X: 110, Y: 100})
	drag.Update(canvas.Point{X: 110, Y: 100})
	item := itemAt(t, e, "item-name")
	if item.X != start.X+10 || item.Y != start.Y {
		t.Fatalf("position = (%g,%g), want (%g,%g)", item.X, item.Y, start.X+10, start.Y)
	}
}

func TestGesturesAreMutuallyExclusive(t *testing.T) {
	e := newEditor(t)
	e.Select("item-name", false)

	drag, err := e.BeginDrag(canvas.Point{})
	if err != nil {
		t.Fatalf("begin drag: %v", err)
	}
	if _, err := e.BeginResize(canvas.Point{}); !errors.Is(err, canvas.ErrGestureActive) {
		t.Fatalf("err = %v, want ErrGestureActive", err)
	}
	drag.End()

	resize, err := e.BeginResize(canvas.Point{})
	if err != nil {
		t.Fatalf("begin resize after release: %v", err)
	}
	resize.Dispose()
}

func TestBeginDragRequiresSelection(t *testing.T) {
	e := newEditor(t)
	if _, err := e.BeginDrag(canvas.Point{}); err == nil {
		t.Fatal("expected error for empty selection")
	}
}

func TestCanvasResizeHoldsFloor(t *testing.T) {
	e := newEditor(t)

	resize, err := e.BeginResize(canvas.Point{X: 0, Y: 0})
	if err != nil {
		t.Fatalf("begin resize: %v", err)
	}
	resize.Update(canvas.Point{X: 100, Y: -700})
	resize.End()

	doc := e.Layout()
	if doc.CanvasWidth != 900 {
		t.Fatalf("width = %g, want 900", doc.CanvasWidth)
	}
	if doc.CanvasHeight != layout.MinCanvasHeight {
		t.Fatalf("height = %g, want floor %d", doc.CanvasHeight, layout.MinCanvasHeight)
	}
}

func TestDeleteRemovesSelectionOnly(t *testing.T) {
	e := newEditor(t)
	count := len(e.Layout().Items)

	e.Select("item-name", false)
	e.Select("item-divider", true)
	e.Delete()

	doc := e.Layout()
	if len(doc.Items) != count-2 {
		t.Fatalf("items = %d, want %d", len(doc.Items), count-2)
	}
	if _, found := doc.Item("item-name"); found {
		t.Fatal("deleted item still present")
	}
	if len(e.Selection()) != 0 {
		t.Fatal("selection must clear after delete")
	}
}

func TestUpdateConfigMergesPatch(t *testing.T) {
	e := newEditor(t)

	e.UpdateConfig("item-name", canvas.ConfigPatch{
		Placeholder: canvas.Ptr("jane@example.com"),
		Required:    canvas.Ptr(false),
	})

	item := itemAt(t, e, "item-name")
	if item.Config.Placeholder != "jane@example.com" {
		t.Fatalf("placeholder = %q", item.Config.Placeholder)
	}
	if item.Config.Required {
		t.Fatal("required not patched")
	}
	// Untouched keys survive the patch.
	if item.Config.ComponentID != "customer-name" {
		t.Fatalf("componentId = %q, want untouched", item.Config.ComponentID)
	}
}

func TestChangeCallbackReceivesIsolatedSnapshots(t *testing.T) {
	var snapshots []layout.PromptLayout
	e := canvas.New(canvas.WithOnChange(func(l layout.PromptLayout) {
		snapshots = append(snapshots, l)
	}))

	item, _ := e.CreateFromPaletteDrop(canvas.DropPayload{ComponentType: layout.TypeLabel}, canvas.Point{X: 400, Y: 300})
	e.Move(item.ID, canvas.Point{X: 50, Y: 60})

	if len(snapshots) != 2 {
		t.Fatalf("callbacks = %d, want 2", len(snapshots))
	}
	// Mutating a delivered snapshot must not affect the editor.
	snapshots[1].Items[0].X = 999
	current := itemAt(t, e, item.ID)
	if current.X != 50 {
		t.Fatalf("editor state leaked to callback snapshot: x = %g", current.X)
	}
}
