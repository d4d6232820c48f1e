package layout_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-promptform/pkg/layout"
)

func sampleLayout() layout.PromptLayout {
	return layout.PromptLayout{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Items: []layout.ComponentItem{
			{
				ID:    "item-name",
				Type:  layout.TypeTextInput,
				X:     20,
				Y:     40,
				Label: "Full name",
				Config: layout.Config{
					ComponentID: "customer-name",
					Required:    true,
					Placeholder: "Jane Doe",
				},
			},
			{
				ID:    "item-region",
				Type:  layout.TypeSelect,
				X:     20,
				Y:     100,
				Label: "Region",
				Config: layout.Config{
					ComponentID: "region",
					Options: []layout.Option{
						{Label: "North", Value: "north"},
						{Label: "South", Value: "south", IsDefault: true},
					},
				},
			},
		},
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	original := sampleLayout()

	data, err := original.Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	parsed, err := layout.Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if diff := cmp.Diff(original, parsed); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	if _, err := layout.Parse([]byte("{not json")); err == nil {
		t.Fatal("expected parse error for malformed document")
	}
}

func TestCloneIsolation(t *testing.T) {
	original := sampleLayout()
	clone := original.Clone()

	clone.Items[0].X = 500
	clone.Items[1].Config.Options[0].Value = "mutated"
	clone.CanvasWidth = 1200

	if original.Items[0].X != 20 {
		t.Fatalf("clone mutation leaked into original position: %g", original.Items[0].X)
	}
	if original.Items[1].Config.Options[0].Value != "north" {
		t.Fatalf("clone mutation leaked into original options: %q", original.Items[1].Config.Options[0].Value)
	}
	if original.CanvasWidth != 800 {
		t.Fatalf("clone mutation leaked into canvas width: %g", original.CanvasWidth)
	}
}

func TestClampPosition(t *testing.T) {
	cases := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{name: "negative both axes", x: -50, y: -10, wantX: 0, wantY: 0},
		{name: "negative x only", x: -1, y: 30, wantX: 0, wantY: 30},
		{name: "in range untouched", x: 15, y: 17, wantX: 15, wantY: 17},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := layout.ClampPosition(tc.x, tc.y)
			if x != tc.wantX || y != tc.wantY {
				t.Fatalf("ClampPosition(%g,%g) = (%g,%g), want (%g,%g)",
					tc.x, tc.y, x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestClampCanvasEnforcesMinimum(t *testing.T) {
	w, h := layout.ClampCanvas(100, 5000)
	if w != layout.MinCanvasWidth {
		t.Fatalf("width = %g, want %d", w, layout.MinCanvasWidth)
	}
	if h != 5000 {
		t.Fatalf("height = %g, want 5000", h)
	}
}

func TestNormalizeRepairsLoadedDocument(t *testing.T) {
	doc := layout.PromptLayout{
		CanvasWidth:  50,
		CanvasHeight: 600,
		Items: []layout.ComponentItem{
			{ID: "a", Type: layout.TypeLabel, X: -12, Y: 8},
		},
	}

	fixed := doc.Normalize()
	if fixed.CanvasWidth != layout.MinCanvasWidth {
		t.Fatalf("canvas width = %g, want %d", fixed.CanvasWidth, layout.MinCanvasWidth)
	}
	if fixed.Items[0].X != 0 || fixed.Items[0].Y != 8 {
		t.Fatalf("position = (%g,%g), want (0,8)", fixed.Items[0].X, fixed.Items[0].Y)
	}
	// Input stays untouched.
	if doc.Items[0].X != -12 {
		t.Fatalf("normalize mutated its receiver")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*layout.PromptLayout)
		wantErr string
	}{
		{name: "valid", mutate: func(*layout.PromptLayout) {}},
		{
			name:    "duplicate id",
			mutate:  func(l *layout.PromptLayout) { l.Items[1].ID = l.Items[0].ID },
			wantErr: "duplicate component id",
		},
		{
			name:    "missing id",
			mutate:  func(l *layout.PromptLayout) { l.Items[0].ID = "" },
			wantErr: "has no id",
		},
		{
			name:    "negative position",
			mutate:  func(l *layout.PromptLayout) { l.Items[0].Y = -4 },
			wantErr: "negative position",
		},
		{
			name:    "canvas below minimum",
			mutate:  func(l *layout.PromptLayout) { l.CanvasHeight = 120 },
			wantErr: "below minimum",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := sampleLayout()
			tc.mutate(&doc)
			err := doc.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want substring %q", err, tc.wantErr)
			}
		})
	}
}

func TestFieldKeysDeduplicatesSharedComponentIDs(t *testing.T) {
	doc := sampleLayout()
	doc.Items = append(doc.Items,
		layout.ComponentItem{
			ID:     "item-tier-a",
			Type:   layout.TypeRadio,
			Config: layout.Config{ComponentID: "tier"},
		},
		layout.ComponentItem{
			ID:     "item-tier-b",
			Type:   layout.TypeRadio,
			Config: layout.Config{ComponentID: "tier"},
		},
		layout.ComponentItem{ID: "item-divider", Type: layout.TypeDivider},
	)

	want := []string{"customer-name", "region", "tier"}
	if diff := cmp.Diff(want, doc.FieldKeys()); diff != "" {
		t.Fatalf("field keys mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldKeyFallsBackToStructuralID(t *testing.T) {
	item := layout.ComponentItem{ID: "item-1", Type: layout.TypeTextInput}
	if got := item.FieldKey(); got != "item-1" {
		t.Fatalf("FieldKey() = %q, want %q", got, "item-1")
	}
	item.Config.ComponentID = "email"
	if got := item.FieldKey(); got != "email" {
		t.Fatalf("FieldKey() = %q, want %q", got, "email")
	}
}

func TestNewItemMintsDistinctIdentifiers(t *testing.T) {
	a := layout.NewItem(layout.TypeSelect, "Region")
	b := layout.NewItem(layout.TypeSelect, "Region")

	if a.ID == "" || a.Config.ComponentID == "" {
		t.Fatalf("new item missing identifiers: %+v", a)
	}
	if a.ID == b.ID || a.Config.ComponentID == b.Config.ComponentID {
		t.Fatal("expected distinct identifiers for successive items")
	}
	if !strings.HasPrefix(b.Config.ComponentID, string(layout.TypeSelect)+"-") {
		t.Fatalf("field key %q does not carry the type prefix", b.Config.ComponentID)
	}
	if len(a.Config.Options) == 0 {
		t.Fatal("select palette defaults should include starter options")
	}
}

func TestDefaultOptionFirstMarkedWins(t *testing.T) {
	options := []layout.Option{
		{Label: "A", Value: "a"},
		{Label: "B", Value: "b", IsDefault: true},
		{Label: "C", Value: "c", IsDefault: true},
	}
	def, ok := layout.DefaultOption(options)
	if !ok {
		t.Fatal("expected a default option")
	}
	if def.Value != "b" {
		t.Fatalf("default = %q, want %q", def.Value, "b")
	}

	if _, ok := layout.DefaultOption([]layout.Option{{Label: "A", Value: "a"}}); ok {
		t.Fatal("expected no default when nothing is marked")
	}
}
