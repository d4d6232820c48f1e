// Package testsupport carries shared fixtures and in-memory collaborator
// implementations used across package tests and examples.
package testsupport

import "github.com/goliatone/go-promptform/pkg/layout"

// SampleLayout builds a small layout exercising every built-in component
// type: a label, a required text input, a select with a default, a checkbox,
// a two-member radio group, a divider, and a single-select table.
func SampleLayout() layout.PromptLayout {
	return layout.PromptLayout{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Items: []layout.ComponentItem{
			{
				ID:    "item-label",
				Type:  layout.TypeLabel,
				X:     20,
				Y:     20,
				Label: "Customer intake",
				Config: layout.Config{
					FontSize: 18,
				},
			},
			{
				ID:    "item-name",
				Type:  layout.TypeTextInput,
				X:     20,
				Y:     60,
				Label: "Full name",
				Config: layout.Config{
					ComponentID: "customer-name",
					Required:    true,
					Placeholder: "Jane Doe",
					Width:       220,
				},
			},
			{
				ID:    "item-region",
				Type:  layout.TypeSelect,
				X:     20,
				Y:     120,
				Label: "Region",
				Config: layout.Config{
					ComponentID: "region",
					Options: []layout.Option{
						{Label: "North", Value: "north"},
						{Label: "South", Value: "south", IsDefault: true},
					},
				},
			},
			{
				ID:    "item-subscribe",
				Type:  layout.TypeCheckbox,
				X:     20,
				Y:     180,
				Label: "Subscribe to updates",
				Config: layout.Config{
					ComponentID: "subscribe",
				},
			},
			{
				ID:    "item-tier-a",
				Type:  layout.TypeRadio,
				X:     20,
				Y:     240,
				Label: "Basic",
				Config: layout.Config{
					ComponentID: "tier",
					Required:    true,
					Options: []layout.Option{
						{Label: "Basic", Value: "basic"},
					},
				},
			},
			{
				ID:    "item-tier-b",
				Type:  layout.TypeRadio,
				X:     20,
				Y:     280,
				Label: "Premium",
				Config: layout.Config{
					ComponentID: "tier",
					Options: []layout.Option{
						{Label: "Premium", Value: "premium"},
					},
				},
			},
			{
				ID:   "item-divider",
				Type: layout.TypeDivider,
				X:    20,
				Y:    330,
				Config: layout.Config{
					Thickness: 1,
					Style:     "solid",
				},
			},
			{
				ID:    "item-orders",
				Type:  layout.TypeTable,
				X:     20,
				Y:     360,
				Label: "Open orders",
				Config: layout.Config{
					ComponentID: "order",
					Columns: []layout.TableColumn{
						{Key: "order-id", Label: "Order"},
						{Key: "total", Label: "Total", Width: 90},
					},
					Selection:     &layout.TableSelection{Mode: layout.TableSelectionSingle},
					ShowGridLines: true,
				},
			},
		},
	}
}
