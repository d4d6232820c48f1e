package layout

// NewItem mints a component of the given type with its palette defaults
// applied and fresh structural/logical identifiers.
func NewItem(t ComponentType, label string) ComponentItem {
	item := ComponentItem{
		ID:     MintID(),
		Type:   t,
		Label:  label,
		Config: DefaultConfig(t),
	}
	item.Config.ComponentID = MintFieldKey(t)
	return item
}

// DefaultConfig returns the per-type starting configuration applied when a
// component is dropped from the palette. Unknown types get an empty config.
func DefaultConfig(t ComponentType) Config {
	switch t {
	case TypeLabel:
		return Config{
			FontSize:  14,
			TextColor: "#1f2933",
		}
	case TypeTextInput:
		return Config{
			Width:       220,
			Height:      40,
			Placeholder: "",
		}
	case TypeSelect:
		return Config{
			Width: 220,
			Options: []Option{
				{Label: "Option 1", Value: "option-1"},
				{Label: "Option 2", Value: "option-2"},
			},
		}
	case TypeCheckbox:
		return Config{
			LabelPosition: "right",
		}
	case TypeRadio:
		return Config{
			Orientation: "vertical",
			Options: []Option{
				{Label: "Option 1", Value: "option-1"},
				{Label: "Option 2", Value: "option-2"},
			},
		}
	case TypeDivider:
		return Config{
			Width:     240,
			Thickness: 1,
			Style:     "solid",
		}
	case TypeTable:
		return Config{
			Width:  360,
			Height: 200,
			Columns: []TableColumn{
				{Key: "col-1", Label: "Column 1"},
				{Key: "col-2", Label: "Column 2"},
			},
			Selection:     &TableSelection{Mode: TableSelectionNone},
			ShowGridLines: true,
			GridLineStyle: "solid",
		}
	default:
		return Config{}
	}
}
