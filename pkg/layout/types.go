package layout

// ComponentType is the enum of controls a prompt layout can place.
type ComponentType string

const (
	TypeLabel     ComponentType = "label"
	TypeTextInput ComponentType = "text-input"
	TypeSelect    ComponentType = "select"
	TypeCheckbox  ComponentType = "checkbox"
	TypeRadio     ComponentType = "radio"
	TypeDivider   ComponentType = "divider"
	TypeTable     ComponentType = "table"
)

// Known reports whether the type is one of the built-in component types.
// Unknown types are tolerated throughout the pipeline (interpreters skip
// them) so layouts produced by newer builders still load.
func (t ComponentType) Known() bool {
	switch t {
	case TypeLabel, TypeTextInput, TypeSelect, TypeCheckbox, TypeRadio, TypeDivider, TypeTable:
		return true
	default:
		return false
	}
}

// DataBearing reports whether components of this type read/write a value in
// submitted form data. Labels and dividers are presentation only.
func (t ComponentType) DataBearing() bool {
	switch t {
	case TypeTextInput, TypeSelect, TypeCheckbox, TypeRadio, TypeTable:
		return true
	default:
		return false
	}
}

// Option is a selectable choice for select and radio components. At most one
// option per component is meaningfully marked as default; when several are
// marked, the first encountered wins (see DefaultOption).
type Option struct {
	Label     string `json:"label"`
	Value     string `json:"value"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// TableSelectionMode controls how table rows participate in form data.
type TableSelectionMode string

const (
	TableSelectionNone   TableSelectionMode = "none"
	TableSelectionSingle TableSelectionMode = "single"
	TableSelectionMulti  TableSelectionMode = "multi"
)

// TableSelection configures row selection for a table component.
type TableSelection struct {
	Mode        TableSelectionMode `json:"mode"`
	Preselected []int              `json:"preselected,omitempty"`
}

// TableColumn describes one column of a table component. Width is the
// initial pixel width; runtime resizing is session state and never written
// back here.
type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Width int    `json:"width,omitempty"`
}

// Config is the type-dependent property bag attached to every placed
// component. ComponentID is the logical field key used in submitted data and
// is distinct from the structural item id; the two identities are deliberate
// (structural stability across config edits vs. stable data keys across
// layout reordering) and must not be collapsed.
type Config struct {
	ComponentID string `json:"componentId,omitempty"`

	Width        int    `json:"width,omitempty"`
	Height       int    `json:"height,omitempty"`
	FontSize     int    `json:"fontSize,omitempty"`
	TextColor    string `json:"textColor,omitempty"`
	Background   string `json:"backgroundColor,omitempty"`
	BorderColor  string `json:"borderColor,omitempty"`
	BorderWidth  int    `json:"borderWidth,omitempty"`
	BorderStyle  string `json:"borderStyle,omitempty"`
	BorderRadius int    `json:"borderRadius,omitempty"`

	Required    bool   `json:"required,omitempty"`
	Disabled    bool   `json:"isDisabled,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`

	Options       []Option `json:"options,omitempty"`
	LabelPosition string   `json:"labelPosition,omitempty"`
	Orientation   string   `json:"orientation,omitempty"`

	// Divider only.
	Thickness int    `json:"thickness,omitempty"`
	Style     string `json:"style,omitempty"`

	// Table only.
	Columns       []TableColumn   `json:"columns,omitempty"`
	Selection     *TableSelection `json:"selection,omitempty"`
	ShowGridLines bool            `json:"showGridLines,omitempty"`
	GridLineStyle string          `json:"gridLineStyle,omitempty"`
}

// ComponentItem is one placed control: a structural id, a type tag, a canvas
// position, a fallback label, and the type-dependent config.
type ComponentItem struct {
	ID     string        `json:"id"`
	Type   ComponentType `json:"type"`
	X      float64       `json:"x"`
	Y      float64       `json:"y"`
	Label  string        `json:"label"`
	Config Config        `json:"config"`
}

// FieldKey resolves the logical key under which this component's value is
// stored in form data: config.componentId when present, otherwise the
// structural id.
func (c ComponentItem) FieldKey() string {
	if c.Config.ComponentID != "" {
		return c.Config.ComponentID
	}
	return c.ID
}

// PromptLayout is the declarative layout document: placed components plus
// canvas dimensions. It is owned exclusively by one editor session at a time
// and is replaced wholesale on mutation (see Clone).
type PromptLayout struct {
	Items        []ComponentItem `json:"items"`
	CanvasWidth  float64         `json:"canvasWidth"`
	CanvasHeight float64         `json:"canvasHeight"`
}
