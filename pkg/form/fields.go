package form

import "github.com/goliatone/go-promptform/pkg/layout"

// Field is the renderer-facing view of one addressable control. Radio
// components sharing a logical key collapse into a single field whose
// options are the members' options merged in placement order.
type Field struct {
	Key      string
	Type     layout.ComponentType
	Label    string
	Required bool
	Disabled bool
	Options  []layout.Option
	Value    any
	// Item is the first layout item contributing to this field; renderers
	// read position and visual config from it.
	Item layout.ComponentItem
}

// Fields returns the addressable fields of the session in placement order.
// Presentation-only components (labels, dividers) and unknown types are not
// fields; use Layout directly to render those.
func (s *Session) Fields() []Field {
	byKey := make(map[string]int, len(s.layout.Items))
	fields := make([]Field, 0, len(s.layout.Items))

	for _, item := range s.layout.Items {
		if !item.Type.DataBearing() {
			continue
		}
		key := item.FieldKey()

		if idx, ok := byKey[key]; ok {
			// Radio members linked by a shared componentId contribute their
			// options to the existing group; any member marking the group
			// required makes it required.
			if item.Type == layout.TypeRadio && fields[idx].Type == layout.TypeRadio {
				fields[idx].Options = append(fields[idx].Options, item.Config.Options...)
				fields[idx].Required = fields[idx].Required || item.Config.Required
			}
			continue
		}

		field := Field{
			Key:      key,
			Type:     item.Type,
			Label:    item.Label,
			Required: item.Config.Required,
			Disabled: item.Config.Disabled || s.readOnly,
			Options:  append([]layout.Option(nil), item.Config.Options...),
			Item:     item,
		}
		field.Value = s.resolvedValue(key, field.Options)
		byKey[key] = len(fields)
		fields = append(fields, field)
	}

	// Resolve group values once all options are merged.
	for i := range fields {
		fields[i].Value = s.resolvedValue(fields[i].Key, fields[i].Options)
	}
	return fields
}

// resolvedValue returns the stored value for a key, falling back to the
// first default-marked option only when the key is absent or nil. An empty
// string is a deliberate value: a cleared select renders unselected rather
// than snapping back to its default.
func (s *Session) resolvedValue(key string, options []layout.Option) any {
	if value, ok := s.values[key]; ok && value != nil {
		return value
	}
	if def, ok := layout.DefaultOption(options); ok {
		return def.Value
	}
	return s.values[key]
}
