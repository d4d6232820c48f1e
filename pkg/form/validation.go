package form

import "github.com/goliatone/go-promptform/pkg/layout"

// ValidationKey is the reserved, non-data key under which the renderer
// injects the validation summary into every change payload. It is never a
// legal field key; StripValidation removes it before data is submitted.
const ValidationKey = "__validation"

// Validation is the always-present validity summary derived from
// (layout, values). It is recomputed synchronously on every write and never
// stored independently, so it cannot go stale.
type Validation struct {
	IsValid         bool              `json:"isValid"`
	MissingRequired []string          `json:"missingRequired"`
	Errors          map[string]string `json:"errors,omitempty"`
}

// Validate computes the validation summary for a layout against a value map.
// A field is missing exactly when its component is required and its current
// value is nil or the empty string. Radio members sharing a field key are
// reported once.
func Validate(l layout.PromptLayout, values map[string]any) Validation {
	v := Validation{
		IsValid:         true,
		MissingRequired: []string{},
	}
	seen := make(map[string]struct{}, len(l.Items))
	for _, item := range l.Items {
		if !item.Type.DataBearing() || !item.Config.Required {
			continue
		}
		key := item.FieldKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if isEmptyValue(values[key]) {
			v.MissingRequired = append(v.MissingRequired, key)
		}
	}
	if len(v.MissingRequired) > 0 {
		v.IsValid = false
		v.Errors = make(map[string]string, len(v.MissingRequired))
		for _, key := range v.MissingRequired {
			v.Errors[key] = "This field is required"
		}
	}
	return v
}

// StripValidation returns a copy of the value map without the reserved
// validation key, i.e. the submittable payload. The input is not mutated.
func StripValidation(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}
	out := make(map[string]any, len(values))
	for key, value := range values {
		if key == ValidationKey {
			continue
		}
		out[key] = value
	}
	return out
}

func isEmptyValue(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	default:
		return false
	}
}
