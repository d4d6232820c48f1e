// Package schemagen exports the submission payload shape of prompt layouts
// as OpenAPI schemas, so downstream consumers of submitted executions can
// validate or generate against a conventional contract instead of reading
// layout documents.
package schemagen

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// ForLayout derives the object schema of one layout's submittable payload:
// one property per distinct logical field key, required exactly for the
// components marked required.
func ForLayout(l layout.PromptLayout) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Properties = make(openapi3.Schemas)

	required := make(map[string]struct{})
	for _, item := range l.Items {
		if !item.Type.DataBearing() {
			continue
		}
		key := item.FieldKey()

		if existing, ok := schema.Properties[key]; ok {
			// Radio members sharing a field key extend the enum.
			if item.Type == layout.TypeRadio && existing.Value != nil {
				for _, value := range layout.OptionValues(item.Config.Options) {
					existing.Value.Enum = append(existing.Value.Enum, value)
				}
			}
			if item.Config.Required {
				required[key] = struct{}{}
			}
			continue
		}

		prop := propertyFor(item)
		if prop == nil {
			continue
		}
		schema.Properties[key] = openapi3.NewSchemaRef("", prop)
		if item.Config.Required {
			required[key] = struct{}{}
		}
	}

	schema.Required = make([]string, 0, len(required))
	for key := range required {
		schema.Required = append(schema.Required, key)
	}
	sort.Strings(schema.Required)
	return schema
}

func propertyFor(item layout.ComponentItem) *openapi3.Schema {
	cfg := item.Config
	switch item.Type {
	case layout.TypeTextInput:
		prop := openapi3.NewStringSchema()
		prop.Title = item.Label
		if cfg.Placeholder != "" {
			prop.Description = cfg.Placeholder
		}
		return prop
	case layout.TypeSelect, layout.TypeRadio:
		prop := openapi3.NewStringSchema()
		prop.Title = item.Label
		for _, value := range layout.OptionValues(cfg.Options) {
			prop.Enum = append(prop.Enum, value)
		}
		if def, ok := layout.DefaultOption(cfg.Options); ok {
			prop.Default = def.Value
		}
		return prop
	case layout.TypeCheckbox:
		prop := openapi3.NewBoolSchema()
		prop.Title = item.Label
		return prop
	case layout.TypeTable:
		if cfg.Selection == nil {
			return nil
		}
		switch cfg.Selection.Mode {
		case layout.TableSelectionSingle:
			prop := openapi3.NewIntegerSchema()
			prop.Title = item.Label
			prop.Description = "Selected row index"
			return prop
		case layout.TableSelectionMulti:
			prop := openapi3.NewArraySchema()
			prop.Title = item.Label
			prop.Description = "Selected row indices"
			prop.Items = openapi3.NewSchemaRef("", openapi3.NewIntegerSchema())
			return prop
		default:
			return nil
		}
	default:
		return nil
	}
}

// Document assembles an OpenAPI document carrying one component schema per
// named layout plus an aggregate schema merging them, matching how a
// multi-prompt execution submits one combined payload.
func Document(title string, layouts map[string]layout.PromptLayout) (*openapi3.T, error) {
	if title == "" {
		return nil, fmt.Errorf("schemagen: document title is required")
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: "1.0.0",
		},
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas),
		},
		Paths: openapi3.NewPaths(),
	}

	aggregate := openapi3.NewObjectSchema()
	aggregate.Properties = make(openapi3.Schemas)
	requiredSet := make(map[string]struct{})

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		schema := ForLayout(layouts[name])
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", schema)

		for key, prop := range schema.Properties {
			if _, exists := aggregate.Properties[key]; exists {
				return nil, fmt.Errorf("schemagen: field key %q appears in more than one layout", key)
			}
			aggregate.Properties[key] = prop
		}
		for _, key := range schema.Required {
			requiredSet[key] = struct{}{}
		}
	}

	aggregate.Required = make([]string, 0, len(requiredSet))
	for key := range requiredSet {
		aggregate.Required = append(aggregate.Required, key)
	}
	sort.Strings(aggregate.Required)
	doc.Components.Schemas["SubmissionPayload"] = openapi3.NewSchemaRef("", aggregate)

	return doc, nil
}
