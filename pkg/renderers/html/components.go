package html

import (
	"fmt"
	"html"
	"strings"

	"github.com/goliatone/go-promptform/pkg/form"
	"github.com/goliatone/go-promptform/pkg/layout"
	"github.com/goliatone/go-promptform/pkg/render"
)

// renderControls interprets every placed component into a markup fragment.
// Field values and defaults resolve through a form session so the preview
// and the live runtime agree on what a field shows.
func (r *Renderer) renderControls(l layout.PromptLayout, options render.RenderOptions) ([]string, error) {
	session := form.NewSession(l,
		form.WithData(options.Values),
		form.WithBindings(options.Bindings),
		form.WithReadOnly(options.ReadOnly),
	)

	fields := make(map[string]form.Field)
	for _, field := range session.Fields() {
		fields[field.Key] = field
	}

	controls := make([]string, 0, len(l.Items))
	renderedGroups := make(map[string]struct{})

	for _, item := range l.Items {
		var (
			control string
			err     error
		)
		switch item.Type {
		case layout.TypeLabel:
			control = r.renderLabel(item)
		case layout.TypeDivider:
			control = r.renderDivider(item)
		case layout.TypeTextInput:
			control = r.renderTextInput(item, fields[item.FieldKey()], options)
		case layout.TypeSelect:
			control = r.renderSelect(item, fields[item.FieldKey()], options)
		case layout.TypeCheckbox:
			control = r.renderCheckbox(item, fields[item.FieldKey()], options)
		case layout.TypeRadio:
			key := item.FieldKey()
			if _, done := renderedGroups[key]; done {
				continue
			}
			renderedGroups[key] = struct{}{}
			control = r.renderRadioGroup(item, fields[key], options)
		case layout.TypeTable:
			control, err = r.renderTable(item, session, options)
		default:
			// Forward compatibility: newer builders may place types this
			// renderer has never heard of.
			continue
		}
		if err != nil {
			return nil, err
		}
		if control != "" {
			controls = append(controls, control)
		}
	}
	return controls, nil
}

func (r *Renderer) label(item layout.ComponentItem) string {
	return r.sanitizer.Sanitize(item.Label)
}

func (r *Renderer) renderLabel(item layout.ComponentItem) string {
	return fmt.Sprintf(`<div class="pf-label" data-item=%q style=%q>%s</div>`,
		item.ID, positionStyle(item, false)+textStyle(item.Config), r.label(item))
}

func (r *Renderer) renderDivider(item layout.ComponentItem) string {
	cfg := item.Config
	thickness := cfg.Thickness
	if thickness <= 0 {
		thickness = 1
	}
	style := cfg.Style
	if style == "" {
		style = "solid"
	}
	width := cfg.Width
	if width <= 0 {
		width = 240
	}
	return fmt.Sprintf(`<hr class="pf-divider" data-item=%q style=%q>`,
		item.ID,
		fmt.Sprintf("%swidth:%dpx;border:none;border-top:%dpx %s %s;",
			positionStyle(item, false), width, thickness, style, colorOr(cfg.BorderColor, "#cbd2d9")))
}

func (r *Renderer) renderTextInput(item layout.ComponentItem, field form.Field, options render.RenderOptions) string {
	cfg := item.Config
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="pf-field" data-item=%q style=%q>`, item.ID, positionStyle(item, options.UniformWidth))
	if item.Label != "" {
		fmt.Fprintf(&b, `<label for=%q>%s</label>`, html.EscapeString(field.Key), r.label(item))
	}
	fmt.Fprintf(&b, `<input type="text" id=%q name=%q value=%q placeholder=%q%s%s%s>`,
		html.EscapeString(field.Key),
		html.EscapeString(field.Key),
		html.EscapeString(valueString(field.Value)),
		html.EscapeString(cfg.Placeholder),
		requiredAttr(cfg.Required),
		disabledAttr(cfg, options),
		widthAttr(cfg, options))
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) renderSelect(item layout.ComponentItem, field form.Field, options render.RenderOptions) string {
	cfg := item.Config
	selected := valueString(field.Value)

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="pf-field" data-item=%q style=%q>`, item.ID, positionStyle(item, options.UniformWidth))
	if item.Label != "" {
		fmt.Fprintf(&b, `<label for=%q>%s</label>`, html.EscapeString(field.Key), r.label(item))
	}
	fmt.Fprintf(&b, `<select id=%q name=%q%s%s>`,
		html.EscapeString(field.Key), html.EscapeString(field.Key),
		requiredAttr(cfg.Required), disabledAttr(cfg, options))
	if !cfg.Required {
		b.WriteString(`<option value=""></option>`)
	}
	for _, opt := range field.Options {
		marker := ""
		if opt.Value == selected && selected != "" {
			marker = " selected"
		}
		fmt.Fprintf(&b, `<option value=%q%s>%s</option>`,
			html.EscapeString(opt.Value), marker, html.EscapeString(opt.Label))
	}
	b.WriteString(`</select></div>`)
	return b.String()
}

func (r *Renderer) renderCheckbox(item layout.ComponentItem, field form.Field, options render.RenderOptions) string {
	cfg := item.Config
	checked := ""
	if isTruthy(field.Value) {
		checked = " checked"
	}
	label := fmt.Sprintf(`<label for=%q>%s</label>`, html.EscapeString(field.Key), r.label(item))
	input := fmt.Sprintf(`<input type="checkbox" id=%q name=%q value="true"%s%s%s>`,
		html.EscapeString(field.Key), html.EscapeString(field.Key),
		checked, requiredAttr(cfg.Required), disabledAttr(cfg, options))

	inner := input + label
	if cfg.LabelPosition == "left" {
		inner = label + input
	}
	return fmt.Sprintf(`<div class="pf-field pf-field--checkbox" data-item=%q style=%q>%s</div>`,
		item.ID, positionStyle(item, false), inner)
}

// renderRadioGroup renders one control per distinct field key; members
// sharing a componentId were already merged into the field's options.
func (r *Renderer) renderRadioGroup(item layout.ComponentItem, field form.Field, options render.RenderOptions) string {
	cfg := item.Config
	selected := valueString(field.Value)
	class := "pf-field pf-field--radio"
	if cfg.Orientation == "horizontal" {
		class += " pf-field--radio-row"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<fieldset class=%q data-item=%q style=%q>`, class, item.ID, positionStyle(item, false))
	if item.Label != "" {
		fmt.Fprintf(&b, `<legend>%s</legend>`, r.label(item))
	}
	for i, opt := range field.Options {
		id := fmt.Sprintf("%s-%d", field.Key, i)
		marker := ""
		if opt.Value == selected && selected != "" {
			marker = " checked"
		}
		fmt.Fprintf(&b, `<span class="pf-radio"><input type="radio" id=%q name=%q value=%q%s%s><label for=%q>%s</label></span>`,
			html.EscapeString(id), html.EscapeString(field.Key), html.EscapeString(opt.Value),
			marker, disabledAttr(cfg, options),
			html.EscapeString(id), html.EscapeString(opt.Label))
	}
	b.WriteString(`</fieldset>`)
	return b.String()
}

func (r *Renderer) renderTable(item layout.ComponentItem, session *form.Session, options render.RenderOptions) (string, error) {
	cfg := item.Config
	key := item.FieldKey()
	binding, _ := session.Binding(key)
	state, err := session.Table(item.ID)
	if err != nil {
		return "", fmt.Errorf("html renderer: table %q: %w", item.ID, err)
	}
	value, _ := session.Value(key)

	gridClass := "pf-table"
	if cfg.ShowGridLines {
		gridClass += " pf-table--grid"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<table class=%q data-item=%q style=%q><thead><tr>`,
		gridClass, item.ID, positionStyle(item, options.UniformWidth))
	mode := layout.TableSelectionNone
	if cfg.Selection != nil {
		mode = cfg.Selection.Mode
	}
	if mode != layout.TableSelectionNone {
		b.WriteString(`<th class="pf-table__select"></th>`)
	}
	order := state.Order()
	for _, col := range order {
		if col >= len(cfg.Columns) {
			continue
		}
		width := ""
		if px, ok := state.Width(col); ok {
			width = fmt.Sprintf(` style="width:%dpx"`, px)
		}
		fmt.Fprintf(&b, `<th%s>%s</th>`, width, html.EscapeString(cfg.Columns[col].Label))
	}
	b.WriteString(`</tr></thead><tbody>`)

	for rowIdx, row := range binding.Rows {
		fmt.Fprintf(&b, `<tr data-row="%d">`, rowIdx)
		switch mode {
		case layout.TableSelectionSingle:
			marker := ""
			if idx, ok := value.(int); ok && idx == rowIdx {
				marker = " checked"
			}
			fmt.Fprintf(&b, `<td class="pf-table__select"><input type="radio" name=%q value="%d"%s%s></td>`,
				html.EscapeString(key), rowIdx, marker, disabledAttr(cfg, options))
		case layout.TableSelectionMulti:
			marker := ""
			if indices, ok := value.([]int); ok {
				for _, idx := range indices {
					if idx == rowIdx {
						marker = " checked"
						break
					}
				}
			}
			fmt.Fprintf(&b, `<td class="pf-table__select"><input type="checkbox" name=%q value="%d"%s%s></td>`,
				html.EscapeString(key), rowIdx, marker, disabledAttr(cfg, options))
		}
		for _, col := range order {
			cell := ""
			if col < len(row) {
				cell = valueString(row[col])
			}
			fmt.Fprintf(&b, `<td>%s</td>`, html.EscapeString(cell))
		}
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</tbody></table>`)
	return b.String(), nil
}

func positionStyle(item layout.ComponentItem, uniform bool) string {
	style := fmt.Sprintf("position:absolute;left:%gpx;top:%gpx;", item.X, item.Y)
	if uniform {
		style += "width:100%;"
	}
	return style
}

func textStyle(cfg layout.Config) string {
	var b strings.Builder
	if cfg.FontSize > 0 {
		fmt.Fprintf(&b, "font-size:%dpx;", cfg.FontSize)
	}
	if cfg.TextColor != "" {
		fmt.Fprintf(&b, "color:%s;", cfg.TextColor)
	}
	if cfg.Background != "" {
		fmt.Fprintf(&b, "background-color:%s;", cfg.Background)
	}
	return b.String()
}

func widthAttr(cfg layout.Config, options render.RenderOptions) string {
	if options.UniformWidth || cfg.Width <= 0 {
		return ""
	}
	return fmt.Sprintf(` style="width:%dpx"`, cfg.Width)
}

func requiredAttr(required bool) string {
	if required {
		return " required"
	}
	return ""
}

func disabledAttr(cfg layout.Config, options render.RenderOptions) string {
	if options.ReadOnly || cfg.Disabled {
		return " disabled"
	}
	return ""
}

func colorOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func valueString(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}

func isTruthy(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		return typed == "true"
	default:
		return false
	}
}
