package canvas

// Select replaces the selection set with the given component, or toggles its
// membership when the append modifier is held. Selecting an id the layout
// does not contain clears nothing and selects nothing.
func (e *Editor) Select(id string, appendModifier bool) {
	if _, ok := e.layout.Item(id); !ok {
		return
	}
	if !appendModifier {
		e.selection = map[string]struct{}{id: {}}
		return
	}
	if _, selected := e.selection[id]; selected {
		delete(e.selection, id)
		return
	}
	e.selection[id] = struct{}{}
}

// ClearSelection empties the selection set; clicking empty canvas routes
// here.
func (e *Editor) ClearSelection() {
	e.selection = make(map[string]struct{})
}

// Selected reports whether a component is in the selection set.
func (e *Editor) Selected(id string) bool {
	_, ok := e.selection[id]
	return ok
}

// Selection returns the selected component ids in placement order.
func (e *Editor) Selection() []string {
	if len(e.selection) == 0 {
		return nil
	}
	out := make([]string, 0, len(e.selection))
	for _, item := range e.layout.Items {
		if _, ok := e.selection[item.ID]; ok {
			out = append(out, item.ID)
		}
	}
	return out
}
