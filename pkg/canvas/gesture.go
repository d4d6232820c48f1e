package canvas

import (
	"fmt"

	"github.com/goliatone/go-promptform/pkg/layout"
)

// ErrGestureActive is returned when a new pointer gesture is requested while
// another one is still holding the capture. Gestures are mutually exclusive
// at any instant.
var ErrGestureActive = fmt.Errorf("canvas: another gesture is active")

// gesture is the single slot tracking the active pointer-capture session.
type gesture interface {
	Dispose()
}

func (e *Editor) acquireGesture(g gesture) error {
	if e.gesture != nil {
		return ErrGestureActive
	}
	e.gesture = g
	return nil
}

func (e *Editor) releaseGesture(g gesture) {
	if e.gesture == g {
		e.gesture = nil
	}
}

// DragSession is a pointer-capture session moving the current selection. The
// origin of every member is captured once when the gesture starts, so each
// update places members at origin plus the accumulated delta; recomputing
// origins per frame would let rounding drift the group apart. Hosts must End
// or Dispose the session on pointer-up or teardown.
type DragSession struct {
	editor  *Editor
	start   Point
	origins map[string]Point
	done    bool
}

// BeginDrag starts a drag gesture for the current selection at the given
// pointer position. Starting with an empty selection or while another
// gesture is active fails.
func (e *Editor) BeginDrag(at Point) (*DragSession, error) {
	ids := e.Selection()
	if len(ids) == 0 {
		return nil, fmt.Errorf("canvas: nothing selected to drag")
	}

	origins := make(map[string]Point, len(ids))
	for _, id := range ids {
		item, _ := e.layout.Item(id)
		origins[id] = Point{X: item.X, Y: item.Y}
	}

	session := &DragSession{editor: e, start: at, origins: origins}
	if err := e.acquireGesture(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update moves every member to its captured origin plus the pointer delta,
// clamped at zero, committing one layout update per call. Hosts throttle
// calls to animation frames, not raw pointer events.
func (s *DragSession) Update(at Point) {
	if s == nil || s.done {
		return
	}
	dx, dy := at.X-s.start.X, at.Y-s.start.Y

	next := s.editor.layout.Clone()
	for i := range next.Items {
		origin, ok := s.origins[next.Items[i].ID]
		if !ok {
			continue
		}
		next.Items[i].X, next.Items[i].Y = layout.ClampPosition(origin.X+dx, origin.Y+dy)
	}
	s.editor.commit(next)
}

// End releases the capture; positions stay where the last Update put them.
func (s *DragSession) End() {
	if s == nil || s.done {
		return
	}
	s.done = true
	s.editor.releaseGesture(s)
}

// Dispose releases the capture without further effect. Safe after End;
// mandatory on component teardown so no gesture tracking dangles.
func (s *DragSession) Dispose() {
	s.End()
}

// ResizeSession is a pointer-capture session resizing the canvas, anchored
// at the original top-left. Dimensions commit continuously during the
// gesture so the host's dimension readout stays live.
type ResizeSession struct {
	editor      *Editor
	start       Point
	startWidth  float64
	startHeight float64
	done        bool
}

// BeginResize starts a canvas resize gesture at the given pointer position.
func (e *Editor) BeginResize(at Point) (*ResizeSession, error) {
	session := &ResizeSession{
		editor:      e,
		start:       at,
		startWidth:  e.layout.CanvasWidth,
		startHeight: e.layout.CanvasHeight,
	}
	if err := e.acquireGesture(session); err != nil {
		return nil, err
	}
	return session, nil
}

// Update applies the pointer delta to the starting dimensions, holding the
// 200px floor on both axes, and commits immediately.
func (s *ResizeSession) Update(at Point) {
	if s == nil || s.done {
		return
	}
	next := s.editor.layout.Clone()
	next.CanvasWidth, next.CanvasHeight = layout.ClampCanvas(
		s.startWidth+(at.X-s.start.X),
		s.startHeight+(at.Y-s.start.Y),
	)
	s.editor.commit(next)
}

// End releases the capture.
func (s *ResizeSession) End() {
	if s == nil || s.done {
		return
	}
	s.done = true
	s.editor.releaseGesture(s)
}

// Dispose releases the capture; mandatory on teardown.
func (s *ResizeSession) Dispose() {
	s.End()
}
