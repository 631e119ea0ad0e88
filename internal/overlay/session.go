// Package overlay holds the single-session comparison state: registered
// source layers, the active set of layer instances, their alignment
// offsets, and the shared viewport fit.
package overlay

import (
	"errors"
	"fmt"
	"sync"

	"demercator/internal/geom"
	"demercator/internal/proj"
)

// ErrUnknownLayer is returned for operations naming a source or instance id
// that is not part of the session.
var ErrUnknownLayer = errors.New("unknown layer")

// Layer is one registered source dataset. Immutable once registered; the
// raw and projected collections are derived from the same source.
type Layer struct {
	ID        string
	Name      string
	Color     string
	Raw       geom.Collection[geom.Geographic]
	Projected geom.Collection[geom.Planar]
}

// Instance is one occurrence of a source layer in the active set. Several
// instances may share a source; each carries its own alignment offset in
// viewport pixels.
type Instance struct {
	ID     string
	Source *Layer

	mu sync.Mutex
	tx float64
	ty float64
}

// ApplyDragDelta accumulates a drag gesture step into the offset. Deltas
// for one instance serialize; different instances are independent.
func (in *Instance) ApplyDragDelta(dx, dy float64) {
	in.mu.Lock()
	in.tx += dx
	in.ty += dy
	in.mu.Unlock()
}

// Offset returns the current alignment translation in viewport pixels.
func (in *Instance) Offset() (tx, ty float64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.tx, in.ty
}

// Session owns one comparison session: a fixed origin, the registered
// sources, and the active instances. It is created at startup and mutated
// only by discrete user actions.
type Session struct {
	projector proj.AEQD
	viewportW float64
	viewportH float64

	sources  map[string]*Layer
	order    []string // registration order of source ids
	active   []*Instance
	nextInst int

	fit      ViewportFit
	fitErr   error
	fitValid bool
}

// NewSession creates a session centered at origin with a fixed viewport.
func NewSession(origin geom.Geographic, viewportW, viewportH float64) *Session {
	return &Session{
		projector: proj.New(origin),
		viewportW: viewportW,
		viewportH: viewportH,
		sources:   make(map[string]*Layer),
	}
}

// Origin returns the projection center fixed at session start.
func (s *Session) Origin() geom.Geographic { return s.projector.Origin() }

// Viewport returns the fixed viewport dimensions in pixels.
func (s *Session) Viewport() (w, h float64) { return s.viewportW, s.viewportH }

// RegisterLayer projects raw about the session origin and records the
// result as a selectable source. The session is left untouched on error;
// geom.ErrEmptyGeometry rejects a source with no projectable coordinates.
// Re-registering an existing id replaces the source: live instances follow
// the replacement and the shared fit is invalidated.
func (s *Session) RegisterLayer(id, name, color string, raw geom.Collection[geom.Geographic]) (*Layer, error) {
	projected, err := proj.ProjectCollection(raw, s.projector)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", id, err)
	}
	l := &Layer{ID: id, Name: name, Color: color, Raw: raw, Projected: projected}
	if old, exists := s.sources[id]; exists {
		for _, in := range s.active {
			if in.Source == old {
				in.Source = l
			}
		}
		s.fitValid = false
	} else {
		s.order = append(s.order, id)
	}
	s.sources[id] = l
	return l, nil
}

// Sources returns the registered layers in registration order.
func (s *Session) Sources() []*Layer {
	out := make([]*Layer, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.sources[id])
	}
	return out
}

// AddInstance places a new instance of the named source into the active
// set with a zero offset, and invalidates the shared viewport fit.
// Duplicate instances of the same source are allowed.
func (s *Session) AddInstance(sourceID string) (*Instance, error) {
	src, ok := s.sources[sourceID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayer, sourceID)
	}
	s.nextInst++
	in := &Instance{
		ID:     fmt.Sprintf("%s#%d", sourceID, s.nextInst),
		Source: src,
	}
	s.active = append(s.active, in)
	s.fitValid = false
	return in, nil
}

// RemoveInstance drops an instance from the active set and invalidates the
// shared viewport fit. Its offset is discarded; re-adding the same source
// starts from zero again.
func (s *Session) RemoveInstance(instanceID string) error {
	for i, in := range s.active {
		if in.ID == instanceID {
			s.active = append(s.active[:i], s.active[i+1:]...)
			s.fitValid = false
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownLayer, instanceID)
}

// Instances returns the active set in add order.
func (s *Session) Instances() []*Instance {
	return append([]*Instance(nil), s.active...)
}

// Instance looks up an active instance by id.
func (s *Session) Instance(instanceID string) (*Instance, bool) {
	for _, in := range s.active {
		if in.ID == instanceID {
			return in, true
		}
	}
	return nil, false
}

// ApplyDragDelta forwards a gesture step to the named instance. The shared
// fit is deliberately not recomputed: dragging one layer must not rescale
// the others.
func (s *Session) ApplyDragDelta(instanceID string, dx, dy float64) error {
	in, ok := s.Instance(instanceID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLayer, instanceID)
	}
	in.ApplyDragDelta(dx, dy)
	return nil
}

// Fit returns the shared viewport fit for the current active set,
// recomputing it only after an add or remove. ErrNoActiveLayers signals
// the normal empty state.
func (s *Session) Fit() (ViewportFit, error) {
	if !s.fitValid {
		s.fit, s.fitErr = Compose(s.active, s.viewportW, s.viewportH)
		s.fitValid = true
	}
	return s.fit, s.fitErr
}
