package overlay

import "demercator/internal/geom"

// ScreenPoint is a coordinate in viewport pixels, y down.
type ScreenPoint struct {
	X float64
	Y float64
}

// XY returns the coordinate as (x, y).
func (p ScreenPoint) XY() (float64, float64) { return p.X, p.Y }

// LayerPath is everything a renderer needs to draw one layer instance in
// the true-scale view. Geometry is already mapped through the shared fit;
// the consumer applies the offset as a post-hoc transform, so dragging
// never re-walks geometry.
type LayerPath struct {
	InstanceID string
	SourceID   string
	Name       string
	Color      string
	Shapes     geom.Collection[ScreenPoint]
	OffsetX    float64
	OffsetY    float64
}

// Frame is the true-scale render contract for the current active set.
type Frame struct {
	Fit    ViewportFit
	Layers []LayerPath
}

// ContextLayer carries one instance's raw geographic geometry for the
// context view, which runs its own independent projection.
type ContextLayer struct {
	InstanceID string
	SourceID   string
	Name       string
	Color      string
	Shapes     geom.Collection[geom.Geographic]
}

// ContextFrame is the context-view render contract: raw coordinates plus
// the origin, no projected data.
type ContextFrame struct {
	Origin geom.Geographic
	Layers []ContextLayer
}

// Frame assembles the true-scale render contract. ErrNoActiveLayers is
// passed through from the composer for the empty state.
func (s *Session) Frame() (Frame, error) {
	fit, err := s.Fit()
	if err != nil {
		return Frame{}, err
	}
	layers := make([]LayerPath, 0, len(s.active))
	for _, in := range s.active {
		shapes := make(geom.Collection[ScreenPoint], 0, len(in.Source.Projected))
		for _, sh := range in.Source.Projected {
			shapes = append(shapes, geom.Map(sh, func(p geom.Planar) ScreenPoint {
				x, y := fit.Apply(p)
				return ScreenPoint{X: x, Y: y}
			}))
		}
		tx, ty := in.Offset()
		layers = append(layers, LayerPath{
			InstanceID: in.ID,
			SourceID:   in.Source.ID,
			Name:       in.Source.Name,
			Color:      in.Source.Color,
			Shapes:     shapes,
			OffsetX:    tx,
			OffsetY:    ty,
		})
	}
	return Frame{Fit: fit, Layers: layers}, nil
}

// ContextFrame assembles the context-view contract from raw geometry. The
// empty active set yields an empty layer list, which the context view
// renders as the origin alone.
func (s *Session) ContextFrame() ContextFrame {
	layers := make([]ContextLayer, 0, len(s.active))
	for _, in := range s.active {
		layers = append(layers, ContextLayer{
			InstanceID: in.ID,
			SourceID:   in.Source.ID,
			Name:       in.Source.Name,
			Color:      in.Source.Color,
			Shapes:     in.Source.Raw,
		})
	}
	return ContextFrame{Origin: s.Origin(), Layers: layers}
}
