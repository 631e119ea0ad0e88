package overlay

import (
	"errors"

	"demercator/internal/geom"
)

// ErrNoActiveLayers signals a composer call with an empty active set. This
// is a valid, renderable state, not a failure: the caller draws nothing.
var ErrNoActiveLayers = errors.New("no active layers")

// ViewportFit maps projected meters into viewport pixels: a uniform scale
// (aspect ratio preserved, so distances stay comparable on both axes), a
// centering translation, and a vertical flip from north-up meters to
// screen-down pixels.
type ViewportFit struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
	Width      float64
	Height     float64
	Bounds     geom.BBox // combined projected extent being fitted
}

// Apply maps a projected coordinate into viewport pixels.
func (f ViewportFit) Apply(p geom.Planar) (x, y float64) {
	return f.Scale*p.X + f.TranslateX, -f.Scale*p.Y + f.TranslateY
}

// Compose computes the fit over the union extent of the projected
// geometry of all active instances. Alignment offsets never participate.
func Compose(active []*Instance, viewportW, viewportH float64) (ViewportFit, error) {
	if len(active) == 0 {
		return ViewportFit{}, ErrNoActiveLayers
	}
	cols := make([]geom.Collection[geom.Planar], 0, len(active))
	for _, in := range active {
		cols = append(cols, in.Source.Projected)
	}
	bbox, ok := geom.Bounds(cols...)
	if !ok {
		return ViewportFit{}, ErrNoActiveLayers
	}

	w, h := bbox.Width(), bbox.Height()
	var scale float64
	switch {
	case w > 0 && h > 0:
		scale = min(viewportW/w, viewportH/h)
	case w > 0:
		scale = viewportW / w
	case h > 0:
		scale = viewportH / h
	default:
		// single coincident point; any scale centers it
		scale = 1
	}
	return ViewportFit{
		Scale:      scale,
		TranslateX: (viewportW - scale*(bbox.MinX+bbox.MaxX)) / 2,
		TranslateY: (viewportH + scale*(bbox.MinY+bbox.MaxY)) / 2,
		Width:      viewportW,
		Height:     viewportH,
		Bounds:     bbox,
	}, nil
}
