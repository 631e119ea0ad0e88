package tui

import (
	"errors"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"demercator/internal/geom"
	"demercator/internal/overlay"
)

// gridCell is one composited screen cell: a rune and the layer that drew
// it. owner -1 is empty, -2 the origin marker.
type gridCell struct {
	r     rune
	owner int
}

const (
	ownerNone   = -1
	ownerOrigin = -2
)

// drawShape rasterizes one shape variant onto the buffer through the
// device transform. Points become pixels; lines and rings become
// Bresenham outlines (the overlay draws outlines, not fills, so
// overlapping layers stay readable).
func drawShape[C any](buf *brailleBuf, s geom.Shape[C], to func(C) (int, int)) {
	micro := func(cs []C) [][2]int {
		out := make([][2]int, 0, len(cs))
		for _, c := range cs {
			x, y := to(c)
			out = append(out, [2]int{x, y})
		}
		return out
	}
	switch v := s.(type) {
	case geom.Point[C]:
		x, y := to(v.Coord)
		buf.setPixel(x, y)
	case geom.LineString[C]:
		buf.drawPolyline(micro(v.Coords))
	case geom.Polygon[C]:
		for _, ring := range v.Rings {
			buf.drawRing(micro(ring))
		}
	case geom.MultiPolygon[C]:
		for _, poly := range v.Polygons {
			for _, ring := range poly {
				buf.drawRing(micro(ring))
			}
		}
	}
}

// renderOverlayMap draws the true-scale view: every active instance's
// fitted geometry, shifted by its alignment offset, one color per layer.
func (m Model) renderOverlayMap(w, h int) string {
	frame, err := m.session.Frame()
	if err != nil {
		if errors.Is(err, overlay.ErrNoActiveLayers) {
			return placeHint(w, h, "no active layers ─ Tab opens locations, a adds one")
		}
		return placeHint(w, h, "render error: "+err.Error())
	}

	wMic, hMic := w*2, h*4
	k := math.Min(float64(wMic)/frame.Fit.Width, float64(hMic)/frame.Fit.Height)
	padX := (float64(wMic) - k*frame.Fit.Width) / 2
	padY := (float64(hMic) - k*frame.Fit.Height) / 2

	grid := newGrid(w, h)
	styles := make([]lipgloss.Style, len(frame.Layers))
	for i, layer := range frame.Layers {
		styles[i] = layerStyle(layer.Color)
		buf := newBrailleBuf(w, h)
		ox, oy := layer.OffsetX, layer.OffsetY
		to := func(p overlay.ScreenPoint) (int, int) {
			return int((p.X+ox)*k + padX), int((p.Y+oy)*k + padY)
		}
		for _, s := range layer.Shapes {
			drawShape(buf, s, to)
		}
		overlayGrid(grid, buf, i)
	}

	// origin marker at the fitted location of planar (0, 0)
	fx, fy := frame.Fit.Apply(geom.Planar{})
	setMarker(grid, int(fx*k+padX)/2, int(fy*k+padY)/4, '+')

	return strings.Join(stylizeGrid(grid, styles), "\n")
}

// renderContextMap draws the context view: raw geographic geometry with
// its own equirectangular bounding-box fit, independent of the overlay's
// projection.
func (m Model) renderContextMap(w, h int) string {
	cf := m.session.ContextFrame()

	cols := make([]geom.Collection[geom.Geographic], 0, len(cf.Layers))
	for _, layer := range cf.Layers {
		cols = append(cols, layer.Shapes)
	}
	bbox, ok := geom.Bounds(cols...)
	if !ok {
		bbox = geom.BBox{MinX: cf.Origin.Lon, MinY: cf.Origin.Lat, MaxX: cf.Origin.Lon, MaxY: cf.Origin.Lat}
	}
	bbox.Extend(cf.Origin.Lon, cf.Origin.Lat)
	// degenerate extents still need a drawable span
	if bbox.Width() == 0 {
		bbox.MinX -= 0.5
		bbox.MaxX += 0.5
	}
	if bbox.Height() == 0 {
		bbox.MinY -= 0.5
		bbox.MaxY += 0.5
	}

	wMic, hMic := w*2, h*4
	to := func(g geom.Geographic) (int, int) {
		nx := (g.Lon - bbox.MinX) / bbox.Width()
		ny := (g.Lat - bbox.MinY) / bbox.Height()
		return int(nx * float64(wMic-1)), int((1 - ny) * float64(hMic-1))
	}

	grid := newGrid(w, h)
	styles := make([]lipgloss.Style, len(cf.Layers))
	for i, layer := range cf.Layers {
		styles[i] = layerStyle(layer.Color)
		buf := newBrailleBuf(w, h)
		for _, s := range layer.Shapes {
			drawShape(buf, s, to)
		}
		overlayGrid(grid, buf, i)
	}

	mx, my := to(cf.Origin)
	setMarker(grid, mx/2, my/4, '◉')

	return strings.Join(stylizeGrid(grid, styles), "\n")
}

func newGrid(w, h int) [][]gridCell {
	grid := make([][]gridCell, h)
	for y := range grid {
		row := make([]gridCell, w)
		for x := range row {
			row[x] = gridCell{r: ' ', owner: ownerNone}
		}
		grid[y] = row
	}
	return grid
}

// overlayGrid composites one layer's braille buffer; later layers win the
// cell, matching the overlay's draw order.
func overlayGrid(grid [][]gridCell, buf *brailleBuf, owner int) {
	for y := range grid {
		for x := range grid[y] {
			if mask := buf.cell(x, y); mask != 0 {
				grid[y][x] = gridCell{r: rune(0x2800 + int(mask)), owner: owner}
			}
		}
	}
}

func setMarker(grid [][]gridCell, cx, cy int, r rune) {
	if cy >= 0 && cy < len(grid) && cx >= 0 && cx < len(grid[cy]) {
		grid[cy][cx] = gridCell{r: r, owner: ownerOrigin}
	}
}

// stylizeGrid renders rows, batching runs of cells with the same owner so
// color sequences are emitted per run, not per rune.
func stylizeGrid(grid [][]gridCell, styles []lipgloss.Style) []string {
	out := make([]string, len(grid))
	for y, row := range grid {
		var sb strings.Builder
		for x := 0; x < len(row); {
			owner := row[x].owner
			var run strings.Builder
			for x < len(row) && row[x].owner == owner {
				run.WriteRune(row[x].r)
				x++
			}
			switch {
			case owner == ownerNone:
				sb.WriteString(run.String())
			case owner == ownerOrigin:
				sb.WriteString(originStyle.Render(run.String()))
			case owner >= 0 && owner < len(styles):
				sb.WriteString(styles[owner].Render(run.String()))
			default:
				sb.WriteString(run.String())
			}
		}
		out[y] = sb.String()
	}
	return out
}

func placeHint(w, h int, text string) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(text))
}
