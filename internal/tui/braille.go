package tui

// brailleBuf is a 2x4-per-cell micro-pixel canvas rendered as braille
// runes. Each layer draws into its own buffer; compositing picks the
// topmost layer per cell so colors stay per-layer.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawPolyline connects consecutive micro points.
func (b *brailleBuf) drawPolyline(pts [][2]int) {
	for i := 1; i < len(pts); i++ {
		b.drawLineMicro(pts[i-1][0], pts[i-1][1], pts[i][0], pts[i][1])
	}
}

// drawRing draws a closed outline; the last point connects back to the
// first even if the ring arrived unclosed.
func (b *brailleBuf) drawRing(pts [][2]int) {
	if len(pts) < 2 {
		return
	}
	b.drawPolyline(pts)
	last := pts[len(pts)-1]
	first := pts[0]
	if last != first {
		b.drawLineMicro(last[0], last[1], first[0], first[1])
	}
}

// cell returns the braille mask at cell coords, 0 when empty.
func (b *brailleBuf) cell(cx, cy int) uint8 {
	if cy < 0 || cy >= b.h || cx < 0 || cx >= b.w {
		return 0
	}
	return b.m[cy][cx]
}
