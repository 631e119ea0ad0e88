package tui

import (
	"fmt"
	"os"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"demercator/internal/config"
	"demercator/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(28-2, m.height-1-2) // provisional; refined in View
		}
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			switch msg.String() {
			case "esc":
				m.pasteMode = false
				m.ta.Blur()
				return m, nil
			case "enter":
				m.addPastedWKT()
				return m, nil
			}
			var cmd tea.Cmd
			m.ta, cmd = m.ta.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshLocations()
				m.l.SetSize(28-2, m.height-1-2)
			}
		case "enter":
			if m.showSidebar {
				m.addSelected()
			}
		case "a":
			m.addSelected()
		case "x", "d":
			m.removeSelected()
		case "[":
			m.cycleSelected(-1)
		case "]":
			m.cycleSelected(1)
		case "g":
			m.showContext = !m.showContext
			if m.showContext {
				m.status = "context view (globe)"
			} else {
				m.status = "true-scale view"
			}
		case "t":
			m.showLayers = !m.showLayers
			if m.showLayers {
				m.refreshLayerTable()
			}
		case "e":
			m.exportSession()
		case "p":
			m.pasteMode = !m.pasteMode
			if m.pasteMode {
				m.ta.SetValue("")
				m.status = "paste mode"
				m.ta.Focus()
			} else {
				m.status = "view mode"
				m.ta.Blur()
			}
		case "i":
			if m.inspectPopup == "" {
				m.inspectPopup = m.inspectSelected()
				m.status = "inspect popup"
			} else {
				m.inspectPopup = ""
			}
		case "h":
			m.helpVisible = !m.helpVisible
		case "esc":
			m.inspectPopup = ""
		case "up":
			m.dragSelected(0, -keyDragStep)
		case "down":
			m.dragSelected(0, keyDragStep)
		case "left":
			m.dragSelected(-keyDragStep, 0)
		case "right":
			m.dragSelected(keyDragStep, 0)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showLayers {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}
	return m, nil
}

// dragSelected routes a drag delta (viewport pixels) into the selected
// instance's alignment offset. The shared fit is untouched, so other
// layers keep their scale and position.
func (m *Model) dragSelected(dx, dy float64) {
	if m.showContext {
		m.status = "alignment applies to the true-scale view (g to switch back)"
		return
	}
	in, ok := m.selectedInstance()
	if !ok {
		m.status = "no layer selected"
		return
	}
	if err := m.session.ApplyDragDelta(in.ID, dx, dy); err != nil {
		m.status = "drag error: " + err.Error()
		return
	}
	tx, ty := in.Offset()
	m.status = fmt.Sprintf("%s offset (%+.0f, %+.0f) px", in.ID, tx, ty)
	if m.showLayers {
		m.refreshLayerTable()
	}
}

// handleMouse implements press-drag-release alignment of the selected
// instance over the map area. Cell deltas convert back to viewport pixels
// through the inverse of the device scale used by the renderer.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	// map layout (must match View)
	sidebarWidth := 0
	if m.showSidebar {
		sidebarWidth = 28
	}
	headerHeight := 1
	footerHeight := 2
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)
	mapWidth := contentWidth - sidebarWidth - 1
	if mapWidth < 10 {
		mapWidth = 10
	}
	mapOriginX := sidebarWidth
	if m.showSidebar {
		mapOriginX++
	}
	mapOriginY := headerHeight

	inside := msg.X >= mapOriginX && msg.X < mapOriginX+mapWidth &&
		msg.Y >= mapOriginY && msg.Y < mapOriginY+contentHeight

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && inside && !m.showContext {
			m.dragging = true
			m.lastMouseX, m.lastMouseY = msg.X, msg.Y
		}
	case tea.MouseActionRelease:
		m.dragging = false
	case tea.MouseActionMotion:
		if !m.dragging {
			return
		}
		dxCells := msg.X - m.lastMouseX
		dyCells := msg.Y - m.lastMouseY
		m.lastMouseX, m.lastMouseY = msg.X, msg.Y
		if dxCells == 0 && dyCells == 0 {
			return
		}
		k, ok := m.deviceScale(mapWidth, contentHeight)
		if !ok {
			return
		}
		// one cell is 2x4 micro pixels
		m.dragSelected(float64(dxCells*2)/k, float64(dyCells*4)/k)
	}
}

// deviceScale returns micro-pixels per viewport pixel for the current fit.
func (m *Model) deviceScale(w, h int) (float64, bool) {
	fit, err := m.session.Fit()
	if err != nil {
		return 0, false
	}
	kx := float64(w*2) / fit.Width
	ky := float64(h*4) / fit.Height
	if ky < kx {
		kx = ky
	}
	if kx <= 0 {
		return 0, false
	}
	return kx, true
}

// addPastedWKT registers the textarea's WKT as an ad-hoc source and adds
// an instance of it.
func (m *Model) addPastedWKT() {
	w := strings.TrimSpace(m.ta.Value())
	if w == "" {
		m.status = "paste: empty"
		return
	}
	col, err := geom.ParseWKT(w)
	if err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	m.pasteSeq++
	id := fmt.Sprintf("wkt-%d", m.pasteSeq)
	color := config.DefaultPalette[(len(m.session.Sources()))%len(config.DefaultPalette)]
	if _, err := m.session.RegisterLayer(id, "pasted "+id, color, col); err != nil {
		m.status = "wkt error: " + err.Error()
		return
	}
	m.refreshLocations()
	if _, err := m.session.AddInstance(id); err != nil {
		m.status = "add error: " + err.Error()
		return
	}
	m.selected = len(m.session.Instances()) - 1
	m.status = "rendered WKT as " + id
	m.pasteMode = false
	m.ta.Blur()
}

// exportSession writes the interchange document (origin + raw layer
// geometry; offsets are ephemeral and excluded).
func (m *Model) exportSession() {
	f, err := os.Create(m.exportPath)
	if err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	defer f.Close()
	if err := m.session.Export(f); err != nil {
		m.status = "export error: " + err.Error()
		return
	}
	m.status = "exported " + m.exportPath
}
