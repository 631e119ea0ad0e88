package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"demercator/internal/overlay"
)

type locationItem struct {
	id    string
	name  string
	color string
}

func (l locationItem) Title() string       { return l.name }
func (l locationItem) Description() string { return l.id + "  " + l.color }
func (l locationItem) FilterValue() string { return l.name }

// refreshLocations rebuilds the picker from the session's registered
// sources.
func (m *Model) refreshLocations() {
	sources := m.session.Sources()
	items := make([]list.Item, 0, len(sources))
	for _, src := range sources {
		items = append(items, locationItem{id: src.ID, name: src.Name, color: src.Color})
	}
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no locations configured"
	}
}

// addSelected places a new instance of the picker's selection into the
// active set. Duplicates are allowed; each instance aligns independently.
func (m *Model) addSelected() {
	it, ok := m.l.SelectedItem().(locationItem)
	if !ok {
		m.status = "nothing selected"
		return
	}
	in, err := m.session.AddInstance(it.id)
	if err != nil {
		m.status = "add error: " + err.Error()
		return
	}
	m.selected = len(m.session.Instances()) - 1
	m.status = fmt.Sprintf("added %s (%d active)", in.ID, len(m.session.Instances()))
	if m.showLayers {
		m.refreshLayerTable()
	}
}

// removeSelected drops the currently selected instance.
func (m *Model) removeSelected() {
	in, ok := m.selectedInstance()
	if !ok {
		m.status = "no layer selected"
		return
	}
	if err := m.session.RemoveInstance(in.ID); err != nil {
		m.status = "remove error: " + err.Error()
		return
	}
	n := len(m.session.Instances())
	if m.selected >= n {
		m.selected = n - 1
	}
	m.status = fmt.Sprintf("removed %s (%d active)", in.ID, n)
	if m.showLayers {
		m.refreshLayerTable()
	}
}

func (m Model) selectedInstance() (*overlay.Instance, bool) {
	ins := m.session.Instances()
	if m.selected < 0 || m.selected >= len(ins) {
		return nil, false
	}
	return ins[m.selected], true
}

// cycleSelected moves the instance selection by dir (+1/-1), wrapping.
func (m *Model) cycleSelected(dir int) {
	ins := m.session.Instances()
	if len(ins) == 0 {
		m.selected = -1
		return
	}
	m.selected = ((m.selected+dir)%len(ins) + len(ins)) % len(ins)
	m.status = "selected " + ins[m.selected].ID
	if m.showLayers {
		m.refreshLayerTable()
	}
}
