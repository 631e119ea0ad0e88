package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshLayerTable rebuilds the active-instance panel: one row per layer
// instance with its source, color, and current alignment offset.
func (m *Model) refreshLayerTable() {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "instance", Width: 18},
		{Title: "name", Width: 20},
		{Title: "color", Width: 8},
		{Title: "offset px", Width: 14},
	}
	ins := m.session.Instances()
	rows := make([]table.Row, 0, len(ins))
	for i, in := range ins {
		mark := ""
		if i == m.selected {
			mark = "> "
		}
		tx, ty := in.Offset()
		rows = append(rows, table.Row{
			fmt.Sprintf("%s%d", mark, i+1),
			in.ID,
			in.Source.Name,
			in.Source.Color,
			fmt.Sprintf("%+.0f,%+.0f", tx, ty),
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

// inspectSelected builds the popup text for the selected instance.
func (m *Model) inspectSelected() string {
	in, ok := m.selectedInstance()
	if !ok {
		return "no layer selected"
	}
	tx, ty := in.Offset()
	lines := []string{
		fmt.Sprintf("instance: %s", in.ID),
		fmt.Sprintf("source: %s (%s)", in.Source.Name, in.Source.ID),
		fmt.Sprintf("color: %s", in.Source.Color),
		fmt.Sprintf("shapes: %d  coords: %d", len(in.Source.Projected), in.Source.Projected.CoordCount()),
		fmt.Sprintf("offset: (%+.0f, %+.0f) px", tx, ty),
	}
	if fit, err := m.session.Fit(); err == nil {
		lines = append(lines, fmt.Sprintf("combined extent: %.0f x %.0f m", fit.Bounds.Width(), fit.Bounds.Height()))
	}
	return strings.Join(lines, "\n")
}
