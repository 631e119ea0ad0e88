package tui

import (
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"demercator/internal/overlay"
)

// Model is the terminal front end for one overlay session. It consumes the
// session's render frames and feeds user gestures (add, remove, drag) back
// into it.
type Model struct {
	session *overlay.Session

	width  int
	height int

	showSidebar bool
	helpVisible bool
	showContext bool
	showLayers  bool

	status string

	// Location picker
	l list.Model

	// Active instance table
	tbl table.Model

	// index into session.Instances(); -1 when none
	selected int

	// mouse drag state
	dragging   bool
	lastMouseX int
	lastMouseY int

	// paste mode for ad-hoc WKT layers
	pasteMode bool
	ta        textarea.Model
	pasteSeq  int

	// inspect popup
	inspectPopup string

	// export target for the session interchange document
	exportPath string
}

// Pixels moved per arrow-key drag step.
const keyDragStep = 10.0

// New builds the viewer around an existing session.
func New(session *overlay.Session) Model {
	m := Model{
		session:     session,
		showSidebar: true,
		helpVisible: true,
		selected:    -1,
		status:      "demercator ready",
		exportPath:  "demercator-session.json",
	}
	// location picker setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Locations"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT (POINT, MULTIPOINT, LINESTRING, POLYGON). Enter adds it as a layer; Esc cancels."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// instance table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshLocations()
	return m
}

// WithExportPath overrides where 'e' writes the interchange document.
func (m Model) WithExportPath(path string) Model {
	if path != "" {
		m.exportPath = path
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }
