package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"demercator/internal/config"
	"demercator/internal/geom"
	"demercator/internal/overlay"
	"demercator/internal/proj"
	"demercator/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	exportPath := flag.String("export", "", "write the session interchange JSON to this path and exit")
	flag.Parse()
	if *configPath == "" && flag.NArg() > 0 {
		*configPath = flag.Arg(0)
	}
	if *configPath == "" {
		log.Fatal("usage: demercator -config config.yaml [-export session.json]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	collections := make([]geom.Collection[geom.Geographic], len(cfg.Locations))
	for i, loc := range cfg.Locations {
		col, err := geom.Load(loc.Path)
		if err != nil {
			log.Fatalf("location %q: %v", loc.ID, err)
		}
		collections[i] = col
	}

	var explicit *geom.Geographic
	if cfg.ProjectionCenter != nil {
		g := cfg.ProjectionCenter.Geographic()
		explicit = &g
	}
	origin, err := proj.ResolveCenter(explicit, collections[0])
	if err != nil {
		log.Fatal(err)
	}

	w, h := cfg.ViewportSize()
	session := overlay.NewSession(origin, w, h)
	for i, loc := range cfg.Locations {
		if _, err := session.RegisterLayer(loc.ID, loc.Name, loc.Color, collections[i]); err != nil {
			log.Fatal(err)
		}
	}

	if *exportPath != "" {
		f, err := os.Create(*exportPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		if err := session.Export(f); err != nil {
			log.Fatal(err)
		}
		return
	}

	m := tui.New(session)
	if err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Start(); err != nil {
		log.Fatal(err)
	}
}
