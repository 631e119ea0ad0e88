package overlay

import (
	"encoding/json"
	"io"

	"demercator/internal/geom"
)

// Interchange mirrors the serialized session layout: origin plus raw
// geometry per registered layer. Alignment offsets are ephemeral UI state
// and are not part of it.
type Interchange struct {
	Origin struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"origin"`
	Layers []InterchangeLayer `json:"layers"`
}

// InterchangeLayer is one registered source in the interchange document.
type InterchangeLayer struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Color    string         `json:"color"`
	Geometry map[string]any `json:"geometry"` // GeoJSON FeatureCollection
}

// Export writes the session interchange document as JSON.
func (s *Session) Export(w io.Writer) error {
	var doc Interchange
	doc.Origin.Lat = s.Origin().Lat
	doc.Origin.Lon = s.Origin().Lon
	doc.Layers = make([]InterchangeLayer, 0, len(s.order))
	for _, l := range s.Sources() {
		doc.Layers = append(doc.Layers, InterchangeLayer{
			ID:       l.ID,
			Name:     l.Name,
			Color:    l.Color,
			Geometry: geom.GeoJSON(l.Raw),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
