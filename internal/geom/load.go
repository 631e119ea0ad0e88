package geom

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a supported geometry file by extension.
// Supported: .geojson/.json, .csv, .kml, .wkt.
func Load(path string) (Collection[Geographic], error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseWKT(string(data))
	}
	return nil, errors.New("unsupported file: " + filepath.Ext(path))
}
