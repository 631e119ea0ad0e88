package geom

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts Point coordinates from a KML file (Placemark > Point >
// coordinates). KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) (Collection[Geographic], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks       []kmlPlacemark `xml:"Placemark"`
		DocPlacemarks    []kmlPlacemark `xml:"Document>Placemark"`
		FolderPlacemarks []kmlPlacemark `xml:"Document>Folder>Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	placemarks := append(doc.Placemarks, doc.DocPlacemarks...)
	placemarks = append(placemarks, doc.FolderPlacemarks...)
	var col Collection[Geographic]
	for _, pm := range placemarks {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			col = append(col, Point[Geographic]{Coord: Geographic{Lat: lat, Lon: lon}})
		}
	}
	if len(col) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return col, nil
}
