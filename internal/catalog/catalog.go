// Package catalog holds the fixed set of locations shown on the map.
package catalog

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Color is the display color of a marker
type Color string

const (
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorBlack  Color = "black"
)

// LocationPoint is a named point on the map
type LocationPoint struct {
	Name         string  `json:"name" yaml:"name"`
	Latitude     float64 `json:"latitude" yaml:"latitude"`
	Longitude    float64 `json:"longitude" yaml:"longitude"`
	DisplayColor Color   `json:"display_color" yaml:"display_color"`
}

// The catalog never changes, so list position doubles as the item key.
var locations = [...]LocationPoint{
	{Name: "Hospital 1", Latitude: 44.968046, Longitude: -94.420307, DisplayColor: ColorRed},
	{Name: "Hospital 2", Latitude: 50.33328, Longitude: -89.132008, DisplayColor: ColorGreen},
	{Name: "Hospital 3", Latitude: 46.755787, Longitude: -116.359998, DisplayColor: ColorBlue},
	{Name: "Hospital 4", Latitude: 37.844843, Longitude: -116.54911, DisplayColor: ColorYellow},
	{Name: "Hospital 5", Latitude: 33.755783, Longitude: -116.360066, DisplayColor: ColorPurple},
	{Name: "Hospital 6", Latitude: 40.920474, Longitude: -93.447851, DisplayColor: ColorBlack},
}

// Catalog is a read-only ordered view over the locations
type Catalog struct {
	points []LocationPoint
}

// Default returns the built-in catalog
func Default() Catalog {
	return Catalog{points: locations[:]}
}

// Len returns the number of locations
func (c Catalog) Len() int {
	return len(c.points)
}

// At returns the location at index i
func (c Catalog) At(i int) LocationPoint {
	return c.points[i]
}

// First returns the default focused location
func (c Catalog) First() LocationPoint {
	return c.points[0]
}

// Points returns a copy of the locations in order
func (c Catalog) Points() []LocationPoint {
	out := make([]LocationPoint, len(c.points))
	copy(out, c.points)
	return out
}

// Contains reports whether p is one of the catalog entries
func (c Catalog) Contains(p LocationPoint) bool {
	return c.IndexOf(p) >= 0
}

// IndexOf returns the position of p, or -1
func (c Catalog) IndexOf(p LocationPoint) int {
	for i, q := range c.points {
		if q == p {
			return i
		}
	}
	return -1
}

// Markers returns one marker per location
func (c Catalog) Markers() []Marker {
	markers := make([]Marker, len(c.points))
	for i, p := range c.points {
		markers[i] = Marker{Key: i, Coordinate: p.Coordinate(), Label: p.Name, Color: p.DisplayColor}
	}
	return markers
}

// Export writes the catalog as "yaml" or "json"
func (c Catalog) Export(format string) ([]byte, error) {
	doc := struct {
		Locations []LocationPoint `json:"locations" yaml:"locations"`
	}{Locations: c.points}

	switch format {
	case "yaml", "yml":
		return yaml.Marshal(doc)
	case "json":
		return json.MarshalIndent(doc, "", "  ")
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
