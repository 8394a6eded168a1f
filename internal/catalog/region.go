package catalog

// Coordinate is a latitude/longitude pair in degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Coordinate returns the position of the location
func (p LocationPoint) Coordinate() Coordinate {
	return Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// Region is the area displayed by the map: a center and the span around it
type Region struct {
	Center         Coordinate
	LatitudeDelta  float64
	LongitudeDelta float64
}

// RegionFor centers a region on p
func RegionFor(p LocationPoint, latDelta, lonDelta float64) Region {
	return Region{Center: p.Coordinate(), LatitudeDelta: latDelta, LongitudeDelta: lonDelta}
}

// Contains reports whether c lies inside the region, edges included
func (r Region) Contains(c Coordinate) bool {
	return c.Latitude >= r.Center.Latitude-r.LatitudeDelta/2 &&
		c.Latitude <= r.Center.Latitude+r.LatitudeDelta/2 &&
		c.Longitude >= r.Center.Longitude-r.LongitudeDelta/2 &&
		c.Longitude <= r.Center.Longitude+r.LongitudeDelta/2
}

// Project maps c into a width x height grid with row 0 at the north edge.
// ok is false when c falls outside the region.
func (r Region) Project(c Coordinate, width, height int) (col, row int, ok bool) {
	if width <= 0 || height <= 0 || !r.Contains(c) {
		return 0, 0, false
	}
	x := (c.Longitude - (r.Center.Longitude - r.LongitudeDelta/2)) / r.LongitudeDelta
	y := ((r.Center.Latitude + r.LatitudeDelta/2) - c.Latitude) / r.LatitudeDelta

	col = clamp(int(x*float64(width)), 0, width-1)
	row = clamp(int(y*float64(height)), 0, height-1)
	return col, row, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Marker is a labelled, colored point drawn on the map
type Marker struct {
	Key        int
	Coordinate Coordinate
	Label      string
	Color      Color
}
