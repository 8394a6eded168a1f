package screen

import "github.com/brizzai/map-signin/internal/catalog"

// ViewToken is one carousel entry in a viewability event
type ViewToken struct {
	Index      int
	Item       catalog.LocationPoint
	IsViewable bool
}

// ViewabilityEvent reports the entries currently on screen and the ones
// whose visibility just changed, in the order the carousel lists them
type ViewabilityEvent struct {
	Viewable []ViewToken
	Changed  []ViewToken
}

// Synchronize returns the location the map should focus after ev.
// Only the first changed entry is considered; if it just became visible it
// wins, otherwise the current focus is kept. Every call overwrites the
// previous result, so the last event delivered decides.
func Synchronize(focused catalog.LocationPoint, ev ViewabilityEvent) catalog.LocationPoint {
	if len(ev.Changed) == 0 {
		return focused
	}
	if first := ev.Changed[0]; first.IsViewable {
		return first.Item
	}
	return focused
}
