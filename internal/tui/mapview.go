package tui

import (
	"fmt"
	"strings"

	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// MapView draws a region and its markers as a character grid
type MapView struct {
	region  catalog.Region
	markers []catalog.Marker
	width   int
	height  int
}

func NewMapView(markers []catalog.Marker) MapView {
	return MapView{markers: markers}
}

// SetRegion replaces the displayed region
func (v MapView) SetRegion(r catalog.Region) MapView {
	v.region = r
	return v
}

// SetSize sets the grid size, not counting the frame
func (v MapView) SetSize(w, h int) MapView {
	v.width = max(w, 1)
	v.height = max(h, 1)
	return v
}

// Height returns the rendered height including header and frame
func (v MapView) Height() int {
	return v.height + 3
}

// Visible returns the markers that fall inside the current region
func (v MapView) Visible() []catalog.Marker {
	var out []catalog.Marker
	for _, m := range v.markers {
		if v.region.Contains(m.Coordinate) {
			out = append(out, m)
		}
	}
	return out
}

func (v MapView) View() string {
	grid := make([][]string, v.height)
	dot := subtleStyle.Render("·")
	for r := range grid {
		grid[r] = make([]string, v.width)
		for c := range grid[r] {
			grid[r][c] = dot
		}
	}
	grid[v.height/2][v.width/2] = subtleStyle.Render("+")

	visible := v.Visible()
	for _, m := range visible {
		col, row, ok := v.region.Project(m.Coordinate, v.width, v.height)
		if !ok {
			continue
		}
		style := markerStyle(m.Color)
		grid[row][col] = style.Render("●")
		for i, ch := range []rune(" " + m.Label) {
			if col+1+i >= v.width {
				break
			}
			grid[row][col+1+i] = style.Render(string(ch))
		}
	}

	lines := make([]string, v.height)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}

	header := subtleStyle.Render(fmt.Sprintf("%.6f, %.6f  Δ %.2f° × %.2f°",
		v.region.Center.Latitude, v.region.Center.Longitude,
		v.region.LatitudeDelta, v.region.LongitudeDelta))
	if hidden := len(v.markers) - len(visible); hidden > 0 {
		header += subtleStyle.Render(fmt.Sprintf("  (%d more outside the view)", hidden))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		mapFrameStyle.Render(strings.Join(lines, "\n")),
	)
}
