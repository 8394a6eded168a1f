package tui

import (
	"strings"

	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/brizzai/map-signin/internal/screen"
	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 18

// Carousel is a horizontal, paged list of location cards. One card is in
// view at a time; its neighbours are drawn dimmed when there is room.
type Carousel struct {
	items []catalog.LocationPoint
	index int
	width int
}

func NewCarousel(items []catalog.LocationPoint) Carousel {
	return Carousel{items: items}
}

// Index returns the position of the card in view
func (c Carousel) Index() int {
	return c.index
}

// Current returns the card in view
func (c Carousel) Current() catalog.LocationPoint {
	return c.items[c.index]
}

// SetWidth sets the width available for rendering
func (c Carousel) SetWidth(w int) Carousel {
	c.width = w
	return c
}

// Move pages by delta cards. ok is false when the carousel is already at
// that end, in which case no event is produced. The event lists the card
// that came into view before the one that left it.
func (c Carousel) Move(delta int) (Carousel, screen.ViewabilityEvent, bool) {
	next := c.index + delta
	if delta == 0 || next < 0 || next >= len(c.items) {
		return c, screen.ViewabilityEvent{}, false
	}

	shown := screen.ViewToken{Index: next, Item: c.items[next], IsViewable: true}
	hidden := screen.ViewToken{Index: c.index, Item: c.items[c.index], IsViewable: false}
	c.index = next

	return c, screen.ViewabilityEvent{
		Viewable: []screen.ViewToken{shown},
		Changed:  []screen.ViewToken{shown, hidden},
	}, true
}

func (c Carousel) View() string {
	if len(c.items) == 0 {
		return ""
	}

	cards := []string{c.card(c.index, true)}
	// Each neighbour card plus its border takes cardWidth+4 columns
	if c.width >= 3*(cardWidth+4) {
		if c.index > 0 {
			cards = append([]string{c.card(c.index-1, false)}, cards...)
		}
		if c.index < len(c.items)-1 {
			cards = append(cards, c.card(c.index+1, false))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, cards...)
	return lipgloss.JoinVertical(lipgloss.Center, row, c.dots())
}

func (c Carousel) card(i int, active bool) string {
	p := c.items[i]
	body := lipgloss.JoinVertical(lipgloss.Center,
		markerStyle(p.DisplayColor).Render(" "+p.Name+" "),
		subtleStyle.Render(string(p.DisplayColor)),
	)
	style := cardStyle.Width(cardWidth)
	if !active {
		style = style.Faint(true)
	}
	return style.Render(body)
}

func (c Carousel) dots() string {
	var b strings.Builder
	for i := range c.items {
		if i == c.index {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return subtleStyle.Render(b.String())
}
