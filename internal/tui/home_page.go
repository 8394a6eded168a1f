package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxProfileLines keeps a large profile from pushing the button off screen
const maxProfileLines = 12

func (m AppModel) homeView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Map Sign-In"),
		"",
		"Signed in as "+m.state.Profile.DisplayName(),
		"",
		m.profileDetails(),
		"",
		buttonStyle.Render("Open Map"),
		"",
		m.statusLine(),
		m.help.View(pageKeys{m.keys.openMap, m.keys.removeLocal, m.keys.quit}),
	)
}

// profileDetails lists the top-level profile fields in key order
func (m AppModel) profileDetails() string {
	keys := make([]string, 0, len(m.state.Profile))
	for k := range m.state.Profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var lines []string
	for i, k := range keys {
		if i == maxProfileLines {
			lines = append(lines, fmt.Sprintf("... and %d more", len(keys)-i))
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %v", k, m.state.Profile[k]))
	}
	return subtleStyle.Render(strings.Join(lines, "\n"))
}
