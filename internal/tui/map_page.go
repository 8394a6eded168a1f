package tui

import "github.com/charmbracelet/lipgloss"

func (m AppModel) mapPageView() string {
	mv := m.mapView.SetRegion(m.ctrl.Region(m.state))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.state.Focused.Name),
		"",
		mv.View(),
		"",
		lipgloss.PlaceHorizontal(m.width-docStyle.GetHorizontalFrameSize(), lipgloss.Center, m.carousel.View()),
		"",
		m.help.View(pageKeys{m.keys.prev, m.keys.next, m.keys.closeMap, m.keys.removeLocal, m.keys.quit}),
	)
}
