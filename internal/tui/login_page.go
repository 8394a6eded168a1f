package tui

import "github.com/charmbracelet/lipgloss"

func (m AppModel) loginView() string {
	button := buttonStyle.Render("Sign in")
	hint := ""
	if !m.ctrl.CanSignIn() {
		button = disabledButtonStyle.Render("Sign in")
		hint = subtleStyle.Render("Sign-in is unavailable until a client ID is configured.")
	}

	keys := pageKeys{m.keys.signIn, m.keys.removeLocal, m.keys.quit}
	if !m.ctrl.CanSignIn() {
		keys = pageKeys{m.keys.removeLocal, m.keys.quit}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Map Sign-In"),
		"",
		"You are not signed in.",
		"",
		button,
		hint,
		"",
		m.statusLine(),
		m.help.View(keys),
	)
}

func (m AppModel) authenticatingView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Map Sign-In"),
		"",
		m.spinner.View()+" Waiting for sign-in to finish in the browser...",
		"",
		m.help.View(pageKeys{m.keys.cancel, m.keys.quit}),
	)
}

func (m AppModel) statusLine() string {
	if m.status == "" {
		return ""
	}
	return statusMessageStyle(m.status)
}

