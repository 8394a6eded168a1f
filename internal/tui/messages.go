package tui

import (
	"context"

	authmodels "github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

// profileLoadedMsg carries the profile read from the local store on start
type profileLoadedMsg struct {
	attempt uint64
	profile models.UserProfile
}

// authResultMsg is the outcome of one sign-in attempt
type authResultMsg struct {
	attempt uint64
	result  authmodels.AuthResult
}

// profileFetchedMsg is the outcome of fetching and storing the profile
type profileFetchedMsg struct {
	attempt uint64
	profile models.UserProfile
	err     error
}

// storeRemovedMsg reports that the local store was cleared
type storeRemovedMsg struct {
	err error
}

func loadLocalCmd(ctx context.Context, ctrl Controller, attempt uint64) tea.Cmd {
	return func() tea.Msg {
		return profileLoadedMsg{attempt: attempt, profile: ctrl.LoadLocal(ctx)}
	}
}

func authorizeCmd(ctx context.Context, ctrl Controller, attempt uint64) tea.Cmd {
	return func() tea.Msg {
		return authResultMsg{attempt: attempt, result: ctrl.Authorize(ctx)}
	}
}

func fetchProfileCmd(ctx context.Context, ctrl Controller, attempt uint64, token string) tea.Cmd {
	return func() tea.Msg {
		p, err := ctrl.FetchProfile(ctx, token)
		return profileFetchedMsg{attempt: attempt, profile: p, err: err}
	}
}

func removeLocalCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		return storeRemovedMsg{err: ctrl.RemoveLocal(ctx)}
	}
}
