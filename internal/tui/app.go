// Package tui renders the sign-in screen in the terminal. All state changes
// go through screen.State; blocking work runs in commands.
package tui

import (
	"context"

	authmodels "github.com/brizzai/map-signin/internal/auth/models"
	"github.com/brizzai/map-signin/internal/catalog"
	"github.com/brizzai/map-signin/internal/logger"
	"github.com/brizzai/map-signin/internal/models"
	"github.com/brizzai/map-signin/internal/screen"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Controller is the part of screen.Controller the UI drives
type Controller interface {
	Catalog() catalog.Catalog
	Initial() screen.State
	Region(s screen.State) catalog.Region
	CanSignIn() bool
	LoadLocal(ctx context.Context) models.UserProfile
	Authorize(ctx context.Context) authmodels.AuthResult
	FetchProfile(ctx context.Context, accessToken string) (models.UserProfile, error)
	RemoveLocal(ctx context.Context) error
}

// carouselHeight is the card (two lines plus border) and the page dots
const carouselHeight = 5

// AppModel is the main application model; the page shown follows the phase
type AppModel struct {
	ctx      context.Context
	ctrl     Controller
	state    screen.State
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	carousel Carousel
	mapView  MapView
	width    int
	height   int
	status   string

	// authCtx lives from "Sign in" until the profile fetch completes
	authCtx    context.Context
	cancelAuth context.CancelFunc
}

// NewAppModel creates the model. Cancelling ctx aborts any sign-in.
func NewAppModel(ctx context.Context, ctrl Controller) AppModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = subtleStyle

	c := ctrl.Catalog()
	return AppModel{
		ctx:      ctx,
		ctrl:     ctrl,
		state:    ctrl.Initial(),
		keys:     newKeyMap(),
		help:     help.New(),
		spinner:  s,
		carousel: NewCarousel(c.Points()),
		mapView:  NewMapView(c.Markers()),
	}
}

// State returns the current screen state
func (m AppModel) State() screen.State {
	return m.state
}

// Init reads the local store and starts the spinner
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		loadLocalCmd(m.ctx, m.ctrl, m.state.Attempt),
		m.spinner.Tick,
	)
}

// Update applies one message to the state
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.help.Width = msg.Width - h
		m.carousel = m.carousel.SetWidth(msg.Width - h)
		// eight lines of title, header, frame, spacing and help surround the map
		m.mapView = m.mapView.SetSize(msg.Width-h-2, msg.Height-v-5-carouselHeight-3)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case profileLoadedMsg:
		m.state = m.state.LocalProfileLoaded(msg.attempt, msg.profile)
		return m, nil

	case authResultMsg:
		current := m.current(msg.attempt)
		m.state = m.state.AuthFinished(msg.attempt, msg.result)
		if !current {
			logger.Debug("Dropped stale authorization result", zap.Uint64("attempt", msg.attempt))
			return m, nil
		}
		if m.state.Phase != screen.Authenticating {
			m.endAuth()
			m.status = "Sign-in did not complete."
			return m, nil
		}
		return m, fetchProfileCmd(m.authCtx, m.ctrl, msg.attempt, msg.result.AccessToken)

	case profileFetchedMsg:
		current := m.current(msg.attempt)
		m.state = m.state.ProfileFetched(msg.attempt, msg.profile, msg.err)
		if !current {
			logger.Debug("Dropped stale profile", zap.Uint64("attempt", msg.attempt))
			return m, nil
		}
		m.endAuth()
		if m.state.LoggedIn() {
			m.status = ""
		} else {
			m.status = "Sign-in did not complete."
		}
		return m, nil

	case storeRemovedMsg:
		if msg.err != nil {
			m.status = "Could not remove the local store."
		} else {
			m.status = "Local store removed."
		}
		return m, nil

	case tea.MouseMsg:
		if m.state.Phase == screen.MapOpen &&
			msg.Action == tea.MouseActionPress &&
			msg.Button == tea.MouseButtonLeft &&
			m.inMap(msg.X, msg.Y) {
			m.state = m.state.PressMap()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.quit) {
		m.endAuth()
		return m, tea.Quit
	}

	switch m.state.Phase {
	case screen.LoggedOut:
		switch {
		case key.Matches(msg, m.keys.signIn):
			if !m.ctrl.CanSignIn() {
				return m, nil
			}
			m.state = m.state.BeginSignIn()
			m.status = ""
			m.authCtx, m.cancelAuth = context.WithCancel(m.ctx)
			return m, authorizeCmd(m.authCtx, m.ctrl, m.state.Attempt)
		case key.Matches(msg, m.keys.removeLocal):
			return m.removeLocal()
		}

	case screen.Authenticating:
		if key.Matches(msg, m.keys.cancel) && m.cancelAuth != nil {
			// The pending command returns a cancelled result
			m.cancelAuth()
		}

	case screen.MapClosed:
		switch {
		case key.Matches(msg, m.keys.openMap):
			m.state = m.state.OpenMap()
		case key.Matches(msg, m.keys.removeLocal):
			return m.removeLocal()
		}

	case screen.MapOpen:
		switch {
		case key.Matches(msg, m.keys.prev):
			m.move(-1)
		case key.Matches(msg, m.keys.next):
			m.move(1)
		case key.Matches(msg, m.keys.closeMap):
			m.state = m.state.PressMap()
		case key.Matches(msg, m.keys.removeLocal):
			return m.removeLocal()
		}
	}
	return m, nil
}

func (m *AppModel) move(delta int) {
	c, ev, ok := m.carousel.Move(delta)
	if !ok {
		return
	}
	m.carousel = c
	m.state = m.state.Viewed(ev)
}

func (m AppModel) removeLocal() (tea.Model, tea.Cmd) {
	m.endAuth()
	m.state = m.state.LocalStoreRemoved()
	m.status = ""
	return m, removeLocalCmd(m.ctx, m.ctrl)
}

// current reports whether attempt is the sign-in still in progress
func (m AppModel) current(attempt uint64) bool {
	return m.state.Phase == screen.Authenticating && attempt == m.state.Attempt
}

func (m *AppModel) endAuth() {
	if m.cancelAuth != nil {
		m.cancelAuth()
	}
	m.authCtx, m.cancelAuth = nil, nil
}

// inMap reports whether the cell x, y is inside the map frame
func (m AppModel) inMap(x, y int) bool {
	left := docStyle.GetMarginLeft()
	// margin, title, blank line and map header come before the frame
	top := docStyle.GetMarginTop() + 3
	return x >= left && x < left+m.mapView.width+2 &&
		y >= top && y < top+m.mapView.height+2
}

// View renders the page for the current phase
func (m AppModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var page string
	switch m.state.Phase {
	case screen.LoggedOut:
		page = m.loginView()
	case screen.Authenticating:
		page = m.authenticatingView()
	case screen.MapClosed:
		page = m.homeView()
	case screen.MapOpen:
		page = m.mapPageView()
	}
	return docStyle.Render(page)
}
