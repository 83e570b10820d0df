package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/dino/internal/tui/anim"
	"github.com/garrettladley/dino/internal/tui/components/dino"
	"github.com/garrettladley/dino/internal/tui/page/help"
	"github.com/garrettladley/dino/internal/tui/page/home"
	"github.com/garrettladley/dino/internal/tui/page/splash"
	"github.com/garrettladley/dino/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	homePage
	helpPage
)

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps
	home           *home.Controller
	sprite         dino.Sprite
}

func New(deps Deps) Model {
	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		home: home.NewController(home.Deps{
			Fetcher:   deps.Fetcher,
			PatientID: deps.PatientID,
			Logger:    deps.Logger,
			Timeout:   deps.RequestTimeout,
		}),
	}
}

func (m *Model) Init() tea.Cmd {
	m.home.Mount(m.deps.Ctx)
	return tea.Batch(
		splash.Tick(),
		dino.Tick(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		m.home.Resize(msg.Height)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if m.page == homePage && mouse.Button == tea.MouseLeft && mouse.Y == m.home.ButtonRow() {
			return m, m.home.TogglePanel()
		}

	// terminal focus only counts while the home page is on screen
	case tea.FocusMsg:
		if m.page == homePage {
			return m, m.home.OnScreenFocused()
		}

	// splash timer expired - transition to home
	case splash.TickMsg:
		if m.page == splashPage {
			return m, m.enterHome()
		}

	case home.StatusMsg:
		m.home.HandleStatus(msg)

	case anim.FrameMsg:
		return m, m.home.HandleFrame(msg)

	case dino.FrameMsg:
		m.sprite = m.sprite.Next()
		return m, dino.Tick()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "q" || key == "ctrl+c" {
		m.home.Unmount()
		return tea.Quit
	}

	switch m.page {
	case splashPage:
		return m.enterHome()

	case homePage:
		switch key {
		case "space", "enter", "t":
			return m.home.TogglePanel()
		case "r":
			return m.home.RefreshStatus(home.TriggerManual)
		case "?":
			m.page = helpPage
		}

	case helpPage:
		switch key {
		case "esc", "?", "backspace":
			return m.enterHome()
		}
	}
	return nil
}

// enterHome shows the home page, which counts as the screen gaining focus.
func (m *Model) enterHome() tea.Cmd {
	m.page = homePage
	return m.home.OnScreenFocused()
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.ReportFocus = true
	view.MouseMode = tea.MouseModeCellMotion

	// splash uses the panel surface, everything else the sky
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorPanel
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case homePage:
		content = home.View(m.home, m.theme, m.sprite, m.viewportWidth, m.viewportHeight)
	case helpPage:
		content = help.View(m.theme, m.viewportWidth, m.viewportHeight)
	}

	view.SetContent(lipgloss.NewStyle().MaxHeight(m.viewportHeight).Render(content))
	return view
}
