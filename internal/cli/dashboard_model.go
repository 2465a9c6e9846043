package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ninaorlova/lingua/internal/cli/formatter"
	"github.com/ninaorlova/lingua/internal/contract"
)

// dashboardTab identifies one pane of the dashboard.
type dashboardTab int

const (
	tabOverview dashboardTab = iota
	tabSkills
	tabHeatmap
	tabWhatNow
)

var tabLabels = []string{"Overview", "Skills", "Heatmap", "What Now"}

// dashboardData is everything the dashboard shows, loaded in one pass.
type dashboardData struct {
	status  *contract.StatusResponse
	skills  *contract.SkillsResponse
	heatmap *contract.HeatmapResponse
	whatnow *contract.RecommendResponse
}

// dashboardLoadedMsg delivers the loaded data or the first error.
type dashboardLoadedMsg struct {
	data dashboardData
	err  error
}

// dashboardModel is the bubbletea model for the interactive dashboard.
type dashboardModel struct {
	app     *App
	user    string
	tab     dashboardTab
	spinner spinner.Model
	loading bool
	err     error
	data    dashboardData
}

func newDashboardModel(app *App, user string) dashboardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorPurple)

	return dashboardModel{
		app:     app,
		user:    user,
		spinner: sp,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// loadCmd fetches all panes in one command so a refresh is atomic.
func (m dashboardModel) loadCmd() tea.Cmd {
	app, user := m.app, m.user
	return func() tea.Msg {
		ctx := context.Background()
		var data dashboardData
		var err error

		if data.status, err = app.Analytics.Status(ctx, user); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		if data.skills, err = app.Analytics.Skills(ctx, contract.SkillsRequest{UserID: user}); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		if data.heatmap, err = app.Analytics.Heatmap(ctx, contract.NewHeatmapRequest(user)); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		if data.whatnow, err = app.Recommends.Build(ctx, contract.NewRecommendRequest(user)); err != nil {
			return dashboardLoadedMsg{err: err}
		}
		return dashboardLoadedMsg{data: data}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right":
			m.tab = (m.tab + 1) % dashboardTab(len(tabLabels))
			return m, nil
		case "shift+tab", "left":
			m.tab = (m.tab + dashboardTab(len(tabLabels)) - 1) % dashboardTab(len(tabLabels))
			return m, nil
		case "1", "2", "3", "4":
			m.tab = dashboardTab(msg.String()[0] - '1')
			return m, nil
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, tea.Batch(m.spinner.Tick, m.loadCmd())
			}
			return m, nil
		}

	case dashboardLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.data = msg.data
		}
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.loading {
		return "\n  " + m.spinner.View() + formatter.Dim("Loading your learning picture...") + "\n"
	}
	if m.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n" +
			"  " + formatter.Dim("Press r to retry, q to quit.") + "\n"
	}

	var body string
	switch m.tab {
	case tabSkills:
		body = formatter.FormatSkills(m.data.skills)
	case tabHeatmap:
		body = formatter.FormatHeatmap(m.data.heatmap)
	case tabWhatNow:
		body = formatter.FormatWhatNow(m.data.whatnow)
	default:
		body = formatter.FormatStatus(m.data.status)
	}

	return m.tabBar() + "\n" + body + "\n" + m.helpLine()
}

func (m dashboardModel) tabBar() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		if dashboardTab(i) == m.tab {
			parts = append(parts, formatter.StyleHeader.Render("["+label+"]"))
		} else {
			parts = append(parts, formatter.Dim(" "+label+" "))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m dashboardModel) helpLine() string {
	return formatter.Dim("  tab/1-4 switch · r refresh · q quit")
}
