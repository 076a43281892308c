package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/arjunsachdev/regretly/cmd/tui/internal/view"
	"github.com/arjunsachdev/regretly/internal/config"
	"github.com/arjunsachdev/regretly/internal/database"
	"github.com/arjunsachdev/regretly/internal/settings"
	"github.com/arjunsachdev/regretly/internal/spend"
	spendStore "github.com/arjunsachdev/regretly/internal/spend/store"
)

type model struct {
	spendService *spend.Service
	settings     *settings.Store

	currentView View

	logView      view.LogSpendModel
	historyView  view.HistoryModel
	reportView   view.ReportModel
	nudgesView   view.NudgesModel
	settingsView view.SettingsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewLog      View = 1
	ViewHistory  View = 2
	ViewReport   View = 3
	ViewNudges   View = 4
	ViewSettings View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID := cfg.UserID()
	if userID == uuid.Nil {
		slog.Error("USER_ID is not set or not a valid UUID")
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	path := cfg.Settings.Path
	if path == "" {
		path = settings.DefaultPath()
	}

	settingsStore, err := settings.Open(path)
	if err != nil {
		slog.Error("failed to open settings", "path", path, "error", err)
		os.Exit(1)
	}

	svc := spend.NewService(spendStore.New(db), settingsStore, userID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := svc.Load(ctx); err != nil {
		slog.Error("failed to load spends", "error", err)
		os.Exit(1)
	}

	return model{
		spendService: svc,
		settings:     settingsStore,
		currentView:  ViewMenu,
		logView:      view.NewLogSpendModel(svc),
		historyView:  view.NewHistoryModel(svc),
		reportView:   view.NewReportModel(svc),
		nudgesView:   view.NewNudgesModel(svc),
		settingsView: view.NewSettingsModel(settingsStore),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewLog
				m.logView = view.NewLogSpendModel(m.spendService)

				return m, m.logView.Init()
			case "2":
				m.currentView = ViewHistory
				m.historyView = view.NewHistoryModel(m.spendService)

				return m, m.historyView.Init()
			case "3":
				m.currentView = ViewReport
				m.reportView = view.NewReportModel(m.spendService)

				return m, m.reportView.Init()
			case "4":
				m.currentView = ViewNudges
				m.nudgesView = view.NewNudgesModel(m.spendService)

				return m, m.nudgesView.Init()
			case "5":
				m.currentView = ViewSettings
				m.settingsView = view.NewSettingsModel(m.settings)

				return m, m.settingsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLog:
		var newModel tea.Model
		newModel, cmd = m.logView.Update(msg)
		m.logView = newModel.(view.LogSpendModel)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.historyView.Update(msg)
		m.historyView = newModel.(view.HistoryModel)
	case ViewReport:
		var newModel tea.Model
		newModel, cmd = m.reportView.Update(msg)
		m.reportView = newModel.(view.ReportModel)
	case ViewNudges:
		var newModel tea.Model
		newModel, cmd = m.nudgesView.Update(msg)
		m.nudgesView = newModel.(view.NudgesModel)
	case ViewSettings:
		var newModel tea.Model
		newModel, cmd = m.settingsView.Update(msg)
		m.settingsView = newModel.(view.SettingsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Regretly\n\n" +
				"1. Log a Spend\n" +
				"2. Spend History\n" +
				"3. Monthly Report\n" +
				"4. Nudges\n" +
				"5. Settings\n\n" +
				"q. Quit",
		)
	case ViewLog:
		return m.logView.View()
	case ViewHistory:
		return m.historyView.View()
	case ViewReport:
		return m.reportView.View()
	case ViewNudges:
		return m.nudgesView.View()
	case ViewSettings:
		return m.settingsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
