package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arjunsachdev/regretly/internal/regret"
)

const dbTimeout = 5 * time.Second

// FormatAmount formats a monetary amount for display.
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for store operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// LevelStyle colors a regret level the same way everywhere in the TUI.
func LevelStyle(level regret.Level) lipgloss.Style {
	switch level {
	case regret.LevelLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	case regret.LevelMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	}
}
