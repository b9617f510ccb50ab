package dashboard

import (
	"context"
	"fmt"

	"compete/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logging.BootError("dashboard exited with error: %v", err)
		return fmt.Errorf("run dashboard: %w", err)
	}
	logging.Boot("dashboard closed")
	return nil
}
