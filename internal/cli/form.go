package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"homeprice/internal/tui"
)

func runForm(ctx context.Context, e *env) error {
	m := tui.New(newController(e), tui.Options{
		Context:           ctx,
		AnimationDuration: e.cfg.AnimationDuration(),
		ToastDuration:     e.cfg.ToastDuration(),
		ScrollDelay:       e.cfg.ScrollDelay(),
		ConfettiCount:     e.cfg.ConfettiCount,
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithOutput(e.stdout))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
