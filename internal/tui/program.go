package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/fasco-shop/storefront/internal/page"
)

// Run mounts p, shows it in the terminal and unmounts it when the user quits
// or ctx ends.
func Run(ctx context.Context, p *page.Page, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := p.Mount(ctx); err != nil {
		return err
	}
	defer p.Unmount()

	model := NewModel(p.Site(), p, ctx.Done())
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	prog := tea.NewProgram(model, opts...)

	// Silence external logs (WARN/ERRO) during TUI to avoid corrupting the view.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run preview: %w", err)
	}
	return nil
}
