// ABOUTME: Entry point for the Bubble Tea front-end
// ABOUTME: Runs the tea.Program and forwards config reloads to it under one errgroup

package btea

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// RunOptions configures the program.
type RunOptions struct {
	Mouse  bool
	Input  io.Reader // nil means stdin
	Output io.Writer // nil means stderr, keeping stdout for the chosen value
}

// Run starts the program and blocks until the user exits or ctx is
// cancelled. Messages from reloads are delivered to the model while it runs.
// It returns the final model so the caller can read the selection.
func Run(ctx context.Context, m AppModel, reloads <-chan ConfigReloadedMsg, ro RunOptions) (AppModel, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := ro.Output
	if out == nil {
		out = os.Stderr
	}
	opts := []tea.ProgramOption{tea.WithOutput(out), tea.WithContext(ctx), tea.WithReportFocus()}
	if ro.Input != nil {
		opts = append(opts, tea.WithInput(ro.Input))
	}
	if ro.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(m, opts...)

	g, gctx := errgroup.WithContext(ctx)
	final := m
	g.Go(func() error {
		defer cancel()
		res, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			err = nil
		}
		if err != nil {
			return fmt.Errorf("bubble tea: %w", err)
		}
		if am, ok := res.(AppModel); ok {
			final = am
		}
		return nil
	})
	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case msg, ok := <-reloads:
				if !ok {
					return nil
				}
				p.Send(msg)
			}
		}
	})

	err := g.Wait()
	return final, err
}
