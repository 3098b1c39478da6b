package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/tui"
)

// NewBrowseCmd creates the browse command, which always runs the interactive browser.
func NewBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse posts in the interactive terminal UI",
		Long: `Opens the interactive posts browser.

Keys: ↑/↓ or j/k move, enter/space shows or hides the body, ←/→ or p/n change
page, s cycles the sort, t/i sort by title or id, ? shows all keys, q quits.
Rows, sort options and the Previous/Next buttons can also be clicked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

// runBrowse starts the Bubble Tea program. The fetch shares the command
// context, so quitting or an interrupt cancels a pending request.
func runBrowse(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	model := tui.NewPostsModel(ctx, newFetcher(cfg), tui.Options{
		SortMethod:   cfg.SortMethod(),
		LoadingDelay: cfg.API.LoadingDelay,
		RowHeight:    cfg.View.RowHeight,
	})

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info().Ctx(ctx).Msg("browser interrupted")
			return nil
		}
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
