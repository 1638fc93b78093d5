package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciitype/pkg/errors"
)

// previewCommand creates the preview command for interactive rendering.
func (c *CLI) previewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <text>",
		Short: "Interactively preview renderings of a text",
		Long: `Interactively preview renderings of a text.

Opens a terminal UI that re-renders the text live while you cycle through
builtin families, styles, sizes and fill characters.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			model := NewPreviewModel(text)
			p := tea.NewProgram(model, tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "preview UI failed")
			}
			return nil
		},
	}

	return cmd
}
