package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/flopp/go-findfont"
	"github.com/spf13/cobra"

	"github.com/matzehuels/asciitype/pkg/fontkit"
)

// fontsCommand creates the fonts command for listing available font families.
func (c *CLI) fontsCommand() *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List available font families",
		Long: `List available font families.

Builtin families are embedded in the binary and always available. With
--system, the font files installed on this host are listed as well; any of
them can be requested by family name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
			rows := [][]string{}
			for _, family := range fontkit.Builtin() {
				styles := ""
				for i, s := range fontkit.BuiltinStyles(family) {
					if i > 0 {
						styles += ", "
					}
					styles += string(s)
				}
				rows = append(rows, []string{family, styles})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Builtin Family", "Styles").
				Rows(rows...).
				StyleFunc(func(row, col int) lipgloss.Style {
					if row == -1 {
						return headerStyle
					}
					if col == 0 {
						return StyleSuccess
					}
					return StyleValue
				})

			fmt.Fprintln(out, t.Render())

			if !system {
				fmt.Fprintln(out, StyleDim.Render("use --system to list fonts installed on this host"))
				return nil
			}

			paths := findfont.List()
			names := make([]string, 0, len(paths))
			for _, p := range paths {
				names = append(names, filepath.Base(p))
			}
			sort.Strings(names)

			fmt.Fprintln(out, StyleTitle.Render(fmt.Sprintf("Installed fonts (%d)", len(names))))
			for _, name := range names {
				fmt.Fprintln(out, "  "+name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "also list fonts installed on this host")

	return cmd
}
