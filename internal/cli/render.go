package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/asciitype/pkg/textart"
)

// renderCommand creates the render command for converting text to ASCII art.
//
// Default settings (applied by the pipeline when neither flag nor config
// provides a value):
//   - font: "Lucida Sans Typewriter", size 16pt, regular style
//   - fill: '@', margins 0
//   - glyph spacing: backend shaping (kerning); --fixed-cells switches to
//     uniform cells sized from the reference character
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts     textart.Options
		output   string
		noConfig bool
	)

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Render text as ASCII art",
		Long: `Render text as ASCII art.

The text is rasterized with the requested font and the pixel coverage is
mapped onto a character grid: the fill character where the glyphs leave ink,
spaces elsewhere. Multiple arguments are joined with single spaces.

Margins crop pixels from the canvas edges; margins that exceed the canvas
collapse the output to an empty string rather than failing.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Text = strings.Join(args, " ")

			if !noConfig {
				path, err := configPath()
				if err == nil {
					cfg, err := loadConfig(path)
					if err != nil {
						return fmt.Errorf("load config %s: %w", path, err)
					}
					cfg.Render.apply(&opts, cmd.Flags().Changed)
				}
			}

			return c.runRender(cmd, opts, output)
		},
	}

	cmd.Flags().StringVarP(&opts.FontFamily, "font", "f", "", `font family (default "Lucida Sans Typewriter")`)
	cmd.Flags().IntVarP(&opts.FontSize, "size", "s", 0, "font size in points, 1-1000 (default 16)")
	cmd.Flags().StringVar(&opts.FontStyle, "style", "", "font style: regular (default), bold, italic, strikeout, underline")
	cmd.Flags().StringVarP(&opts.Fill, "fill", "c", "", `fill character for ink pixels (default "@")`)
	cmd.Flags().IntVar(&opts.MarginLeft, "margin-left", 0, "pixels cropped from the left edge, 0-1000")
	cmd.Flags().IntVar(&opts.MarginRight, "margin-right", 0, "pixels cropped from the right edge, 0-1000")
	cmd.Flags().IntVar(&opts.MarginTop, "margin-top", 0, "pixels cropped from the top edge, 0-1000")
	cmd.Flags().IntVar(&opts.MarginBottom, "margin-bottom", 0, "pixels cropped from the bottom edge, 0-1000")
	cmd.Flags().BoolVar(&opts.FixedCells, "fixed-cells", false, "place every glyph in an identical-width cell instead of kerned shaping")
	cmd.Flags().StringVar(&opts.ReferenceChar, "reference", "", `reference character sizing the fixed cell (default "W")`)
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the art to a file instead of stdout")
	cmd.Flags().BoolVar(&noConfig, "no-config", false, "ignore the user config file")

	return cmd
}

// runRender executes the pipeline and writes the result.
func (c *CLI) runRender(cmd *cobra.Command, opts textart.Options, output string) error {
	opts.Logger = c.Logger
	p := newProgress(c.Logger)

	art, err := textart.Render(opts)
	if err != nil {
		return err
	}

	rows := 0
	if art != "" {
		rows = strings.Count(art, "\n") + 1
	}

	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), art)
		c.Logger.Debugf("Rendered %d rows", rows)
		return nil
	}

	if err := os.WriteFile(output, []byte(art+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	p.done(fmt.Sprintf("Rendered %d rows to %s", rows, output))
	return nil
}
