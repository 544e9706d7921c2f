package commands

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
)

func levelsCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List the levels with their card counts and progression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			return printLevels(cmd.OutOrStdout(), catalog.NewFixtureCatalog())
		},
	}
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured output")
	return cmd
}

// printLevels writes the level table. tabwriter counts colour escapes as
// cell width, so only the unpadded outer columns are coloured.
func printLevels(out io.Writer, c *catalog.Catalog) error {
	tier := color.New(color.FgCyan, color.Bold).SprintFunc()
	start := color.New(color.FgGreen).SprintFunc()

	var table bytes.Buffer
	tw := tabwriter.NewWriter(&table, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tCARDS\tNEXT\tSTARTS")

	names := []string{"TIER"}
	for _, level := range catalog.Levels() {
		names = append(names, level.Type.String())

		counts := make([]string, 0, len(domain.AllStyles()))
		for _, style := range domain.AllStyles() {
			counts = append(counts, fmt.Sprintf("%s=%d", style, c.CardCount(level, style)))
		}

		var next, starts []string
		for _, d := range domain.AllDifficulties() {
			if n, ok := c.NextLevel(level, d); ok {
				next = append(next, fmt.Sprintf("%s→%d", d, n.Type))
			} else {
				next = append(next, fmt.Sprintf("%s→end", d))
			}
			if c.InitialLevel(d).Type == level.Type {
				starts = append(starts, string(d))
			}
		}

		startCell := strings.Join(starts, ",")
		if startCell != "" {
			startCell = start(startCell)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			level.Message,
			strings.Join(counts, " "),
			strings.Join(next, " "),
			startCell)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	width := 0
	for _, name := range names {
		width = max(width, len(name))
	}
	rows := strings.Split(strings.TrimSuffix(table.String(), "\n"), "\n")
	for i, row := range rows {
		cell := fmt.Sprintf("%-*s", width+2, names[i])
		if i > 0 {
			cell = tier(cell)
		}
		if _, err := fmt.Fprintln(out, cell+row); err != nil {
			return err
		}
	}
	return nil
}
