// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hstackui/hstack/layout"
	"github.com/hstackui/hstack/layoutfile"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	goneStyle   = cellStyle.Faint(true)
)

// report writes one table row per element of the scene.
func report(w io.Writer, sc *layoutfile.Scene, dims layout.Dimensions) error {
	var gone []bool
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ELEMENT", "REQUEST", "VISIBILITY", "MEASURED", "BOUNDS", "STATE")
	sc.Walk(func(e layout.Element, depth int) {
		n := e.Embed()
		request := fmt.Sprintf("%v x %v", n.Width, n.Height)
		measured := fmt.Sprint(n.Measured().Size)
		bounds := fmt.Sprint(n.Bounds)
		if depth == 0 {
			request = fmt.Sprintf("%v x %v", sc.Width, sc.Height)
			measured = fmt.Sprint(dims.Size)
		}
		if n.Visibility == layout.Gone {
			measured, bounds = "-", "-"
		}
		t.Row(
			strings.Repeat("  ", depth)+sc.Name(e),
			request,
			n.Visibility.String(),
			measured,
			bounds,
			n.Measured().State.String(),
		)
		gone = append(gone, n.Visibility == layout.Gone)
	})
	t.StyleFunc(func(row, col int) lipgloss.Style {
		switch {
		case row == table.HeaderRow:
			return headerStyle
		case row >= 0 && row < len(gone) && gone[row]:
			return goneStyle
		default:
			return cellStyle
		}
	})
	title := fmt.Sprintf("%s stack, %v x %v", sc.Root.Variant, sc.Width, sc.Height)
	_, err := fmt.Fprintf(w, "%s\n%s\n", titleStyle.Render(title), t.Render())
	return err
}
