// Package render formats frequency distributions for output.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/charfreq/internal/freq"
)

const (
	barRune             = '█'
	minBarWidth         = 10
	terminalWidthBackup = 80
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	countStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// ChartOptions controls the bar chart layout.
type ChartOptions struct {
	// Width is the total chart width in cells. Zero auto-detects the
	// terminal width with an 80-column fallback.
	Width int
	// Top limits the chart to the first N entries. Zero means all.
	Top int
}

// Chart renders a horizontal bar chart for the ordered entries. Each
// line carries the character, its count, and a bar scaled against the
// largest count. Wide glyphs occupy two cells, so label padding uses
// display width rather than rune count.
func Chart(w io.Writer, entries []freq.Entry, opts ChartOptions) error {
	if opts.Top > 0 && opts.Top < len(entries) {
		entries = entries[:opts.Top]
	}
	if len(entries) == 0 {
		return nil
	}

	totalWidth := opts.Width
	if totalWidth <= 0 {
		totalWidth = terminalWidth()
	}

	labelWidth := 1
	maxCount := 0
	for _, e := range entries {
		if cw := runewidth.RuneWidth(e.Char); cw > labelWidth {
			labelWidth = cw
		}
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	countWidth := len(fmt.Sprintf("%d", maxCount))

	barWidth := totalWidth - labelWidth - countWidth - 2
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	for _, e := range entries {
		bar := strings.Repeat(string(barRune), barLength(e.Count, maxCount, barWidth))
		label := padCell(string(e.Char), labelWidth, false)
		count := padCell(fmt.Sprintf("%d", e.Count), countWidth, true)
		line := fmt.Sprintf("%s %s %s", label, countStyle.Render(count), barStyle.Render(bar))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}
	return nil
}

// barLength scales a count into bar cells. Any non-zero count draws at
// least one cell.
func barLength(count, maxCount, barWidth int) int {
	if count <= 0 || maxCount <= 0 {
		return 0
	}
	length := int(math.Round(float64(count) / float64(maxCount) * float64(barWidth)))
	if length < 1 {
		length = 1
	}
	if length > barWidth {
		length = barWidth
	}
	return length
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := runewidth.StringWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := strings.Repeat(" ", width-valueWidth)
	if rightAlign {
		return padding + value
	}
	return value + padding
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
