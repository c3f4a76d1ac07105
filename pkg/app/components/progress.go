package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/mangareader/pkg/app/styles"
	"github.com/kerbaras/mangareader/pkg/reader"
)

// ReaderStatus renders the reader's bottom line: a page bar followed by the
// page counter, zoom, fit mode and direction.
func ReaderStatus(c reader.Cursor, width int) string {
	info := fmt.Sprintf(" Page %d / %d • %.0f%% • fit %s • %s",
		c.Page+1, c.PageCount, c.Zoom*100, c.Fit, directionLabel(c.Direction))

	barWidth := width - len([]rune(info))
	if barWidth < 10 {
		return styles.MutedStyle.Render(strings.TrimSpace(info))
	}
	return renderProgressBar(c.Page+1, c.PageCount, barWidth) + styles.MutedStyle.Render(info)
}

func directionLabel(d reader.Direction) string {
	if d == reader.RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

func renderProgressBar(current, total, width int) string {
	if total == 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
