package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummaryRow is one line of the table printed after a scan. Warn rows are
// counts that point at something the user may want to look at before
// converting.
type SummaryRow struct {
	Label string
	Value string
	Warn  bool
}

// CountRow builds a row for a counter. With warnNonZero set, any count
// above zero is highlighted.
func CountRow(label string, n int, warnNonZero bool) SummaryRow {
	return SummaryRow{Label: label, Value: strconv.Itoa(n), Warn: warnNonZero && n > 0}
}

// RenderSummary lays rows out as a two-column table between horizontal rules.
// Widths are measured in terminal cells, so accented labels stay aligned.
func RenderSummary(rows []SummaryRow) string {
	labelWidth, valueWidth := 0, 0
	for _, row := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(row.Label))
		valueWidth = max(valueWidth, lipgloss.Width(row.Value))
	}

	rule := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, rule)
	for _, row := range rows {
		style := valueStyle
		if row.Warn {
			style = warnStyle.Bold(true)
		}
		label := labelStyle.Width(labelWidth).Render(row.Label)
		lines = append(lines, fmt.Sprintf("%s | %s", label, style.Render(row.Value)))
	}
	lines = append(lines, rule)

	return strings.Join(lines, "\n")
}
