package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"heic2jpg/internal/inspect"
)

// Model shows how far a scan has got: candidates inspected out of the total,
// how many would overwrite an existing JPEG, how many cannot be decoded, and
// the file inspected last.
type Model struct {
	updates <-chan inspect.ProgressUpdate
	title   string
	started time.Time
	width   int

	total      int
	inspected  int
	unreadable int
	overwrites int
	last       string

	quitting bool
}

type doneMsg struct{}

type updateMsg inspect.ProgressUpdate

// NewModel renders progress for updates until the channel is closed.
func NewModel(title string, updates <-chan inspect.ProgressUpdate) Model {
	return Model{updates: updates, title: title, started: time.Now()}
}

func (m Model) Init() tea.Cmd {
	return listenForUpdates(m.updates)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case updateMsg:
		m.total += msg.TotalDelta
		m.inspected += msg.ProcessedDelta
		m.unreadable += msg.ErrorDelta
		m.overwrites += msg.OverwriteDelta
		if msg.Name != "" {
			m.last = msg.Name
		}
		return m, listenForUpdates(m.updates)
	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	ratio := 0.0
	if m.total > 0 {
		ratio = math.Min(1, float64(m.inspected)/float64(m.total))
	}

	counts := labelStyle.Render(fmt.Sprintf("Inspected %d/%d", m.inspected, m.total))
	counts += dimStyle.Render("  ·  ") + countStyle(m.overwrites, warnStyle).Render(fmt.Sprintf("would overwrite %d", m.overwrites))
	counts += dimStyle.Render("  ·  ") + countStyle(m.unreadable, errorStyle).Render(fmt.Sprintf("unreadable %d", m.unreadable))

	lines := []string{
		titleStyle.Render(m.title),
		counts,
		renderBar(m.barWidth(), ratio) + dimStyle.Render(fmt.Sprintf(" %3.0f%%", ratio*100)),
	}
	if m.last != "" {
		lines = append(lines, dimStyle.Render("Last: ")+labelStyle.Render(m.last))
	}
	lines = append(lines, dimStyle.Render(fmt.Sprintf("Elapsed: %s", time.Since(m.started).Round(time.Millisecond))))

	return strings.Join(lines, "\n")
}

func (m Model) barWidth() int {
	if m.width <= 0 {
		return 40
	}
	return max(20, min(60, m.width-16))
}

// countStyle keeps zero counts dim so only the ones that matter stand out.
func countStyle(n int, highlight lipgloss.Style) lipgloss.Style {
	if n == 0 {
		return dimStyle
	}
	return highlight
}

func listenForUpdates(updates <-chan inspect.ProgressUpdate) tea.Cmd {
	return func() tea.Msg {
		update, ok := <-updates
		if !ok {
			return doneMsg{}
		}
		return updateMsg(update)
	}
}

func renderBar(width int, ratio float64) string {
	filled := min(width, max(0, int(math.Round(ratio*float64(width)))))
	return "[" + barFilledStyle.Render(strings.Repeat("=", filled)) + strings.Repeat(" ", width-filled) + "]"
}
