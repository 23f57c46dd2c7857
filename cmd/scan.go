package cmd

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"heic2jpg/internal/converter"
	"heic2jpg/internal/inspect"
	"heic2jpg/internal/tui"
	"heic2jpg/pkg/imgutil"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Preview what a conversion run would do without writing files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig()
		if err != nil {
			return err
		}
		if err := cfg.EnsureDir(); err != nil {
			return err
		}

		updates := make(chan inspect.ProgressUpdate, 64)
		model := tui.NewModel("heic2jpg scan", updates)
		program := tea.NewProgram(model, tea.WithInput(nil), tea.WithOutput(cmd.ErrOrStderr()))

		uiDone := make(chan struct{})
		go func() {
			_, _ = program.Run()
			close(uiDone)
		}()

		summary, reports, err := inspect.Run(cmd.Context(), cfg, updates)
		close(updates)
		<-uiDone
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s\n\n", scanDimStyle.Render(cfg.Dir))
		printReports(out, reports)
		fmt.Fprintln(out)
		fmt.Fprintln(out, tui.RenderSummary(summaryRows(summary)))
		return nil
	},
}

func printReports(w io.Writer, reports []inspect.Report) {
	for _, report := range reports {
		switch report.Outcome {
		case converter.OutcomeCandidate:
			line := fmt.Sprintf("%s -> %s", report.Name, report.Target)
			if report.TargetExists && report.Err == nil {
				line += scanWarnStyle.Render(" (overwrites)")
			}
			fmt.Fprintln(w, nameStyle(report.Outcome).Bold(true).Render(line))
			if report.Err != nil {
				fmt.Fprintf(w, "  %s %s\n", scanBulletStyle.Render("-"), scanErrorStyle.Render(report.Err.Error()))
				continue
			}
			printDetail(w, "Content", fmt.Sprintf("%s %dx%d", report.Kind, report.Width, report.Height))
			if report.Device != "" {
				device := report.Device
				if report.DeviceType != "" {
					device += fmt.Sprintf(" (%s)", report.DeviceType)
				}
				printDetail(w, "Device", device)
			}
			if report.Captured != "" {
				printDetail(w, "Captured", report.Captured)
			}
			if report.ExifErr != nil {
				printDetail(w, "EXIF", scanWarnStyle.Render("unreadable: "+report.ExifErr.Error()))
			}
		case converter.OutcomeSkip:
			fmt.Fprintf(w, "%s %s\n", nameStyle(report.Outcome).Render(report.Name), scanDimStyle.Render("skipped, already an image"))
		default:
			if strings.EqualFold(ext(report.Name), ".heic") {
				fmt.Fprintf(w, "%s %s\n", nameStyle(report.Outcome).Render(report.Name), scanWarnStyle.Render("ignored, only .heic and .HEIC are converted"))
			}
		}
	}
}

func printDetail(w io.Writer, category, value string) {
	fmt.Fprintf(w, "  %s %s %s\n",
		scanBulletStyle.Render("-"),
		scanCategoryStyle.Render(category+":"),
		scanValueStyle.Render(value),
	)
}

func summaryRows(summary inspect.Summary) []tui.SummaryRow {
	return []tui.SummaryRow{
		tui.CountRow("To convert", summary.Candidates, false),
		tui.CountRow("Would overwrite", summary.Overwrites, true),
		tui.CountRow("Unreadable", summary.Errors, true),
		tui.CountRow("EXIF unreadable", summary.ExifWarnings, true),
		tui.CountRow("Skipped (already images)", summary.Skipped, false),
		tui.CountRow("Ignored", summary.Ignored, false),
		{Label: "HEIF decoder", Value: imgutil.HEIFBackend},
	}
}

func nameStyle(outcome converter.Outcome) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(tui.OutcomeColor(outcome))
}

func ext(name string) string {
	_, e := converter.SplitExt(name)
	return e
}

var (
	scanCategoryStyle = lipgloss.NewStyle().Foreground(tui.ColorAccentAlt)
	scanValueStyle    = lipgloss.NewStyle().Foreground(tui.ColorInk)
	scanDimStyle      = lipgloss.NewStyle().Foreground(tui.ColorDim)
	scanBulletStyle   = lipgloss.NewStyle().Foreground(tui.ColorDim)
	scanWarnStyle     = lipgloss.NewStyle().Foreground(tui.ColorWarn)
	scanErrorStyle    = lipgloss.NewStyle().Foreground(tui.ColorError)
)

func init() {
	rootCmd.AddCommand(scanCmd)
}
