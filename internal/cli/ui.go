package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mfessler/bomprop/pkg/report"
)

var (
	colorCyan   = lipgloss.Color("36")  // primary accents
	colorGreen  = lipgloss.Color("35")  // success
	colorRed    = lipgloss.Color("167") // errors
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
	colorYellow = lipgloss.Color("220") // split-strategy highlight
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleShared  = lipgloss.NewStyle().Foreground(colorGreen)
	styleSplit   = lipgloss.NewStyle().Foreground(colorYellow)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleError   = lipgloss.NewStyle().Foreground(colorRed)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconArrow   = "→"
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printFile(path string) {
	fmt.Println("  " + styleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Println(keyStyle.Render(key) + " " + styleValue.Render(value))
}

// renderSummary formats a coalescing summary as a styled table plus totals.
func renderSummary(s *report.Summary) string {
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("GROUP", "ARTIFACT", "STRATEGY", "PROPERTY", "VERSION")

	for _, g := range s.Groups {
		strategy := styleShared.Render(string(g.Strategy))
		if g.Strategy == report.StrategySplit {
			strategy = styleSplit.Render(string(g.Strategy))
		}
		for i, a := range g.Artifacts {
			groupCell := g.GroupID
			strategyCell := strategy
			if i > 0 {
				groupCell, strategyCell = "", ""
			}
			tbl.Row(groupCell, a.ArtifactID, strategyCell, a.Property, a.Version)
		}
	}

	totals := fmt.Sprintf("%d dependencies, %d properties (%d shared, %d split groups)",
		s.Dependencies, s.Properties, s.Shared, s.Split)

	return styleTitle.Render("Version properties") + "\n" +
		tbl.Render() + "\n" +
		styleDim.Render(totals)
}
