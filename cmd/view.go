package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mittwald/modelprobe/pkg/cli"
)

var colorSuccess = lipgloss.Color("#00B785")
var colorFailed = lipgloss.Color("#e1244c")

var styleFound = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleAbsent = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleFailed = lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleNotSet = lipgloss.NewStyle().Foreground(lipgloss.Color("#5D689C"))

var styleMainLine = lipgloss.NewStyle().Margin(1, 0)
var styleListItem = lipgloss.NewStyle().Padding(0, 2)

var styleErrorWrapper = lipgloss.NewStyle().Padding(0, 0).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(colorFailed)
var styleErrorHeadingStyle = lipgloss.NewStyle().Foreground(colorFailed).Bold(true)
var styleErrorBodyStyle = lipgloss.NewStyle().PaddingLeft(3).Foreground(colorFailed).Width(80).MaxWidth(80)

func renderFound(address string, resp *cli.StatusResponse) string {
	entries := resp.Entries()
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Left,
			styleFound.Render("▶︎"), " model path found at ",
			styleHighlight.Render(address),
		),
	}

	switch {
	case entries == nil:
		lines = append(lines, styleListItem.Render(resp.Body))
	case len(entries) == 0:
		lines = append(lines, styleListItem.Render(styleNotSet.Render("<empty>")))
	}
	for _, entry := range entries {
		lines = append(lines, styleListItem.Render("- "+entry))
	}

	return styleMainLine.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderAbsent(address string) string {
	return styleMainLine.Render(lipgloss.JoinHorizontal(lipgloss.Left,
		styleAbsent.Render("◼︎"), " model path does not exist (",
		styleHighlight.Render(address), ")",
	))
}

func renderError(err error) string {
	return styleErrorWrapper.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			styleErrorHeadingStyle.Render(styleFailed.Render("◼︎")+" FAILED TO QUERY THE MODEL PROBE"),
			styleErrorBodyStyle.Render(err.Error()),
		),
	)
}
