package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skipStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	stageStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// renderStageLine formats one stage outcome for the console.
func renderStageLine(res stageResult) string {
	var status string
	switch res.Status {
	case stageSuccess:
		status = okStyle.Render("ok")
	case stageSkipped:
		status = skipStyle.Render("skipped")
	case stageWarning:
		status = warnStyle.Render("warning")
	case stageFailed:
		status = failStyle.Render("FAILED")
	}
	line := fmt.Sprintf("%s %s", stageStyle.Render("["+res.Name+"]"), status)
	if res.Detail != "" {
		line += " " + res.Detail
	}
	if res.Err != nil {
		line += " " + res.Err.Error()
	}
	return line
}
