package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	grouping "github.com/maysay-D/grouping-tool"
)

// Report styling. Colors degrade to plain text on dumb terminals and in
// tests, so rendered output stays assertable.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	memberStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	totalStyle = lipgloss.NewStyle().
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFC107"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3"))

	echoStyle = lipgloss.NewStyle().
			Faint(true)

	sealedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BC34A"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e53935"))
)

// renderReport formats the final partition as one block per group, titled
// with its letter label and member count, followed by a total line and any
// warnings.
func renderReport(partition grouping.Partition, unplaced []string) string {
	var b strings.Builder

	if len(partition) == 0 && len(unplaced) == 0 {
		return warnStyle.Render("no identifiers were entered")
	}

	for i, group := range partition {
		b.WriteString(titleStyle.Render(
			fmt.Sprintf("Group %s (%d members)", grouping.GroupLabel(i), group.Size())))
		b.WriteString("\n")
		for _, member := range group.Members {
			b.WriteString(memberStyle.Render(member))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(totalStyle.Render(
		fmt.Sprintf("%d groups, %d members", len(partition), partition.MemberCount())))

	if len(unplaced) > 0 {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf(
			"could not place %s: a group needs at least %d members",
			strings.Join(unplaced, ", "), grouping.MinGroupSize)))
	}

	return b.String()
}
