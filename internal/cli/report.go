package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sindicoapp/sindico/internal/model"
)

// RenderReport renders the full compliance report as a column of obligation
// cards, one per group.
func RenderReport(report model.ComplianceReport) string {
	cards := make([]string, 0, len(report.Groups))
	for _, group := range report.Groups {
		cards = append(cards, renderCard(group))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// renderCard renders one obligation group as a bordered card. The border
// color follows the banner precedence: overdue beats pending-in-grace,
// which beats late-but-fully-paid, which beats fully current.
func renderCard(group model.GroupSummary) string {
	var lines []string
	lines = append(lines, TitleStyle.UnsetMargins().Render(group.Label))

	for _, s := range group.Subjects {
		status := statusStyle(s.Status).Render(fmt.Sprintf("%s %s", statusIcon(s.Status), s.Message))
		lines = append(lines, fmt.Sprintf("%-14s %s", s.Name, status))
		if len(s.DuplicateMonths) > 0 {
			lines = append(lines, SubtleStyle.Render(
				"  multiple payments found: "+strings.Join(s.DuplicateMonths, ", ")))
		}
	}

	return BoxStyle.BorderForeground(bannerColor(group)).
		Render(strings.Join(lines, "\n"))
}

func bannerColor(group model.GroupSummary) lipgloss.Color {
	switch {
	case group.HasOverdue:
		return ErrorColor
	case !group.AllPaid:
		return WarningColor
	case group.HasLatePayment:
		return LateColor
	default:
		return SuccessColor
	}
}

func statusStyle(status model.CellStatus) lipgloss.Style {
	switch status {
	case model.StatusOK:
		return SuccessStyle
	case model.StatusLatePayment:
		return LateStyle
	case model.StatusOverdue:
		return ErrorStyle
	default:
		return WarningStyle
	}
}

func statusIcon(status model.CellStatus) string {
	switch status {
	case model.StatusOK:
		return OKIcon
	case model.StatusLatePayment:
		return LateIcon
	case model.StatusOverdue:
		return OverdueIcon
	default:
		return PendingIcon
	}
}
