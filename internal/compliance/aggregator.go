package compliance

import (
	"fmt"
	"strings"
	"time"

	"github.com/sindicoapp/sindico/internal/model"
)

// Aggregate rolls the per-month cells for one subject up into a single
// summary. Cells must be in descending-month order, as produced by the
// engine.
//
// Every overdue month lands in PendingMonths (formatted "MM/YY", most recent
// first). The rolled status is overdue as soon as that list is non-empty;
// otherwise it is whatever the current month's cell classified as. Months
// where more than one transaction satisfied the match are reported in
// DuplicateMonths rather than resolved silently.
func Aggregate(name string, def model.ObligationDefinition, cells []model.MonthCell, today time.Time) model.SubjectSummary {
	currentMonth := today.Format("2006-01")
	currentStatus := model.StatusOK

	var pendingMonths []string
	var duplicateMonths []string

	for _, cell := range cells {
		if cell.Status == model.StatusOverdue {
			pendingMonths = append(pendingMonths, FormatMonthShort(cell.Month))
		}
		if cell.Month == currentMonth {
			currentStatus = cell.Status
		}
		if cell.Duplicates > 1 {
			duplicateMonths = append(duplicateMonths, cell.Month)
		}
	}

	status := currentStatus
	if len(pendingMonths) > 0 {
		status = model.StatusOverdue
	}

	return model.SubjectSummary{
		Name:            name,
		Status:          status,
		Message:         renderMessage(def, currentStatus, pendingMonths),
		PendingMonths:   pendingMonths,
		DuplicateMonths: duplicateMonths,
		Cells:           cells,
	}
}

func renderMessage(def model.ObligationDefinition, currentStatus model.CellStatus, pendingMonths []string) string {
	switch {
	case len(pendingMonths) > 0:
		msg := "Pending: " + strings.Join(firstN(pendingMonths, 2), ", ")
		if len(pendingMonths) > 2 {
			msg += "..."
		}
		return msg
	case currentStatus == model.StatusPending:
		return fmt.Sprintf("Awaiting (due day %d)", def.DueDay)
	case currentStatus == model.StatusLatePayment:
		return "Paid late this month"
	default:
		return "Up to date (full history)"
	}
}

func firstN(items []string, n int) []string {
	if len(items) < n {
		return items
	}
	return items[:n]
}

// Banner derives the group-level card state from its subject summaries. An
// empty subject list yields the zero banner with AllPaid true.
func Banner(group, label string, subjects []model.SubjectSummary) model.GroupSummary {
	summary := model.GroupSummary{
		Group:    group,
		Label:    label,
		Subjects: subjects,
		AllPaid:  true,
	}
	for _, s := range subjects {
		switch s.Status {
		case model.StatusOverdue:
			summary.HasOverdue = true
		case model.StatusLatePayment:
			summary.HasLatePayment = true
		}
		if s.Status != model.StatusOK && s.Status != model.StatusLatePayment {
			summary.AllPaid = false
		}
	}
	return summary
}
