package compliance

import (
	"time"

	"github.com/sindicoapp/sindico/internal/model"
)

// Classify turns a match result into a cell status. It is a pure function of
// its inputs; the decision is recomputed fresh on every call.
//
// Past months are binary: matched is ok, unmatched is overdue — a month that
// has fully elapsed has no grace period. The current month is where the due
// day matters: an unmatched cell is pending until the due day passes, and a
// matched cell paid after the due day is flagged late_payment.
func Classify(matched *model.Transaction, month string, today time.Time, dueDay int) model.CellStatus {
	isCurrentMonth := month == today.Format("2006-01")

	if matched != nil {
		if isCurrentMonth && matched.Date.Day() > dueDay {
			return model.StatusLatePayment
		}
		return model.StatusOK
	}

	if isCurrentMonth {
		if today.Day() <= dueDay {
			return model.StatusPending
		}
		return model.StatusOverdue
	}

	return model.StatusOverdue
}
