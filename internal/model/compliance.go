package model

import "time"

// CellStatus is the classification outcome for one (subject, obligation,
// month) cell. It is recomputed from scratch on every evaluation, never
// mutated incrementally.
type CellStatus string

const (
	// StatusOK means the obligation was settled for the month.
	StatusOK CellStatus = "ok"
	// StatusPending means the current month is unpaid but still within the
	// due day. Only the current month can be pending.
	StatusPending CellStatus = "pending"
	// StatusLatePayment means the current month was paid after the due day.
	// Only the current month can be late_payment.
	StatusLatePayment CellStatus = "late_payment"
	// StatusOverdue means the month elapsed (or its due day passed) without
	// a matching payment.
	StatusOverdue CellStatus = "overdue"
)

// MonthCell is the classification of a single month for one subject and
// obligation.
type MonthCell struct {
	Month      string
	Status     CellStatus
	Matched    *Transaction
	Duplicates int
}

// SubjectSummary rolls up all evaluated months for one subject (a unit
// identifier for per-unit obligations, the obligation label for condo-wide
// ones) into a single status and human-readable message.
type SubjectSummary struct {
	Name            string
	Status          CellStatus
	Message         string
	PendingMonths   []string
	DuplicateMonths []string
	Cells           []MonthCell
}

// GroupSummary is the banner state for one obligation group (quota card,
// fund card, fixed-bills card), derived from the rolled statuses of its
// subjects.
type GroupSummary struct {
	Group          string
	Label          string
	Subjects       []SubjectSummary
	HasOverdue     bool
	HasLatePayment bool
	AllPaid        bool
}

// ComplianceReport is the full engine output for one ledger snapshot: the
// month universe that was evaluated plus one summary per obligation group.
type ComplianceReport struct {
	GeneratedAt time.Time
	Months      []string
	Groups      []GroupSummary
}
