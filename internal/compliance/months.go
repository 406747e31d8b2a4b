// Package compliance implements the recurring-obligation compliance engine:
// deriving the month universe from the ledger, matching payments to
// obligations, classifying each month, and rolling results up into
// per-subject and per-group summaries.
package compliance

import (
	"sort"
	"time"

	"github.com/sindicoapp/sindico/internal/model"
)

// MonthUniverse returns every "YYYY-MM" month present in the ledger plus the
// month of today, deduplicated and sorted most-recent-first. The current
// month is always included, even for an empty ledger.
func MonthUniverse(txns []model.Transaction, today time.Time) []string {
	seen := map[string]struct{}{
		today.Format("2006-01"): {},
	}
	for i := range txns {
		seen[txns[i].MonthKey()] = struct{}{}
	}

	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	// "YYYY-MM" sorts correctly as a string.
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// FormatMonthShort renders a "YYYY-MM" month key as "MM/YY".
func FormatMonthShort(month string) string {
	if len(month) != 7 {
		return month
	}
	return month[5:7] + "/" + month[2:4]
}
