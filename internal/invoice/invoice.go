package invoice

import (
	"errors"
	"time"

	"github.com/maxjeon97/biztime/internal/company"
)

// ErrNotFound is returned when no invoice exists for the given id.
var ErrNotFound = errors.New("this invoice does not exist")

// Invoice represents a billable record owned by exactly one company.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
	Company  *company.Company // Loaded via JOIN on detail reads.
}

// NextPaidDate computes the paid_date to persist when an invoice's paid flag
// is updated. Clients never set paid_date directly; it is derived here from
// the previously stored state and the requested flag:
//
//   - unpaid -> paid: the moment of the update
//   - paid -> unpaid: cleared to null
//   - no transition: the stored value, unchanged
func NextPaidDate(prev *Invoice, paid bool, now time.Time) *time.Time {
	switch {
	case prev.PaidDate == nil && paid:
		return &now
	case prev.Paid && !paid:
		return nil
	default:
		return prev.PaidDate
	}
}
