package member

import (
	"errors"
	"math"
	"time"
)

// DueWindowDays is how long after the renewal date a member stays "due"
// before tipping over into "overdue".
const DueWindowDays = 7

var (
	ErrMembershipDue     = errors.New("membership payment is due")
	ErrMembershipOverdue = errors.New("membership is overdue")
	ErrPaymentIncomplete = errors.New("membership payment is incomplete")
)

// DaysUntilRenewal counts whole days from now until the renewal date,
// rounding partial days up. Negative once the renewal date has passed.
func DaysUntilRenewal(renewalDate, now time.Time) int {
	return int(math.Ceil(renewalDate.Sub(now).Hours() / 24))
}

// DeriveStatus maps elapsed time relative to the renewal date onto the
// membership status. The three buckets partition every possible day
// count: overdue below -DueWindowDays, due up to and including the
// renewal day itself, active strictly before it.
func DeriveStatus(renewalDate, now time.Time) Status {
	days := DaysUntilRenewal(renewalDate, now)
	switch {
	case days < -DueWindowDays:
		return StatusOverdue
	case days <= 0:
		return StatusDue
	default:
		return StatusActive
	}
}

// NextRenewalDate projects the renewal date one subscription period
// forward from the given date. Month and year increments use calendar
// rollover via time.AddDate, so Jan 31 + 1 month normalizes into early
// March rather than clamping to Feb 28/29.
func NextRenewalDate(from time.Time, t SubscriptionType) time.Time {
	switch t {
	case TypeDaily:
		return from.AddDate(0, 0, 1)
	case TypeWeekly:
		return from.AddDate(0, 0, 7)
	case TypeQuarterly:
		return from.AddDate(0, 3, 0)
	case TypeAnnual:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// CheckInEligibility reports why the member cannot check in right now,
// or nil when they can. Status and payment completeness gate
// independently; status is re-derived from the renewal date so a stale
// stored value never lets anyone through.
func (m *Member) CheckInEligibility(now time.Time) error {
	switch DeriveStatus(m.RenewalDate, now) {
	case StatusOverdue:
		return ErrMembershipOverdue
	case StatusDue:
		return ErrMembershipDue
	}
	if m.PaymentStatus != PaymentPaid {
		return ErrPaymentIncomplete
	}
	return nil
}

func (m *Member) CanCheckIn(now time.Time) bool {
	return m.CheckInEligibility(now) == nil
}
