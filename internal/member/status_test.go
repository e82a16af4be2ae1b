package member

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus_Boundaries(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		days int
		want Status
	}{
		{-8, StatusOverdue},
		{-7, StatusDue},
		{-1, StatusDue},
		{0, StatusDue},
		{1, StatusActive},
		{7, StatusActive},
		{8, StatusActive},
	}

	for _, tt := range tests {
		renewal := now.AddDate(0, 0, tt.days)
		got := DeriveStatus(renewal, now)
		assert.Equal(t, tt.want, got, "daysUntil=%d", tt.days)
		// Same inputs, same output.
		assert.Equal(t, got, DeriveStatus(renewal, now))
	}
}

func TestDeriveStatus_PartitionsAllDayCounts(t *testing.T) {
	now := date(2024, time.June, 15)

	for days := -30; days <= 30; days++ {
		renewal := now.AddDate(0, 0, days)
		status := DeriveStatus(renewal, now)

		switch {
		case days < -DueWindowDays:
			assert.Equal(t, StatusOverdue, status, "daysUntil=%d", days)
		case days <= 0:
			assert.Equal(t, StatusDue, status, "daysUntil=%d", days)
		default:
			assert.Equal(t, StatusActive, status, "daysUntil=%d", days)
		}
	}
}

func TestDaysUntilRenewal_PartialDaysRoundUp(t *testing.T) {
	now := time.Date(2024, time.June, 15, 18, 0, 0, 0, time.UTC)
	renewal := date(2024, time.June, 16)

	// 6 hours away still counts as 1 day out.
	assert.Equal(t, 1, DaysUntilRenewal(renewal, now))
	assert.Equal(t, 0, DaysUntilRenewal(renewal, renewal))
}

func TestNextRenewalDate_Weekly(t *testing.T) {
	tests := []struct {
		from time.Time
		want time.Time
	}{
		{date(2024, time.January, 1), date(2024, time.January, 8)},
		{date(2024, time.January, 29), date(2024, time.February, 5)},
		{date(2024, time.December, 28), date(2025, time.January, 4)},
		{date(2024, time.February, 26), date(2024, time.March, 4)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NextRenewalDate(tt.from, TypeWeekly))
	}
}

func TestNextRenewalDate_Daily(t *testing.T) {
	assert.Equal(t, date(2025, time.January, 1), NextRenewalDate(date(2024, time.December, 31), TypeDaily))
}

func TestNextRenewalDate_MonthlyEndOfMonthRollover(t *testing.T) {
	// AddDate normalizes Jan 31 + 1 month to "Feb 31", which 2024's
	// 29-day February resolves to Mar 2. Applying it twice lands Apr 2.
	first := NextRenewalDate(date(2024, time.January, 31), TypeMonthly)
	require.Equal(t, date(2024, time.March, 2), first)

	second := NextRenewalDate(first, TypeMonthly)
	require.Equal(t, date(2024, time.April, 2), second)
}

func TestNextRenewalDate_QuarterlyAndAnnual(t *testing.T) {
	assert.Equal(t, date(2024, time.April, 15), NextRenewalDate(date(2024, time.January, 15), TypeQuarterly))
	assert.Equal(t, date(2025, time.February, 10), NextRenewalDate(date(2024, time.February, 10), TypeAnnual))
	// Feb 29 + 1 year normalizes to Mar 1.
	assert.Equal(t, date(2025, time.March, 1), NextRenewalDate(date(2024, time.February, 29), TypeAnnual))
}

func TestCheckInEligibility(t *testing.T) {
	now := date(2024, time.June, 15)

	tests := []struct {
		name          string
		renewalOffset int
		paymentStatus PaymentStatus
		wantErr       error
	}{
		{"active and paid", 10, PaymentPaid, nil},
		{"active but incomplete payment", 10, PaymentIncomplete, ErrPaymentIncomplete},
		{"due", -3, PaymentPaid, ErrMembershipDue},
		{"due on renewal day", 0, PaymentPaid, ErrMembershipDue},
		{"overdue", -9, PaymentPaid, ErrMembershipOverdue},
		{"overdue wins over incomplete payment", -9, PaymentIncomplete, ErrMembershipOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Member{
				RenewalDate:   now.AddDate(0, 0, tt.renewalOffset),
				PaymentStatus: tt.paymentStatus,
			}

			err := m.CheckInEligibility(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				assert.True(t, m.CanCheckIn(now))
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, m.CanCheckIn(now))
			}
		})
	}
}

func TestMembershipLifecycleScenario(t *testing.T) {
	// Member registered Jan 1 2024 on a monthly plan.
	start := date(2024, time.January, 1)
	renewal := NextRenewalDate(start, TypeMonthly)
	require.Equal(t, date(2024, time.February, 1), renewal)

	// Four days before renewal the membership is still in good standing.
	assert.Equal(t, StatusActive, DeriveStatus(renewal, date(2024, time.January, 28)))

	// On the renewal day payment comes due.
	assert.Equal(t, StatusDue, DeriveStatus(renewal, date(2024, time.February, 1)))

	// Nine days past renewal the member is overdue.
	assert.Equal(t, StatusOverdue, DeriveStatus(renewal, date(2024, time.February, 10)))

	// Recording a payment on Feb 10 pushes the renewal date to Mar 10
	// and flips the membership back to active.
	renewed := NextRenewalDate(date(2024, time.February, 10), TypeMonthly)
	require.Equal(t, date(2024, time.March, 10), renewed)
	assert.Equal(t, StatusActive, DeriveStatus(renewed, date(2024, time.February, 10)))
}
