package report

import "time"

type RevenueByMethod struct {
	Method       string `db:"method" json:"method"`
	Payments     int    `db:"payments" json:"payments"`
	RevenueCents int64  `db:"revenue_cents" json:"revenue_cents"`
}

type RevenueByType struct {
	SubscriptionType string `db:"subscription_type" json:"subscription_type"`
	Payments         int    `db:"payments" json:"payments"`
	RevenueCents     int64  `db:"revenue_cents" json:"revenue_cents"`
}

type RevenueReport struct {
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	RevenueCents int64             `json:"revenue_cents"`
	Payments     int               `json:"payments"`
	ByMethod     []RevenueByMethod `json:"by_method,omitempty"`
	ByType       []RevenueByType   `json:"by_type,omitempty"`
}

type CheckInsByDay struct {
	Bucket   string `db:"bucket" json:"bucket"`
	CheckIns int    `db:"check_ins" json:"check_ins"`
}

type Summary struct {
	TotalMembers      int   `db:"total_members" json:"total_members"`
	ActiveMembers     int   `db:"active_members" json:"active_members"`
	DueMembers        int   `db:"due_members" json:"due_members"`
	OverdueMembers    int   `db:"overdue_members" json:"overdue_members"`
	IncompletePayment int   `db:"incomplete_payment" json:"incomplete_payment"`
	CheckInsToday     int   `db:"check_ins_today" json:"check_ins_today"`
	RevenueMonthCents int64 `db:"revenue_month_cents" json:"revenue_month_cents"`
}
