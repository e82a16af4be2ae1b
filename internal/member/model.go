package member

import "time"

type SubscriptionType string
type Status string
type PaymentStatus string

const (
	TypeDaily     SubscriptionType = "daily"
	TypeWeekly    SubscriptionType = "weekly"
	TypeMonthly   SubscriptionType = "monthly"
	TypeQuarterly SubscriptionType = "quarterly"
	TypeAnnual    SubscriptionType = "annual"

	StatusActive  Status = "active"
	StatusDue     Status = "due"
	StatusOverdue Status = "overdue"

	PaymentPaid       PaymentStatus = "paid"
	PaymentIncomplete PaymentStatus = "incomplete"
)

func SubscriptionTypes() []SubscriptionType {
	return []SubscriptionType{TypeDaily, TypeWeekly, TypeMonthly, TypeQuarterly, TypeAnnual}
}

func ValidSubscriptionType(t SubscriptionType) bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly, TypeQuarterly, TypeAnnual:
		return true
	}
	return false
}

type Member struct {
	ID               int              `db:"id" json:"id"`
	FullName         string           `db:"full_name" json:"full_name"`
	Phone            string           `db:"phone" json:"phone"`
	Email            *string          `db:"email" json:"email,omitempty"`
	Gender           string           `db:"gender" json:"gender"`
	StartDate        time.Time        `db:"start_date" json:"start_date"`
	SubscriptionType SubscriptionType `db:"subscription_type" json:"subscription_type"`
	FeeCents         int64            `db:"fee_cents" json:"fee_cents"`
	RenewalDate      time.Time        `db:"renewal_date" json:"renewal_date"`
	Status           Status           `db:"status" json:"status"`
	PaymentStatus    PaymentStatus    `db:"payment_status" json:"payment_status"`
	LastCheckIn      *time.Time       `db:"last_check_in" json:"last_check_in,omitempty"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

type RegisterRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Gender           string `json:"gender" binding:"required,oneof=male female other"`
	StartDate        string `json:"start_date" binding:"required"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
	FeeCents         int64  `json:"fee_cents" binding:"omitempty,min=0"`
	PaymentStatus    string `json:"payment_status" binding:"omitempty,oneof=paid incomplete"`
}

type UpdateRequest struct {
	FullName         string `json:"full_name" binding:"required"`
	Phone            string `json:"phone" binding:"required"`
	Email            string `json:"email" binding:"omitempty,email"`
	Gender           string `json:"gender" binding:"required,oneof=male female other"`
	SubscriptionType string `json:"subscription_type" binding:"required"`
	FeeCents         int64  `json:"fee_cents" binding:"omitempty,min=0"`
	PaymentStatus    string `json:"payment_status" binding:"omitempty,oneof=paid incomplete"`
}
