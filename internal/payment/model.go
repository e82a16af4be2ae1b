package payment

import "time"

type Method string

const (
	MethodCash         Method = "cash"
	MethodMobileMoney  Method = "mobile_money"
	MethodCard         Method = "card"
	MethodBankTransfer Method = "bank_transfer"
)

func ValidMethod(m Method) bool {
	switch m {
	case MethodCash, MethodMobileMoney, MethodCard, MethodBankTransfer:
		return true
	}
	return false
}

type Payment struct {
	ID               int       `db:"id" json:"id"`
	MemberID         int       `db:"member_id" json:"member_id"`
	AmountCents      int64     `db:"amount_cents" json:"amount_cents"`
	Method           Method    `db:"method" json:"method"`
	PaymentDate      time.Time `db:"payment_date" json:"payment_date"`
	RenewalPeriod    string    `db:"renewal_period" json:"renewal_period"`
	SubscriptionType string    `db:"subscription_type" json:"subscription_type"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

type PaymentWithMember struct {
	Payment
	MemberName  string `db:"member_name" json:"member_name"`
	MemberPhone string `db:"member_phone" json:"member_phone"`
}

type RecordRequest struct {
	MemberID    int    `json:"member_id" binding:"required"`
	AmountCents int64  `json:"amount_cents" binding:"omitempty,min=0"`
	Method      string `json:"method" binding:"required"`
	PaymentDate string `json:"payment_date" binding:"omitempty"`
	Notes       string `json:"notes"`
}

type RecordResponse struct {
	Payment        *Payment  `json:"payment"`
	NewRenewalDate time.Time `json:"new_renewal_date"`
	NewStatus      string    `json:"new_status"`
}
