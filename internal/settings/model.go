package settings

import "time"

type Settings struct {
	ID                int       `db:"id" json:"id"`
	GymName           string    `db:"gym_name" json:"gym_name"`
	LogoURL           *string   `db:"logo_url" json:"logo_url,omitempty"`
	ContactPhone      *string   `db:"contact_phone" json:"contact_phone,omitempty"`
	ContactEmail      *string   `db:"contact_email" json:"contact_email,omitempty"`
	Address           *string   `db:"address" json:"address,omitempty"`
	DailyFeeCents     int64     `db:"daily_fee_cents" json:"daily_fee_cents"`
	WeeklyFeeCents    int64     `db:"weekly_fee_cents" json:"weekly_fee_cents"`
	MonthlyFeeCents   int64     `db:"monthly_fee_cents" json:"monthly_fee_cents"`
	QuarterlyFeeCents int64     `db:"quarterly_fee_cents" json:"quarterly_fee_cents"`
	AnnualFeeCents    int64     `db:"annual_fee_cents" json:"annual_fee_cents"`
	PinCode           *string   `db:"pin_code" json:"-"`
	PinSet            bool      `db:"-" json:"pin_set"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type UpdateRequest struct {
	GymName           string  `json:"gym_name" binding:"required"`
	LogoURL           string  `json:"logo_url" binding:"omitempty,url"`
	ContactPhone      string  `json:"contact_phone"`
	ContactEmail      string  `json:"contact_email" binding:"omitempty,email"`
	Address           string  `json:"address"`
	DailyFeeCents     int64   `json:"daily_fee_cents" binding:"omitempty,min=0"`
	WeeklyFeeCents    int64   `json:"weekly_fee_cents" binding:"omitempty,min=0"`
	MonthlyFeeCents   int64   `json:"monthly_fee_cents" binding:"omitempty,min=0"`
	QuarterlyFeeCents int64   `json:"quarterly_fee_cents" binding:"omitempty,min=0"`
	AnnualFeeCents    int64   `json:"annual_fee_cents" binding:"omitempty,min=0"`
	PinCode           *string `json:"pin_code" binding:"omitempty"`
}

type VerifyPinRequest struct {
	Pin string `json:"pin" binding:"required"`
}

type VerifyPinResponse struct {
	Valid bool `json:"valid"`
}
