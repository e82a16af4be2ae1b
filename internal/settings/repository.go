package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const settingsColumns = `id, gym_name, logo_url, contact_phone, contact_email, address, daily_fee_cents, weekly_fee_cents, monthly_fee_cents, quarterly_fee_cents, annual_fee_cents, pin_code, created_at, updated_at`

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetOrCreate returns the singleton settings row, creating it with
// defaults on first run.
func (r *Repository) GetOrCreate(ctx context.Context) (*Settings, error) {
	s := &Settings{}
	err := r.db.GetContext(ctx, s, `SELECT `+settingsColumns+` FROM settings ORDER BY id ASC LIMIT 1`)
	if err == nil {
		s.PinSet = s.PinCode != nil && *s.PinCode != ""
		return s, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.QueryRowxContext(ctx, `
		INSERT INTO settings (gym_name)
		VALUES ('My Gym')
		RETURNING `+settingsColumns,
	).StructScan(s)
	if err != nil {
		return nil, err
	}

	s.PinSet = s.PinCode != nil && *s.PinCode != ""
	return s, nil
}

func (r *Repository) Update(ctx context.Context, s *Settings) (*Settings, error) {
	query := `
		UPDATE settings
		SET gym_name = $1,
		    logo_url = $2,
		    contact_phone = $3,
		    contact_email = $4,
		    address = $5,
		    daily_fee_cents = $6,
		    weekly_fee_cents = $7,
		    monthly_fee_cents = $8,
		    quarterly_fee_cents = $9,
		    annual_fee_cents = $10,
		    pin_code = $11,
		    updated_at = NOW()
		WHERE id = $12
		RETURNING ` + settingsColumns

	var updated Settings
	err := r.db.GetContext(ctx, &updated, query,
		s.GymName, s.LogoURL, s.ContactPhone, s.ContactEmail, s.Address,
		s.DailyFeeCents, s.WeeklyFeeCents, s.MonthlyFeeCents, s.QuarterlyFeeCents, s.AnnualFeeCents,
		s.PinCode, s.ID,
	)
	if err != nil {
		return nil, err
	}

	updated.PinSet = updated.PinCode != nil && *updated.PinCode != ""
	return &updated, nil
}

// DefaultFeeCents satisfies the member service's SettingsSource.
func (r *Repository) DefaultFeeCents(ctx context.Context, subscriptionType string) (int64, error) {
	s, err := r.GetOrCreate(ctx)
	if err != nil {
		return 0, err
	}

	switch subscriptionType {
	case "daily":
		return s.DailyFeeCents, nil
	case "weekly":
		return s.WeeklyFeeCents, nil
	case "quarterly":
		return s.QuarterlyFeeCents, nil
	case "annual":
		return s.AnnualFeeCents, nil
	default:
		return s.MonthlyFeeCents, nil
	}
}
