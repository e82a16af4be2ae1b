package payment

import (
	"context"
	"time"

	"gymdesk/internal/member"

	"github.com/jmoiron/sqlx"
)

const paymentColumns = `id, member_id, amount_cents, method, payment_date, renewal_period, subscription_type, notes, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Record inserts the payment and advances the owning member's renewal
// date in one transaction. A payment is the only operation that moves
// the renewal date; marking the payment status paid rides along.
func (r *repository) Record(ctx context.Context, p *Payment, renewalDate time.Time, status member.Status) (*Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created := &Payment{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO payments (member_id, amount_cents, method, payment_date, renewal_period, subscription_type, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+paymentColumns,
		p.MemberID, p.AmountCents, p.Method, p.PaymentDate, p.RenewalPeriod, p.SubscriptionType, p.Notes,
	).StructScan(created)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE members
		SET renewal_date = $1,
		    status = $2,
		    payment_status = 'paid',
		    updated_at = NOW()
		WHERE id = $3
	`, renewalDate, status, p.MemberID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE member_id = $1
		ORDER BY payment_date DESC, id DESC
	`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, memberID)
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (r *repository) ListRange(ctx context.Context, from, to time.Time) ([]PaymentWithMember, error) {
	query := `
		SELECT
			p.id,
			p.member_id,
			p.amount_cents,
			p.method,
			p.payment_date,
			p.renewal_period,
			p.subscription_type,
			p.notes,
			p.created_at,
			m.full_name AS member_name,
			m.phone AS member_phone
		FROM payments p
		JOIN members m ON p.member_id = m.id
		WHERE p.payment_date >= $1 AND p.payment_date < $2
		ORDER BY p.payment_date DESC, p.id DESC
	`

	var payments []PaymentWithMember
	err := r.db.SelectContext(ctx, &payments, query, from, to)
	if err != nil {
		return nil, err
	}

	return payments, nil
}
