package member

import (
	"context"
	"database/sql"
	"errors"

	"gymdesk/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrMemberNotFound = errors.New("member not found")

const memberColumns = `id, full_name, phone, email, gender, start_date, subscription_type, fee_cents, renewal_date, status, payment_status, last_check_in, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (full_name, phone, email, gender, start_date, subscription_type, fee_cents, renewal_date, status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + memberColumns

	var created Member
	err := r.db.GetContext(ctx, &created, query,
		m.FullName, m.Phone, m.Email, m.Gender, m.StartDate,
		m.SubscriptionType, m.FeeCents, m.RenewalDate, m.Status, m.PaymentStatus,
	)
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`

	var m Member
	err := r.db.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) List(ctx context.Context) ([]Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members ORDER BY full_name ASC`

	var members []Member
	err := r.db.SelectContext(ctx, &members, query)
	if err != nil {
		return nil, err
	}

	return members, nil
}

func (r *repository) Update(ctx context.Context, m *Member) (*Member, error) {
	query := `
		UPDATE members
		SET full_name = $1,
		    phone = $2,
		    email = $3,
		    gender = $4,
		    subscription_type = $5,
		    fee_cents = $6,
		    status = $7,
		    payment_status = $8,
		    updated_at = NOW()
		WHERE id = $9
		RETURNING ` + memberColumns

	var updated Member
	err := r.db.GetContext(ctx, &updated, query,
		m.FullName, m.Phone, m.Email, m.Gender,
		m.SubscriptionType, m.FeeCents, m.Status, m.PaymentStatus, m.ID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &updated, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status Status) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE members
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`, status, id)
	return err
}

// Delete removes the member together with their payment history and
// check-in log. The schema also cascades on the foreign keys; the
// explicit deletes keep the cascade observable in one transaction.
func (r *repository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE member_id = $1`, id); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM check_ins WHERE member_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM members WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrMemberNotFound
	}

	return tx.Commit()
}

func (r *repository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM members WHERE phone = $1)`, phone)
}
