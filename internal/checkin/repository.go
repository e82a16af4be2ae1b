package checkin

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gymdesk/internal/member"

	"github.com/jmoiron/sqlx"
)

const checkInColumns = `id, member_id, check_in_time, created_at`

const memberColumns = `id, full_name, phone, email, gender, start_date, subscription_type, fee_cents, renewal_date, status, payment_status, last_check_in, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create locks the member row, re-derives eligibility against the
// locked state, and only then appends to the check-in log and bumps the
// member's last check-in pointer. A payment committed between the
// caller's pre-check and this transaction is therefore honored.
func (r *repository) Create(ctx context.Context, memberID int, now time.Time) (*CheckIn, *member.Member, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	var m member.Member
	err = tx.QueryRowxContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE id = $1 FOR UPDATE`,
		memberID,
	).StructScan(&m)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, member.ErrMemberNotFound
		}
		return nil, nil, err
	}

	if err := m.CheckInEligibility(now); err != nil {
		return nil, &m, err
	}

	created := &CheckIn{}
	err = tx.QueryRowxContext(ctx, `
		INSERT INTO check_ins (member_id, check_in_time)
		VALUES ($1, $2)
		RETURNING `+checkInColumns,
		memberID, now,
	).StructScan(created)
	if err != nil {
		return nil, nil, err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE members
		SET last_check_in = $1, updated_at = NOW()
		WHERE id = $2
	`, now, memberID)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	m.LastCheckIn = &now
	return created, &m, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int, limit int) ([]CheckIn, error) {
	query := `
		SELECT ` + checkInColumns + `
		FROM check_ins
		WHERE member_id = $1
		ORDER BY check_in_time DESC, id DESC
		LIMIT $2
	`

	var checkIns []CheckIn
	err := r.db.SelectContext(ctx, &checkIns, query, memberID, limit)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}

func (r *repository) ListRecent(ctx context.Context, from, to time.Time) ([]CheckInWithMember, error) {
	query := `
		SELECT
			c.id,
			c.member_id,
			c.check_in_time,
			c.created_at,
			m.full_name AS member_name,
			m.phone AS member_phone
		FROM check_ins c
		JOIN members m ON c.member_id = m.id
		WHERE c.check_in_time >= $1 AND c.check_in_time < $2
		ORDER BY c.check_in_time DESC, c.id DESC
	`

	var checkIns []CheckInWithMember
	err := r.db.SelectContext(ctx, &checkIns, query, from, to)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}
