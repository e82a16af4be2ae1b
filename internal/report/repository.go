package report

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	RevenueByMethod(ctx context.Context, from, to time.Time) ([]RevenueByMethod, error)
	RevenueByType(ctx context.Context, from, to time.Time) ([]RevenueByType, error)
	CheckInsByDay(ctx context.Context, from, to time.Time) ([]CheckInsByDay, error)
	Summary(ctx context.Context) (*Summary, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) RevenueByMethod(ctx context.Context, from, to time.Time) ([]RevenueByMethod, error) {
	query := `
SELECT
  method,
  COUNT(*)                     AS payments,
  COALESCE(SUM(amount_cents), 0) AS revenue_cents
FROM payments
WHERE payment_date >= $1 AND payment_date < $2
GROUP BY method
ORDER BY revenue_cents DESC;
`
	var rows []RevenueByMethod
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) RevenueByType(ctx context.Context, from, to time.Time) ([]RevenueByType, error) {
	query := `
SELECT
  subscription_type,
  COUNT(*)                     AS payments,
  COALESCE(SUM(amount_cents), 0) AS revenue_cents
FROM payments
WHERE payment_date >= $1 AND payment_date < $2
GROUP BY subscription_type
ORDER BY revenue_cents DESC;
`
	var rows []RevenueByType
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) CheckInsByDay(ctx context.Context, from, to time.Time) ([]CheckInsByDay, error) {
	query := `
SELECT
  TO_CHAR(DATE(check_in_time), 'YYYY-MM-DD') AS bucket,
  COUNT(*) AS check_ins
FROM check_ins
WHERE check_in_time >= $1 AND check_in_time < $2
GROUP BY DATE(check_in_time)
ORDER BY bucket;
`
	var rows []CheckInsByDay
	if err := r.db.SelectContext(ctx, &rows, query, from, to); err != nil {
		return nil, err
	}
	return rows, nil
}

// Summary derives status buckets from renewal_date directly so the
// counts stay honest even when stored statuses have gone stale between
// reads. The 8-day cutoff is the SQL mirror of the day-count rule:
// anything past the renewal date is due, anything a full week past it
// is overdue.
func (r *repository) Summary(ctx context.Context) (*Summary, error) {
	query := `
SELECT
  COUNT(*) AS total_members,
  COUNT(*) FILTER (WHERE renewal_date > NOW())  AS active_members,
  COUNT(*) FILTER (WHERE renewal_date <= NOW()
               AND renewal_date > NOW() - INTERVAL '8 days') AS due_members,
  COUNT(*) FILTER (WHERE renewal_date <= NOW() - INTERVAL '8 days') AS overdue_members,
  COUNT(*) FILTER (WHERE payment_status = 'incomplete') AS incomplete_payment,
  (SELECT COUNT(*) FROM check_ins
    WHERE check_in_time >= DATE_TRUNC('day', NOW())) AS check_ins_today,
  (SELECT COALESCE(SUM(amount_cents), 0) FROM payments
    WHERE payment_date >= DATE_TRUNC('month', NOW())) AS revenue_month_cents
FROM members;
`
	var s Summary
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, err
	}
	return &s, nil
}
