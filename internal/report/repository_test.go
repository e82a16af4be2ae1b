package report

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupReportMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestRevenueByMethod(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY method`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"method", "payments", "revenue_cents"}).
			AddRow([]driver.Value{"mobile_money", 12, int64(360000)}...).
			AddRow([]driver.Value{"cash", 5, int64(150000)}...))

	rows, err := repo.RevenueByMethod(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "mobile_money", rows[0].Method)
	require.Equal(t, int64(360000), rows[0].RevenueCents)
}

func TestCheckInsByDay(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	from := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY DATE(check_in_time)`)).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"bucket", "check_ins"}).
			AddRow([]driver.Value{"2024-02-01", 14}...).
			AddRow([]driver.Value{"2024-02-02", 9}...))

	rows, err := repo.CheckInsByDay(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "2024-02-01", rows[0].Bucket)
	require.Equal(t, 14, rows[0].CheckIns)
}

func TestSummary(t *testing.T) {
	repo, mock, close := setupReportMock(t)
	defer close()

	cols := []string{
		"total_members", "active_members", "due_members", "overdue_members",
		"incomplete_payment", "check_ins_today", "revenue_month_cents",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM members`)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow([]driver.Value{40, 31, 5, 4, 2, 11, int64(920000)}...))

	s, err := repo.Summary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 40, s.TotalMembers)
	require.Equal(t, 31, s.ActiveMembers)
	require.Equal(t, 5, s.DueMembers)
	require.Equal(t, 4, s.OverdueMembers)
	require.Equal(t, int64(920000), s.RevenueMonthCents)
}
