package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"gymdesk/internal/member"
	"gymdesk/internal/payment"
	"gymdesk/internal/settings"
)

// Backup is the full portable snapshot of the gym's data, exported
// one-way: JSON for an offline backup, CSV for spreadsheets.
type Backup struct {
	ExportedAt time.Time                   `json:"exported_at"`
	Settings   *settings.Settings          `json:"settings"`
	Members    []member.Member             `json:"members"`
	Payments   []payment.PaymentWithMember `json:"payments"`
}

type Service interface {
	Snapshot(ctx context.Context) (*Backup, error)
}

type service struct {
	memberRepo   member.Repository
	paymentRepo  payment.Repository
	settingsRepo *settings.Repository
}

func NewService(memberRepo member.Repository, paymentRepo payment.Repository, settingsRepo *settings.Repository) Service {
	return &service{memberRepo: memberRepo, paymentRepo: paymentRepo, settingsRepo: settingsRepo}
}

func (s *service) Snapshot(ctx context.Context) (*Backup, error) {
	cfg, err := s.settingsRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// The payment table has no unbounded lister; a wide half-open range
	// covers everything ever recorded.
	now := time.Now()
	payments, err := s.paymentRepo.ListRange(ctx, time.Unix(0, 0), now.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	return &Backup{
		ExportedAt: now,
		Settings:   cfg,
		Members:    members,
		Payments:   payments,
	}, nil
}

var memberHeader = []string{
	"id", "full_name", "phone", "email", "gender", "start_date",
	"subscription_type", "fee_cents", "renewal_date", "status",
	"payment_status", "last_check_in",
}

var paymentHeader = []string{
	"id", "member_id", "member_name", "amount_cents", "method",
	"payment_date", "renewal_period", "subscription_type", "notes",
}

// MarshalCSV renders the snapshot as one CSV document with a members
// section followed by a payments section, separated by a blank row.
func MarshalCSV(b *Backup) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"# members"}); err != nil {
		return nil, err
	}
	if err := w.Write(memberHeader); err != nil {
		return nil, err
	}
	for _, m := range b.Members {
		if err := w.Write(memberRow(m)); err != nil {
			return nil, err
		}
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}

	if err := w.Write([]string{"# payments"}); err != nil {
		return nil, err
	}
	if err := w.Write(paymentHeader); err != nil {
		return nil, err
	}
	for _, p := range b.Payments {
		if err := w.Write(paymentRow(p)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func memberRow(m member.Member) []string {
	return []string{
		strconv.Itoa(m.ID),
		m.FullName,
		m.Phone,
		optionalString(m.Email),
		m.Gender,
		m.StartDate.Format("2006-01-02"),
		string(m.SubscriptionType),
		strconv.FormatInt(m.FeeCents, 10),
		m.RenewalDate.Format("2006-01-02"),
		string(m.Status),
		string(m.PaymentStatus),
		optionalTime(m.LastCheckIn),
	}
}

func paymentRow(p payment.PaymentWithMember) []string {
	return []string{
		strconv.Itoa(p.ID),
		strconv.Itoa(p.MemberID),
		p.MemberName,
		strconv.FormatInt(p.AmountCents, 10),
		string(p.Method),
		p.PaymentDate.Format("2006-01-02"),
		p.RenewalPeriod,
		p.SubscriptionType,
		optionalString(p.Notes),
	}
}

// Filename builds the attachment name for a snapshot, e.g.
// gymdesk-export-2024-02-10.csv.
func Filename(b *Backup, ext string) string {
	return fmt.Sprintf("gymdesk-export-%s.%s", b.ExportedAt.Format("2006-01-02"), ext)
}

func optionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
