package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
)

var (
	ErrInvalidMethod = errors.New("unknown payment method")
	ErrInvalidDate   = errors.New("invalid date, use YYYY-MM-DD")
	ErrZeroAmount    = errors.New("payment amount must be positive")
)

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*RecordResponse, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]PaymentWithMember, error)
}

type service struct {
	repo       Repository
	memberRepo member.Repository
}

func NewService(repo Repository, memberRepo member.Repository) Service {
	return &service{repo: repo, memberRepo: memberRepo}
}

func (s *service) Record(ctx context.Context, req RecordRequest) (*RecordResponse, error) {
	method := Method(req.Method)
	if !ValidMethod(method) {
		return nil, ErrInvalidMethod
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		var err error
		paymentDate, err = time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
	}

	m, err := s.memberRepo.GetByID(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}

	amount := req.AmountCents
	if amount == 0 {
		amount = m.FeeCents
	}
	if amount <= 0 {
		return nil, ErrZeroAmount
	}

	renewalDate := member.NextRenewalDate(paymentDate, m.SubscriptionType)
	status := member.DeriveStatus(renewalDate, time.Now())

	p := &Payment{
		MemberID:         m.ID,
		AmountCents:      amount,
		Method:           method,
		PaymentDate:      paymentDate,
		RenewalPeriod:    renewalPeriod(paymentDate, renewalDate),
		SubscriptionType: string(m.SubscriptionType),
		Notes:            optional(req.Notes),
	}

	created, err := s.repo.Record(ctx, p, renewalDate, status)
	if err != nil {
		return nil, err
	}

	logger.Infof("Payment recorded: member=%d amount=%d method=%s renewal=%s",
		m.ID, amount, method, renewalDate.Format("2006-01-02"))
	metrics.RecordPayment(string(method), string(m.SubscriptionType), amount)

	return &RecordResponse{
		Payment:        created,
		NewRenewalDate: renewalDate,
		NewStatus:      string(status),
	}, nil
}

func (s *service) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.repo.ListByMember(ctx, memberID)
}

func (s *service) ListRange(ctx context.Context, from, to time.Time) ([]PaymentWithMember, error) {
	return s.repo.ListRange(ctx, from, to)
}

func renewalPeriod(from, to time.Time) string {
	return fmt.Sprintf("%s - %s", from.Format("Jan 2, 2006"), to.Format("Jan 2, 2006"))
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
