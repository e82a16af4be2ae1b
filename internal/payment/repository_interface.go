package payment

import (
	"context"
	"time"

	"gymdesk/internal/member"
)

type Repository interface {
	Record(ctx context.Context, p *Payment, renewalDate time.Time, status member.Status) (*Payment, error)
	ListByMember(ctx context.Context, memberID int) ([]Payment, error)
	ListRange(ctx context.Context, from, to time.Time) ([]PaymentWithMember, error)
}
