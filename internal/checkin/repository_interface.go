package checkin

import (
	"context"
	"time"

	"gymdesk/internal/member"
)

type Repository interface {
	// Create records a check-in for the member after re-checking
	// eligibility under a row lock. Returns the member as read inside
	// the transaction alongside the new check-in.
	Create(ctx context.Context, memberID int, now time.Time) (*CheckIn, *member.Member, error)
	ListByMember(ctx context.Context, memberID int, limit int) ([]CheckIn, error)
	ListRecent(ctx context.Context, from, to time.Time) ([]CheckInWithMember, error)
}
