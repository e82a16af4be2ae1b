package checkin

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"
)

type Service interface {
	CheckIn(ctx context.Context, memberID int) (*Response, error)
	ListByMember(ctx context.Context, memberID int, limit int) ([]CheckIn, error)
	ListRecent(ctx context.Context, from, to time.Time) ([]CheckInWithMember, error)
}

type service struct {
	repo       Repository
	memberRepo member.Repository
}

func NewService(repo Repository, memberRepo member.Repository) Service {
	return &service{repo: repo, memberRepo: memberRepo}
}

func (s *service) CheckIn(ctx context.Context, memberID int) (*Response, error) {
	now := time.Now()

	created, m, err := s.repo.Create(ctx, memberID, now)
	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			logger.Infof("Check-in rejected: member=%d reason=%s", memberID, reason)
			metrics.RecordCheckInRejection(reason)
		}
		return nil, err
	}

	logger.Infof("Check-in: member=%d name=%s", m.ID, m.FullName)
	metrics.RecordCheckIn()

	return &Response{
		CheckIn:    created,
		MemberName: m.FullName,
		Status:     string(member.StatusActive),
	}, nil
}

func (s *service) ListByMember(ctx context.Context, memberID int, limit int) ([]CheckIn, error) {
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.repo.ListByMember(ctx, memberID, limit)
}

func (s *service) ListRecent(ctx context.Context, from, to time.Time) ([]CheckInWithMember, error) {
	return s.repo.ListRecent(ctx, from, to)
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, member.ErrMembershipDue):
		return "due"
	case errors.Is(err, member.ErrMembershipOverdue):
		return "overdue"
	case errors.Is(err, member.ErrPaymentIncomplete):
		return "payment_incomplete"
	}
	return ""
}
