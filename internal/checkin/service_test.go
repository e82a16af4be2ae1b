package checkin

import (
	"context"
	"os"
	"testing"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockCheckInRepo struct{ mock.Mock }

func (m *MockCheckInRepo) Create(ctx context.Context, memberID int, now time.Time) (*CheckIn, *member.Member, error) {
	args := m.Called(ctx, memberID, now)
	var c *CheckIn
	if args.Get(0) != nil {
		c = args.Get(0).(*CheckIn)
	}
	var mem *member.Member
	if args.Get(1) != nil {
		mem = args.Get(1).(*member.Member)
	}
	return c, mem, args.Error(2)
}

func (m *MockCheckInRepo) ListByMember(ctx context.Context, memberID int, limit int) ([]CheckIn, error) {
	args := m.Called(ctx, memberID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CheckIn), args.Error(1)
}

func (m *MockCheckInRepo) ListRecent(ctx context.Context, from, to time.Time) ([]CheckInWithMember, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CheckInWithMember), args.Error(1)
}

type MockMemberRepo struct{ mock.Mock }

func (m *MockMemberRepo) Create(ctx context.Context, mem *member.Member) (*member.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id int) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) List(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func (m *MockMemberRepo) Update(ctx context.Context, mem *member.Member) (*member.Member, error) {
	args := m.Called(ctx, mem)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberRepo) UpdateStatus(ctx context.Context, id int, status member.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockMemberRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberRepo) PhoneExists(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

func TestService_CheckIn(t *testing.T) {
	repo := new(MockCheckInRepo)

	now := time.Now()
	repo.On("Create", mock.Anything, 3, mock.AnythingOfType("time.Time")).
		Return(
			&CheckIn{ID: 7, MemberID: 3, CheckInTime: now},
			&member.Member{ID: 3, FullName: "Awa Diallo", Status: member.StatusActive},
			nil,
		)

	svc := NewService(repo, new(MockMemberRepo))

	resp, err := svc.CheckIn(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, 7, resp.CheckIn.ID)
	assert.Equal(t, "Awa Diallo", resp.MemberName)
	assert.Equal(t, "active", resp.Status)
	repo.AssertExpectations(t)
}

func TestService_CheckIn_PropagatesRejection(t *testing.T) {
	repo := new(MockCheckInRepo)
	repo.On("Create", mock.Anything, 3, mock.AnythingOfType("time.Time")).
		Return(nil, &member.Member{ID: 3}, member.ErrMembershipDue)

	svc := NewService(repo, new(MockMemberRepo))

	_, err := svc.CheckIn(context.Background(), 3)
	assert.ErrorIs(t, err, member.ErrMembershipDue)
}

func TestService_ListByMember_ClampsLimit(t *testing.T) {
	repo := new(MockCheckInRepo)
	memberRepo := new(MockMemberRepo)

	memberRepo.On("GetByID", mock.Anything, 3).Return(&member.Member{ID: 3}, nil)
	repo.On("ListByMember", mock.Anything, 3, 50).Return([]CheckIn{}, nil)

	svc := NewService(repo, memberRepo)

	_, err := svc.ListByMember(context.Background(), 3, -5)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestService_ListByMember_MemberNotFound(t *testing.T) {
	repo := new(MockCheckInRepo)
	memberRepo := new(MockMemberRepo)
	memberRepo.On("GetByID", mock.Anything, 99).Return(nil, member.ErrMemberNotFound)

	svc := NewService(repo, memberRepo)

	_, err := svc.ListByMember(context.Background(), 99, 10)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	repo.AssertNotCalled(t, "ListByMember")
}

func TestRejectionReason(t *testing.T) {
	assert.Equal(t, "due", rejectionReason(member.ErrMembershipDue))
	assert.Equal(t, "overdue", rejectionReason(member.ErrMembershipOverdue))
	assert.Equal(t, "payment_incomplete", rejectionReason(member.ErrPaymentIncomplete))
	assert.Equal(t, "", rejectionReason(context.DeadlineExceeded))
}
