package notify

import (
	"context"
	"os"
	"testing"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/member"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockMemberService struct{ mock.Mock }

func (m *MockMemberService) Register(ctx context.Context, req member.RegisterRequest) (*member.Member, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberService) Get(ctx context.Context, id int) (*member.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberService) List(ctx context.Context, statusFilter string) ([]member.Member, error) {
	args := m.Called(ctx, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func (m *MockMemberService) Update(ctx context.Context, id int, req member.UpdateRequest) (*member.Member, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

func (m *MockMemberService) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockMemberService) DueForReminder(ctx context.Context) ([]member.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]member.Member), args.Error(1)
}

func newTestService(rdb *redis.Client, members member.Service) *Service {
	return &Service{
		redis:    rdb,
		members:  members,
		from:     "noreply@gymdesk.app",
		fromName: "GymDesk",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		smtpUser: "test@example.com",
		smtpPass: "password",
	}
}

func TestSend(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush("reminders", `.*"to":"user@example\.com".*"subject":"Hello".*`).SetVal(1)

	svc := newTestService(db, nil)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSendRenewalReminder_Due(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush("reminders", `.*Renewal Due.*`).SetVal(1)

	svc := newTestService(db, nil)

	email := "awa@example.com"
	err := svc.SendRenewalReminder(ctx, member.Member{
		ID:               3,
		FullName:         "Awa Diallo",
		Email:            &email,
		SubscriptionType: member.TypeMonthly,
		FeeCents:         30000,
		RenewalDate:      time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Status:           member.StatusDue,
	})
	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSendRenewalReminder_Overdue(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush("reminders", `.*Membership Overdue.*access is paused.*`).SetVal(1)

	svc := newTestService(db, nil)

	email := "moussa@example.com"
	err := svc.SendRenewalReminder(ctx, member.Member{
		ID:               4,
		FullName:         "Moussa Ba",
		Email:            &email,
		SubscriptionType: member.TypeWeekly,
		FeeCents:         8000,
		RenewalDate:      time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		Status:           member.StatusOverdue,
	})
	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSendRenewalReminder_SkipsMembersWithoutEmail(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	svc := newTestService(db, nil)

	err := svc.SendRenewalReminder(ctx, member.Member{ID: 4, FullName: "Moussa Ba", Status: member.StatusOverdue})
	assert.NoError(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSweepDueMembers(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	awa := "awa@example.com"
	moussa := "moussa@example.com"
	members := new(MockMemberService)
	members.On("DueForReminder", mock.Anything).Return([]member.Member{
		{ID: 3, FullName: "Awa Diallo", Email: &awa, Status: member.StatusDue, SubscriptionType: member.TypeMonthly},
		{ID: 4, FullName: "Moussa Ba", Email: &moussa, Status: member.StatusOverdue, SubscriptionType: member.TypeWeekly},
	}, nil)

	mockRedis.Regexp().ExpectLPush("reminders", `.*"to":"awa@example\.com".*Renewal Due.*`).SetVal(1)
	mockRedis.Regexp().ExpectLPush("reminders", `.*"to":"moussa@example\.com".*Membership Overdue.*`).SetVal(2)

	svc := newTestService(db, members)

	queued, err := svc.SweepDueMembers(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 2, queued)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
	members.AssertExpectations(t)
}

func TestQueueLength(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.ExpectLLen("reminders").SetVal(5)

	svc := newTestService(db, nil)

	length := svc.QueueLength(ctx)
	assert.Equal(t, int64(5), length)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mockRedis := redismock.NewClientMock()
	ctx := context.Background()

	mockRedis.Regexp().ExpectLPush("reminders", `.*`).SetErr(assert.AnError)

	svc := newTestService(db, nil)

	err := svc.Send(ctx, "user@example.com", "User", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mockRedis.ExpectationsWereMet())
}
