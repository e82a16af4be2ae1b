package payment

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

type MockPaymentRepo struct{ mock.Mock }

func (m *MockPaymentRepo) Record(ctx context.Context, p *Payment, renewalDate time.Time, status member.Status) (*Payment, error) {
	args := m.Called(ctx, p, renewalDate, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListByMember(ctx context.Context, memberID int) ([]Payment, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

func (m *MockPaymentRepo) ListRange(ctx context.Context, from, to time.Time) ([]PaymentWithMember, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PaymentWithMember), args.Error(1)
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

func TestService_Record(t *testing.T) {
	repo := new(MockPaymentRepo)
	memberRepo := new(MockMemberRepo)

	memberRepo.On("GetByID", mock.Anything, 3).Return(&member.Member{
		ID:               3,
		FullName:         "Awa Diallo",
		SubscriptionType: member.TypeMonthly,
		FeeCents:         30000,
		RenewalDate:      time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		Status:           member.StatusOverdue,
	}, nil)

	wantRenewal := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)
	wantStatus := member.DeriveStatus(wantRenewal, time.Now())
	repo.On("Record", mock.Anything, mock.MatchedBy(func(p *Payment) bool {
		return p.MemberID == 3 &&
			p.AmountCents == 30000 &&
			p.Method == MethodMobileMoney &&
			p.SubscriptionType == "monthly" &&
			p.RenewalPeriod == "Feb 10, 2024 - Mar 10, 2024"
	}), wantRenewal, wantStatus).Return(&Payment{ID: 9, MemberID: 3, AmountCents: 30000}, nil)

	svc := NewService(repo, memberRepo)

	resp, err := svc.Record(context.Background(), RecordRequest{
		MemberID:    3,
		Method:      "mobile_money",
		PaymentDate: "2024-02-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, 9, resp.Payment.ID)
	assert.Equal(t, wantRenewal, resp.NewRenewalDate)
	assert.Equal(t, string(wantStatus), resp.NewStatus)
	repo.AssertExpectations(t)
	memberRepo.AssertExpectations(t)
}

func TestService_Record_UnknownMethod(t *testing.T) {
	svc := NewService(new(MockPaymentRepo), new(MockMemberRepo))

	_, err := svc.Record(context.Background(), RecordRequest{MemberID: 3, Method: "barter"})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestService_Record_MemberNotFound(t *testing.T) {
	repo := new(MockPaymentRepo)
	memberRepo := new(MockMemberRepo)
	memberRepo.On("GetByID", mock.Anything, 99).Return(nil, member.ErrMemberNotFound)

	svc := NewService(repo, memberRepo)

	_, err := svc.Record(context.Background(), RecordRequest{MemberID: 99, Method: "cash"})
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
	repo.AssertNotCalled(t, "Record")
}

func TestService_Record_ZeroAmountWithNoFee(t *testing.T) {
	repo := new(MockPaymentRepo)
	memberRepo := new(MockMemberRepo)
	memberRepo.On("GetByID", mock.Anything, 3).Return(&member.Member{
		ID:               3,
		SubscriptionType: member.TypeMonthly,
		FeeCents:         0,
	}, nil)

	svc := NewService(repo, memberRepo)

	_, err := svc.Record(context.Background(), RecordRequest{MemberID: 3, Method: "cash"})
	assert.ErrorIs(t, err, ErrZeroAmount)
	repo.AssertNotCalled(t, "Record")
}
