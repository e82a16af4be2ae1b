package member

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/metrics"
)

var (
	ErrPhoneExists             = errors.New("phone number already registered")
	ErrInvalidSubscriptionType = errors.New("unknown subscription type")
	ErrInvalidDate             = errors.New("invalid date, use YYYY-MM-DD")
)

// SettingsSource supplies the default fee for a subscription type when
// registration omits one.
type SettingsSource interface {
	DefaultFeeCents(ctx context.Context, subscriptionType string) (int64, error)
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Member, error)
	Get(ctx context.Context, id int) (*Member, error)
	List(ctx context.Context, statusFilter string) ([]Member, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Member, error)
	Delete(ctx context.Context, id int) error
	DueForReminder(ctx context.Context) ([]Member, error)
}

type service struct {
	repo     Repository
	settings SettingsSource
}

func NewService(repo Repository, settings SettingsSource) Service {
	return &service{repo: repo, settings: settings}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Member, error) {
	subType := SubscriptionType(req.SubscriptionType)
	if !ValidSubscriptionType(subType) {
		return nil, ErrInvalidSubscriptionType
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	exists, err := s.repo.PhoneExists(ctx, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrPhoneExists
	}

	feeCents := req.FeeCents
	if feeCents == 0 && s.settings != nil {
		feeCents, err = s.settings.DefaultFeeCents(ctx, req.SubscriptionType)
		if err != nil {
			return nil, err
		}
	}

	paymentStatus := PaymentIncomplete
	if req.PaymentStatus == string(PaymentPaid) {
		paymentStatus = PaymentPaid
	}

	now := time.Now()
	renewalDate := NextRenewalDate(startDate, subType)

	m := &Member{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            optional(req.Email),
		Gender:           req.Gender,
		StartDate:        startDate,
		SubscriptionType: subType,
		FeeCents:         feeCents,
		RenewalDate:      renewalDate,
		Status:           DeriveStatus(renewalDate, now),
		PaymentStatus:    paymentStatus,
	}

	created, err := s.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	logger.Infof("Member registered: %s (%s)", created.FullName, created.SubscriptionType)
	metrics.RecordRegistration(string(created.SubscriptionType))

	return created, nil
}

func (s *service) Get(ctx context.Context, id int) (*Member, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.refreshStatus(ctx, m, time.Now()); err != nil {
		return nil, err
	}

	return m, nil
}

// List returns all members with their stored status refreshed against
// the wall clock, so a membership that lapsed since the last write shows
// its current state.
func (s *service) List(ctx context.Context, statusFilter string) ([]Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range members {
		if err := s.refreshStatus(ctx, &members[i], now); err != nil {
			return nil, err
		}
	}

	if statusFilter == "" {
		return members, nil
	}

	filtered := make([]Member, 0, len(members))
	for _, m := range members {
		if m.Status == Status(statusFilter) {
			filtered = append(filtered, m)
		}
	}

	return filtered, nil
}

func (s *service) Update(ctx context.Context, id int, req UpdateRequest) (*Member, error) {
	subType := SubscriptionType(req.SubscriptionType)
	if !ValidSubscriptionType(subType) {
		return nil, ErrInvalidSubscriptionType
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != m.Phone {
		exists, err := s.repo.PhoneExists(ctx, req.Phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrPhoneExists
		}
	}

	m.FullName = req.FullName
	m.Phone = req.Phone
	m.Email = optional(req.Email)
	m.Gender = req.Gender
	m.SubscriptionType = subType
	if req.FeeCents > 0 {
		m.FeeCents = req.FeeCents
	}
	if req.PaymentStatus != "" {
		m.PaymentStatus = PaymentStatus(req.PaymentStatus)
	}

	// Renewal date is untouched here: only recording a payment moves it.
	m.Status = DeriveStatus(m.RenewalDate, time.Now())

	return s.repo.Update(ctx, m)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Infof("Member %d deleted with payment and check-in history", id)
	metrics.MembersDeletedTotal.Inc()

	return nil
}

// DueForReminder lists members whose refreshed status is due or overdue
// and who have an email address on file.
func (s *service) DueForReminder(ctx context.Context) ([]Member, error) {
	members, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}

	var due []Member
	for _, m := range members {
		if m.Email == nil {
			continue
		}
		if m.Status == StatusDue || m.Status == StatusOverdue {
			due = append(due, m)
		}
	}

	return due, nil
}

func (s *service) refreshStatus(ctx context.Context, m *Member, now time.Time) error {
	derived := DeriveStatus(m.RenewalDate, now)
	if derived == m.Status {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, m.ID, derived); err != nil {
		return err
	}
	m.Status = derived

	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
