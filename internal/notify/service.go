package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"gymdesk/internal/logger"
	"gymdesk/internal/member"
	"gymdesk/internal/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	queueKey  = "reminders"
	failedKey = "reminders:failed"
)

type ReminderJob struct {
	To      string    `json:"to"`
	Name    string    `json:"name"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis    *redis.Client
	members  member.Service
	from     string
	fromName string
	smtpHost string
	smtpPort string
	smtpUser string
	smtpPass string
}

func New(members member.Service, fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		members:  members,
		from:     fromEmail,
		fromName: fromName,
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		smtpUser: smtpUser,
		smtpPass: smtpPass,
	}
}

func (s *Service) Send(ctx context.Context, to, name, subject, body string) error {
	job := ReminderJob{
		To:      to,
		Name:    name,
		Subject: subject,
		Body:    body,
		Tries:   0,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		logger.Errorf("Failed to marshal reminder job: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue reminder to %s: %v", to, err)
		return err
	}

	logger.Infof("Reminder queued: %s to %s", subject, to)
	metrics.RecordReminderQueued()
	return nil
}

// SendRenewalReminder queues a renewal notice for one member, worded by
// whether the payment window is still open or already missed.
func (s *Service) SendRenewalReminder(ctx context.Context, m member.Member) error {
	if m.Email == nil {
		return nil
	}

	var subject, lead string
	if m.Status == member.StatusOverdue {
		subject = "Membership Overdue"
		lead = "Your membership payment is overdue. Your access is paused until the payment comes in."
	} else {
		subject = "Membership Renewal Due"
		lead = "Your membership renewal is due. Pay soon to keep your access uninterrupted."
	}

	body := fmt.Sprintf(`Hi %s,

%s

Subscription: %s
Renewal date: %s
Amount: %.2f

See you at the gym!

- %s`, m.FullName, lead, m.SubscriptionType, m.RenewalDate.Format("Jan 2, 2006"), float64(m.FeeCents)/100, s.fromName)

	return s.Send(ctx, *m.Email, m.FullName, subject, body)
}

// SweepDueMembers queues a reminder for every due or overdue member
// with an email on file. Returns how many were queued.
func (s *Service) SweepDueMembers(ctx context.Context) (int, error) {
	due, err := s.members.DueForReminder(ctx)
	if err != nil {
		return 0, err
	}

	queued := 0
	for _, m := range due {
		if err := s.SendRenewalReminder(ctx, m); err != nil {
			logger.Errorf("Failed to queue reminder for member %d: %v", m.ID, err)
			continue
		}
		queued++
	}

	logger.Infof("Reminder sweep: %d of %d due members queued", queued, len(due))
	return queued, nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Reminder service started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job ReminderJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad reminder data: %v", err)
		return
	}

	job.Tries++
	logger.Infof("Sending reminder to %s (attempt %d)", job.To, job.Tries)
	if err := s.sendNow(job); err != nil {
		logger.Errorf("Failed to send reminder to %s: %v", job.To, err)

		if job.Tries < 3 {
			time.Sleep(5 * time.Second)
			data, _ := json.Marshal(job)
			s.redis.LPush(context.Background(), queueKey, string(data))
			logger.Infof("Retrying reminder to %s (attempt %d)", job.To, job.Tries+1)
		} else {
			logger.Errorf("Reminder to %s failed after 3 attempts", job.To)
			s.saveFailed(job, err)
		}
		return
	}

	logger.Infof("Reminder sent successfully to %s", job.To)
}

func (s *Service) sendNow(job ReminderJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(job ReminderJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedKey, string(data))
	logger.Errorf("Reminder moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.ReminderQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}
