package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymdesk_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	MembersRegisteredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_members_registered_total",
			Help: "Total number of members registered",
		},
		[]string{"subscription_type"},
	)

	MembersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_members_deleted_total",
			Help: "Total number of members deleted",
		},
	)

	PaymentsRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_payments_recorded_total",
			Help: "Total number of payments recorded",
		},
		[]string{"method", "subscription_type"},
	)

	RevenueCentsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_revenue_cents_total",
			Help: "Total revenue recorded in cents",
		},
	)

	CheckInsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_checkins_total",
			Help: "Total number of accepted check-ins",
		},
	)

	CheckInRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymdesk_checkin_rejections_total",
			Help: "Total number of rejected check-ins",
		},
		[]string{"reason"},
	)

	RemindersQueuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymdesk_reminders_queued_total",
			Help: "Total number of renewal reminders queued",
		},
	)

	ReminderQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymdesk_reminder_queue_length",
			Help: "Current length of the reminder queue",
		},
	)

	MembersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gymdesk_members_by_status",
			Help: "Number of members per derived status",
		},
		[]string{"status"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordRegistration(subscriptionType string) {
	MembersRegisteredTotal.WithLabelValues(subscriptionType).Inc()
}

func RecordPayment(method, subscriptionType string, amountCents int64) {
	PaymentsRecordedTotal.WithLabelValues(method, subscriptionType).Inc()
	RevenueCentsTotal.Add(float64(amountCents))
}

func RecordCheckIn() {
	CheckInsTotal.Inc()
}

func RecordCheckInRejection(reason string) {
	CheckInRejectionsTotal.WithLabelValues(reason).Inc()
}

func RecordReminderQueued() {
	RemindersQueuedTotal.Inc()
}
