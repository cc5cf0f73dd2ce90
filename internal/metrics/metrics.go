package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventpass_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventpass_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	EnrollmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventpass_enrollments_total",
			Help: "Total number of event enrollments",
		},
		[]string{"payment_method"},
	)

	EnrollmentCancellationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventpass_enrollment_cancellations_total",
			Help: "Total number of enrollment cancellations",
		},
	)

	RefundsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventpass_refunds_total",
			Help: "Total number of refunds by method",
		},
		[]string{"method"},
	)

	WalletTopUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "eventpass_wallet_topups_total",
			Help: "Total number of wallet top-ups",
		},
	)

	PackagePurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventpass_package_purchases_total",
			Help: "Total number of pass package purchases",
		},
		[]string{"package_id"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventpass_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "eventpass_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordEnrollment(paymentMethod string) {
	EnrollmentsTotal.WithLabelValues(paymentMethod).Inc()
}

func RecordEnrollmentCancellation() {
	EnrollmentCancellationsTotal.Inc()
}

func RecordRefund(method string) {
	RefundsTotal.WithLabelValues(method).Inc()
}

func RecordWalletTopUp() {
	WalletTopUpsTotal.Inc()
}

func RecordPackagePurchase(packageID string) {
	PackagePurchasesTotal.WithLabelValues(packageID).Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
