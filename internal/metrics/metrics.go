package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	loginTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "login_total",
			Help:      "Count of login attempts by role and outcome.",
		},
		[]string{"role", "outcome"},
	)

	promotionCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "promotion_created_total",
			Help:      "Count of promotions created.",
		},
	)

	bannerMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "banner_mutation_total",
			Help:      "Count of screensaver banner mutations by kind.",
		},
		[]string{"kind"},
	)

	onboardingCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "onboarding_completed_total",
			Help:      "Count of completed tenant onboardings by plan tier.",
		},
		[]string{"tier"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "backoffice",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and status.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(loginTotal, promotionCreated, bannerMutations, onboardingCompleted, requestDuration)
	})
}

func IncLogin(role, outcome string) {
	loginTotal.WithLabelValues(role, outcome).Inc()
}

func IncPromotionCreated() {
	promotionCreated.Inc()
}

func IncBannerMutation(kind string) {
	bannerMutations.WithLabelValues(kind).Inc()
}

func IncOnboardingCompleted(tier string) {
	onboardingCompleted.WithLabelValues(tier).Inc()
}

func ObserveRequest(method, status string, seconds float64) {
	requestDuration.WithLabelValues(method, status).Observe(seconds)
}
