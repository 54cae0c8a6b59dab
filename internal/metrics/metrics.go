package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/view"
)

var (
	purchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shop_purchases_total",
			Help: "Total number of purchase attempts labeled by tender and status",
		},
		[]string{"tender", "status"},
	)
	viewTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "view_transitions_total",
			Help: "Total number of view transitions",
		},
		[]string{"from", "to"},
	)
	feedItemsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feed_items_added_total",
			Help: "Total number of feed items published through the admin panel",
		},
	)
	sessionActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "session_active",
			Help: "Whether a user session is currently persisted (0 or 1)",
		},
	)
)

func init() {
	view.RegisterTransitionRecorder(RecordViewTransition)
}

// RecordPurchase counts a purchase attempt outcome.
func RecordPurchase(tender, status string) {
	purchasesTotal.WithLabelValues(tender, status).Inc()
}

// RecordViewTransition counts an accepted navigation move.
func RecordViewTransition(from, to string) {
	viewTransitionsTotal.WithLabelValues(from, to).Inc()
}

// RecordFeedItem counts a published feed entry.
func RecordFeedItem() {
	feedItemsTotal.Inc()
}

// SetSessionActive flips the session gauge on login/logout.
func SetSessionActive(active bool) {
	if active {
		sessionActive.Set(1)
		return
	}
	sessionActive.Set(0)
}
