package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpvotesRecorded counts upvotes that actually incremented a counter.
	UpvotesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_upvotes_recorded_total",
		Help: "Number of upvotes recorded.",
	})

	// UpvotesDuplicate counts upvote requests suppressed by de-duplication.
	UpvotesDuplicate = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_upvotes_duplicate_total",
		Help: "Number of upvote requests ignored because the client had already upvoted.",
	})

	// UpvoteChecks counts upvote-check lookups by outcome.
	UpvoteChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_upvote_checks_total",
		Help: "Number of upvote-check lookups by result.",
	}, []string{"result"})

	// UpvotesFlagged counts recorded upvotes from clients whose recent
	// upvote velocity exceeded the configured threshold.
	UpvotesFlagged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_upvotes_flagged_total",
		Help: "Number of recorded upvotes from clients exceeding the recent-upvote velocity threshold.",
	})

	// UpvoteErrors counts failed ledger operations by kind.
	UpvoteErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_upvote_errors_total",
		Help: "Number of failed upvote operations by operation and kind.",
	}, []string{"operation", "kind"})
)
