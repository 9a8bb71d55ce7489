package observability

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitfeed_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fitfeed_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// WorkoutsCreated counts workouts created by visibility.
	WorkoutsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitfeed_workouts_created_total",
		Help: "Total number of workouts created by visibility",
	}, []string{"visibility"})

	// LogsRecorded counts workout logs recorded.
	LogsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fitfeed_logs_recorded_total",
		Help: "Total number of workout logs recorded",
	})

	// FeedRequests counts feed page loads by viewer kind.
	FeedRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitfeed_feed_requests_total",
		Help: "Total number of feed page requests",
	}, []string{"viewer"})

	// RateLimitRejections counts requests rejected by the rate limiter.
	RateLimitRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitfeed_ratelimit_rejections_total",
		Help: "Total number of requests rejected by the rate limiter",
	}, []string{"resource"})

	// SocialActions counts like/follow toggles by action and direction.
	SocialActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fitfeed_social_actions_total",
		Help: "Total number of social actions (like, follow) by direction",
	}, []string{"action", "direction"})
)

// ObserveDBQuery records one database query latency sample, deriving
// the operation and table labels from the SQL text. The GORM logger
// calls this for every traced statement.
func ObserveDBQuery(sql string, elapsed time.Duration) {
	operation, table := parseSQLTarget(sql)
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(elapsed.Seconds())
}

// parseSQLTarget extracts the leading verb and the primary table from a
// SQL statement. Statements it does not recognize are labeled "other"
// so the label set stays bounded.
func parseSQLTarget(sql string) (string, string) {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "other", "unknown"
	}

	operation := strings.ToLower(fields[0])
	var keyword string
	switch operation {
	case "select", "delete":
		keyword = "from"
	case "insert":
		keyword = "into"
	case "update":
		if len(fields) > 1 {
			return operation, normalizeTable(fields[1])
		}
		return operation, "unknown"
	default:
		return "other", "unknown"
	}

	for i := 1; i < len(fields)-1; i++ {
		if strings.EqualFold(fields[i], keyword) {
			return operation, normalizeTable(fields[i+1])
		}
	}
	return operation, "unknown"
}

func normalizeTable(raw string) string {
	return strings.ToLower(strings.Trim(raw, "`\"();,"))
}
