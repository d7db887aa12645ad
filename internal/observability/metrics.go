package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// GithubLookups counts external GitHub repository lookups by outcome.
	GithubLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_lookups_total",
		Help: "Total number of GitHub repository lookups by outcome",
	}, []string{"outcome"})

	// AccountsRegistered counts successful user registrations.
	AccountsRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_accounts_registered_total",
		Help: "Total number of successfully registered accounts",
	})

	// AccountsDeleted counts completed account deletions.
	AccountsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_accounts_deleted_total",
		Help: "Total number of deleted accounts",
	})
)
