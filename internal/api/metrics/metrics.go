// Package metrics defines all custom Prometheus metrics for the bookmark
// service. It is the single source of truth for metric names, labels, and
// help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bookmarkd"

// SignupsTotal counts successfully created accounts.
var SignupsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signups_total",
		Help:      "Total number of accounts created.",
	},
)

// SigninsTotal counts signin attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", or "throttled"
var SigninsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_signins_total",
		Help:      "Total number of signin attempts, labelled by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts bearer tokens rejected by the guard. The reasons
// are deliberately not labelled; the guard does not distinguish them outward
// and the metric should not either.
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_token_rejections_total",
		Help:      "Total number of requests rejected for a missing or invalid bearer token.",
	},
)

// BookmarksCreatedTotal counts bookmarks created.
var BookmarksCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_created_total",
		Help:      "Total number of bookmarks created.",
	},
)

// BookmarksDeletedTotal counts bookmarks deleted.
var BookmarksDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookmarks_deleted_total",
		Help:      "Total number of bookmarks deleted.",
	},
)
