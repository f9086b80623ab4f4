// Package metrics defines all custom Prometheus metrics for the task
// management API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "taskboard"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations.
// Label:
//   - role: the role assigned at registration ("admin" for the bootstrap
//     account, "user" otherwise)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful registrations, by assigned role.",
	},
	[]string{"role"},
)

// AuthzDenialsTotal counts authorization denials.
// Label:
//   - operation: the method and route that rejected the caller
//     (e.g. "PUT /api/tasks/:id/status")
var AuthzDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denials_total",
		Help:      "Total number of requests rejected by role or ownership policy.",
	},
	[]string{"operation"},
)

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - priority: "low", "medium", or "high"
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by priority.",
	},
	[]string{"priority"},
)

// CommentsCreatedTotal counts newly created comments.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)
