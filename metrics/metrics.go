package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Rate-limit rejections get their own counter rather than being folded into
// failures: they are expected behavior, not an error condition.
var (
	CheckInsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "territory_checkins_accepted_total",
		Help: "Accepted check-ins.",
	})

	CheckInsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "territory_checkins_rejected_total",
		Help: "Rejected check-ins by reason.",
	}, []string{"reason"})

	CapturesAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "territory_captures_accepted_total",
		Help: "Accepted direct captures.",
	})

	CapturesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "territory_captures_rejected_total",
		Help: "Rejected direct captures by reason.",
	}, []string{"reason"})

	OwnershipTransfers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "territory_ownership_transfers_total",
		Help: "Ownership transfers from either flow.",
	})
)
