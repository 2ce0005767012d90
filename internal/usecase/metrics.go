package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reservationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "theater_reservations_created_total",
		Help: "Reservations successfully created.",
	})

	reservationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "theater_reservations_rejected_total",
		Help: "Reservation attempts rejected, by reason.",
	}, []string{"reason"})

	reservationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "theater_reservations_deleted_total",
		Help: "Reservations explicitly deleted.",
	})
)
