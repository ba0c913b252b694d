package routes

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripcost_calculations_total",
		Help: "Trip cost calculations by outcome.",
	}, []string{"outcome"})

	upstreamErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tripcost_upstream_errors_total",
		Help: "Failed calls to the place search and routing services.",
	}, []string{"service"})
)
