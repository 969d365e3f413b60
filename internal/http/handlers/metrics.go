package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
)

var RoundsPlayed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rpsls_rounds_total",
		Help: "Rounds played, by challenger result",
	},
	[]string{"result"},
)

var RoundsRecordFailed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "rpsls_round_record_failures_total",
		Help: "Rounds that could not be written to history",
	},
)

func init() {
	prometheus.MustRegister(RoundsPlayed)
	prometheus.MustRegister(RoundsRecordFailed)
}
