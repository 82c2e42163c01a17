// Package metrics mendaftarkan counter Prometheus untuk operasi domain
// dan kegagalan store. Di-expose lewat endpoint /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Transitions menghitung transisi status yang sukses per entity
	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "klinik_lifecycle_transitions_total",
		Help: "Jumlah transisi status appointment/prescription yang sukses.",
	}, []string{"entity", "to"})

	// StoreFailures menghitung operasi store yang gagal (degraded mode)
	StoreFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "klinik_store_failures_total",
		Help: "Jumlah operasi persisted store yang gagal.",
	}, []string{"op"})

	// AuthFailures menghitung login gagal per alasan
	AuthFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "klinik_auth_failures_total",
		Help: "Jumlah autentikasi gagal.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(Transitions, StoreFailures, AuthFailures)
}

// Handler untuk dipasang di router lewat gin.WrapH
func Handler() http.Handler {
	return promhttp.Handler()
}
