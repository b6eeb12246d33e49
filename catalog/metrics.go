package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Label values for the kind of source a catalog was read from.
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceInline   = "inline"
)

var (
	catalogLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "biomeroute_catalog_loads_total",
		Help: "Catalog loads by source kind and outcome",
	}, []string{"source", "outcome"})

	catalogLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "biomeroute_catalog_load_duration_seconds",
		Help:    "Duration of catalog parsing and graph construction",
		Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	catalogEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "biomeroute_catalog_edges",
		Help: "Edge count of the most recently loaded catalog",
	})
)

var tracer = otel.Tracer("biomeroute.catalog")

func recordLoad(source string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	catalogLoads.WithLabelValues(source, outcome).Inc()
}
