package promhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unkn0wn-root/brcache"
)

// Hooks counts store events on a Prometheus registry. Keys are dropped on
// purpose; they are unbounded and would explode label cardinality.
type Hooks struct {
	compressed  prometheus.Counter
	rawBytes    prometheus.Counter
	storedBytes prometheus.Counter
	rejected    prometheus.Counter
	corrupt     *prometheus.CounterVec
	writeDrops  *prometheus.CounterVec
}

var _ brcache.Hooks = (*Hooks)(nil)

// New registers the brcache collectors on reg. A nil reg uses the default
// registerer. Registering twice on one registry panics, same as promauto.
func New(reg prometheus.Registerer) *Hooks {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Hooks{
		compressed: f.NewCounter(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "compressed_total",
			Help:      "Total number of entries stored compressed",
		}),
		rawBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "compressed_raw_bytes_total",
			Help:      "Total encoded bytes before compression, compressed entries only",
		}),
		storedBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "compressed_stored_bytes_total",
			Help:      "Total bytes stored for compressed entries, marker included",
		}),
		rejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "compression_rejected_total",
			Help:      "Total number of entries where compression did not shrink the payload",
		}),
		corrupt: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "corrupt_payloads_total",
			Help:      "Total number of stored payloads that failed to decode",
		}, []string{"reason"}), // "inflate", "decode", "counter"
		writeDrops: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brcache",
			Name:      "write_rejected_total",
			Help:      "Total number of writes the provider rejected under pressure",
		}, []string{"kind"}), // "single", "multi"
	}
}

func (h *Hooks) Compressed(_ string, rawLen, storedLen int) {
	h.compressed.Inc()
	h.rawBytes.Add(float64(rawLen))
	h.storedBytes.Add(float64(storedLen))
}

func (h *Hooks) CompressionRejected(string, int, int) {
	h.rejected.Inc()
}

func (h *Hooks) CorruptPayload(_ string, reason string) {
	h.corrupt.WithLabelValues(reason).Inc()
}

func (h *Hooks) WriteRejected(_ string, isMulti bool) {
	kind := "single"
	if isMulti {
		kind = "multi"
	}
	h.writeDrops.WithLabelValues(kind).Inc()
}
