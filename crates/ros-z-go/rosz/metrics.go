package rosz

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Codec directions used as the "direction" label.
const (
	DirectionSerialize   = "serialize"
	DirectionDeserialize = "deserialize"
)

// UnknownTypeLabel is the "type" label of calls whose type name did not
// resolve, so unknown names cannot grow the label set.
const UnknownTypeLabel = "unknown"

// CodecMetrics counts codec traffic per message type and direction. The type
// label is always the "pkg::msg::Name" spelling.
// A nil *CodecMetrics records nothing.
type CodecMetrics struct {
	messages *prometheus.CounterVec
	bytes    *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewCodecMetrics creates the codec collectors and registers them with reg.
func NewCodecMetrics(reg prometheus.Registerer) *CodecMetrics {
	m := &CodecMetrics{
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rosz",
			Subsystem: "codec",
			Name:      "messages_total",
			Help:      "Messages processed by the CDR codec",
		}, []string{"type", "direction"}),
		bytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rosz",
			Subsystem: "codec",
			Name:      "bytes_total",
			Help:      "Encapsulated CDR bytes produced or consumed",
		}, []string{"type", "direction"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rosz",
			Subsystem: "codec",
			Name:      "failures_total",
			Help:      "Codec calls that returned an error",
		}, []string{"type", "direction"}),
	}
	reg.MustRegister(m.messages, m.bytes, m.failures)
	return m
}

func (m *CodecMetrics) observe(typeName, direction string, n int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.failures.WithLabelValues(typeName, direction).Inc()
		return
	}
	m.messages.WithLabelValues(typeName, direction).Inc()
	m.bytes.WithLabelValues(typeName, direction).Add(float64(n))
}
