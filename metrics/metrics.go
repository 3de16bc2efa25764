// Package metrics exports strview fault counts to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wippyai/strview/view"
)

// Observer counts replaced characters by phase, encoding and fault.
type Observer struct {
	faults *prometheus.CounterVec
}

var _ view.Observer = (*Observer)(nil)

// NewObserver creates an Observer and registers its collectors with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		faults: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "strview",
				Name:      "faults_total",
				Help:      "Total number of characters replaced while encoding or decoding.",
			},
			[]string{"phase", "encoding", "fault"},
		),
	}
	if err := reg.Register(o.faults); err != nil {
		return nil, err
	}
	return o, nil
}

// OnFault implements view.Observer.
func (o *Observer) OnFault(e view.Event) {
	o.faults.WithLabelValues(string(e.Phase), string(e.Encoding), e.Fault.String()).Inc()
}
