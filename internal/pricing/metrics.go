package pricing

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Quotes *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Quotes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "eonova",
				Name:      "price_quotes_total",
				Help:      "Price quotes served, by whether the special style surcharge applied",
			},
			[]string{"special_style"},
		),
	}
	reg.MustRegister(m.Quotes)
	return m
}

func (m *Metrics) observe(q Quote) {
	if m == nil {
		return
	}
	m.Quotes.WithLabelValues(strconv.FormatBool(q.Breakdown.SpecialStyle.IsPositive())).Inc()
}
