package monitoring

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/GriffinCanCode/calculator/internal/calculator"
)

// Evaluation outcomes used as the "outcome" label.
const (
	OutcomeSuccess          = "success"
	OutcomeInvalidArgument  = "invalid_argument"
	OutcomeInvalidOperation = "invalid_operation"
	OutcomeDivideByZero     = "divide_by_zero"
	OutcomeError            = "error"
)

// Metrics holds evaluation metrics
type Metrics struct {
	Evaluations        *prometheus.CounterVec
	EvaluationDuration *prometheus.HistogramVec

	snapshot Snapshot
	mu       sync.Mutex
}

// Snapshot holds running totals for log summaries
type Snapshot struct {
	Total    int64            `json:"total"`
	Failures int64            `json:"failures"`
	Outcomes map[string]int64 `json:"outcomes"`
}

// NewMetrics registers evaluation metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculator_evaluations_total",
				Help: "Total number of calculator evaluations",
			},
			[]string{"representation", "operator", "outcome"},
		),
		EvaluationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calculator_evaluation_duration_seconds",
				Help:    "Evaluation duration in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-7, 10, 7),
			},
			[]string{"representation"},
		),
		snapshot: Snapshot{Outcomes: make(map[string]int64)},
	}
}

// RecordEvaluation records one evaluation. Operators outside the
// representation's symbol table are labelled "other".
func (m *Metrics) RecordEvaluation(rep calculator.Representation, operator string, err error, duration time.Duration) {
	outcome := Classify(err)
	m.Evaluations.WithLabelValues(rep.String(), operatorLabel(rep, operator), outcome).Inc()
	m.EvaluationDuration.WithLabelValues(rep.String()).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.Total++
	if outcome != OutcomeSuccess {
		m.snapshot.Failures++
	}
	m.snapshot.Outcomes[outcome]++
	m.mu.Unlock()
}

// Snapshot returns a copy of the running totals.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	outcomes := make(map[string]int64, len(m.snapshot.Outcomes))
	for k, v := range m.snapshot.Outcomes {
		outcomes[k] = v
	}
	return Snapshot{Total: m.snapshot.Total, Failures: m.snapshot.Failures, Outcomes: outcomes}
}

// Classify maps an evaluation error to its outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, calculator.ErrDivideByZero):
		return OutcomeDivideByZero
	case errors.Is(err, calculator.ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, calculator.ErrInvalidOperation):
		return OutcomeInvalidOperation
	default:
		return OutcomeError
	}
}

func operatorLabel(rep calculator.Representation, operator string) string {
	operator = strings.TrimSpace(operator)
	for _, symbol := range rep.Operations() {
		if symbol == operator {
			return symbol
		}
	}
	return "other"
}
