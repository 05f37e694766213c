/*
Package monitoring provides evaluation metrics collection.

# Overview

Metrics are Prometheus collectors registered on a caller-supplied registry,
so independent calculator sessions never share state. A running Snapshot is
kept alongside for log summaries.

# Metrics

  - calculator_evaluations_total{representation, operator, outcome}
  - calculator_evaluation_duration_seconds{representation}

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)
	metrics.RecordEvaluation(calculator.Int32, "+", err, time.Since(start))
*/
package monitoring
