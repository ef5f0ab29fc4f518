/*
Package monitoring provides Prometheus metrics for tool execution.

# Overview

Every Metrics value owns a private prometheus.Registry. Collectors are
prefixed with the configured namespace (default "mathcompat"):

- service_calls_total{service, method, status}
- service_duration_seconds{service, method}
- service_errors_total{service, method, error_type}
- registered_services

# Usage

	metrics := monitoring.NewMetrics("mathcompat")
	metrics.RecordServiceCall("math", "math.quantile", monitoring.StatusSuccess, d)

	// Expose for scraping
	handler := promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})
*/
package monitoring
