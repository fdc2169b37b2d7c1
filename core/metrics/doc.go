// Package metrics exposes Prometheus metrics for the API.
//
// A Metrics value owns its own registry, so tests can create as many as they like
// without colliding on the global default registry. All recording methods are
// safe on a nil *Metrics, which lets features run without metrics wired in.
//
// # Collectors
//
//   - http_requests_total / http_request_duration_seconds: per route template
//   - birdherd_images_served_total: images returned, labelled by query
//   - birdherd_images_excluded_total: images newly marked as bad
//   - birdherd_store_errors_total: failed catalog operations
package metrics
