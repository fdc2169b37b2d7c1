// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - RequestLog: Logs the start of every request and any handler error with the
//     RayID attached.
//
// CORS is provided by Fiber's own middleware and configured in cmd/start.go from
// the server configuration. Request metrics live in core/metrics.
package middleware
