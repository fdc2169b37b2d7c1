// Package health exposes liveness and readiness probes, mounted under the API prefix.
//
//   - GET /health : always {"status":"ok"} while the process serves requests.
//   - GET /health/ready : pings the catalog database, 503 when it is unreachable.
package health
