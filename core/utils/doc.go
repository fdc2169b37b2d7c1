// Package utils provides common helpers for the bird-herd application.
// It holds the request normalization the API surface applies before anything
// reaches the bird catalog: region codes and programmatic bird names.
package utils
