// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the settings it needs: the listening port, the route prefix the bird
// endpoints live under, and the frontend origin allowed by CORS.
package server
