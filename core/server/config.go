package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// APIPrefix is the route group the bird endpoints are mounted under.
	APIPrefix string `mapstructure:"api_prefix" default:"/api"`
	// FrontendAddress is the origin allowed by CORS. Empty allows any origin.
	FrontendAddress string `mapstructure:"frontend_address" default:""`
}

// Prefix returns APIPrefix with a leading slash and no trailing slash.
// An empty prefix mounts the routes at the root.
func (c Config) Prefix() string {
	p := strings.Trim(c.APIPrefix, "/ ")
	if p == "" {
		return ""
	}
	return "/" + p
}

// AllowOrigins returns the CORS origin list for the frontend.
func (c Config) AllowOrigins() string {
	if c.FrontendAddress == "" {
		return "*"
	}
	return c.FrontendAddress
}
