// Package config provides configuration management for the Bird Herd API.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded with godotenv).
//
// # Configuration Structure
//
// The Config struct is the single place all settings live. It is built once at
// process start and handed to the components that need it:
//   - Server: HTTP port, API prefix and the frontend origin allowed by CORS
//   - Database: driver (postgres, mysql, sqlite), connection details and timeouts
//   - Storage: S3/MinIO bucket holding the bird images (integrity checks only)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
