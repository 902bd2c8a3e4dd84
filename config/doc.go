// Package config loads application configuration from an optional
// config.yml, environment variables and built-in defaults, in increasing
// order of precedence.
package config
