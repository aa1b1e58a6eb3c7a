// Package config loads and validates application configuration from
// environment variables and optional config files, with environment
// variables taking precedence.
package config
