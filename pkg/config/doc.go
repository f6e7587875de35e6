// Package config handles configuration management for expedition.
// It layers the embedded defaults, the user's config file, an explicit
// config file, environment variables and command-line overrides, in that
// order, using koanf.
package config
