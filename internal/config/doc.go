// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file, environment variables and
// command-line flags.
package config
