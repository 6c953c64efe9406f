// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. The result is a
// single validated Config built once at startup and handed to each component.
package config
