// Package config handles configuration loading, parsing, and validation
// from defaults, an optional config file and CRM_ prefixed environment
// variables. The values are static for the lifetime of the process.
package config
