// Package config handles configuration loading, parsing, and validation
// from a YAML file and MEMORY_* environment variables. It provides type-safe
// access to application settings needed by different components while keeping
// configuration details separate from game logic.
package config
