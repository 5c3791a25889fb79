// Package config loads, validates, and normalizes clipforge configuration
// from TOML. All path fields are expanded to absolute paths during load.
package config
