// Package config loads, validates, and defaults the lineuplens TOML
// configuration file.
package config
