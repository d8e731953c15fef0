// Package config loads, normalizes, and validates chksum configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours XDG environment fallbacks for
// cache placement. Always obtain settings through this package so
// downstream code receives sanitized paths and clear validation errors.
package config
