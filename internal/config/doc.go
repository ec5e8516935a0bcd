// Package config loads, normalizes, and validates Marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and selects the catalog endpoint from the
// deployment mode. The Config type centralizes every knob the CLI needs so
// the catalog base URL, session path, and history database are discovered in
// one pass and injected explicitly rather than read from ambient state.
package config
