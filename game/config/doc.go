// Package config handles loading and caching of game configurations.
//
// Configurations are JSON files in a configuration directory, one ruleset per
// file. The Manager caches parsed configurations, serves a default ruleset
// (classic.json when present, the first valid file otherwise, or the built-in
// classic pair as a last resort), and validates everything it loads or saves.
package config
