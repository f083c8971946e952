// Package config loads, normalizes, and validates moviescout configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a working-directory .env file, and
// honours environment fallbacks such as TMDB_API_KEY and OPENROUTER_API_KEY.
// The Config type centralizes the catalog, language-model, and logging knobs
// the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// trimmed credentials, canonical provider names, and clear validation errors.
package config
