// Package services defines shared utilities consumed by the recommendation
// pipeline and its external integrations.
//
// Key responsibilities:
//   - Context helpers that stamp pipeline stages and correlation identifiers
//     for logging.
//   - Structured error markers plus the Wrap helper that classify failures as
//     recoverable (degrade and continue) or fatal (abort before the pipeline
//     starts).
//
// Use these helpers when wiring new pipeline logic so degradation behaviour
// and observability stay uniform across the catalog, interpreter, and
// discovery components.
package services
