// Package preflight provides readiness checks for the external services and
// paths moviescout depends on.
//
// The CLI "moviescout status" command runs RunAll and renders one line per
// check. Each check is gated by configuration: the language model check is
// skipped when no API key is configured, and the log directory is only
// checked when logging.file is set.
package preflight
