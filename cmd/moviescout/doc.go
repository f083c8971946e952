// Package main hosts the moviescout CLI entrypoint and command graph.
//
// The Cobra command tree collects manual filters and an optional free-text
// request, hands them to the interpreter and fallback controller, and renders
// the resulting movies as a table or JSON. Configuration resolution, logger
// construction, and client wiring live in commandContext so subcommands only
// deal with presentation.
package main
