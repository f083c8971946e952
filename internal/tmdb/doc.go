// Package tmdb provides the minimal TMDB API client used by movie discovery.
//
// It authenticates requests and exposes the movie genre listing and single
// pages of the discover endpoint. Callers build the discover filter
// parameters themselves; the client only adds credentials, language, and the
// page number. Options allow tests to supply custom HTTP clients without
// modifying production code.
package tmdb
