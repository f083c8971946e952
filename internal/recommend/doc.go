// Package recommend drives the fallback relaxation sequence.
//
// The sequence is data: Steps returns the ordered relaxation steps, each a
// pure FilterSet transform plus an applicability check. Controller walks the
// list, calling the discovery engine once per entered stage, and stops at the
// first non-empty result. Relaxations accumulate. Every stage entered is
// announced to an Observer so the caller can show progress.
package recommend
