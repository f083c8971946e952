// Package movie holds the value types shared by the recommendation pipeline:
// the FilterSet that describes a request, the Movie records returned by the
// catalog, and the ResultList ranking.
//
// Optional filter fields are pointers. A nil field means "no constraint" and
// must never be turned into a zero value when talking to the catalog; use the
// helpers in this package (Float, Int, String) to set them.
package movie
