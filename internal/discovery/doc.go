// Package discovery runs a single catalog search for a movie.FilterSet.
//
// Engine.Discover resolves genre names through the genre cache, sends the set
// filters as TMDB discover parameters, fetches up to MaxPages pages in order,
// then applies the year and genre post-filters and ranks the survivors by
// popularity. Unset filters are never sent. Provider failures degrade: a
// failed page keeps the pages already fetched, and an unavailable genre catalog
// behaves as an empty one, so a genre request matches nothing. An empty
// ResultList is a normal outcome.
package discovery
