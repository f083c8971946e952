// Package genres memoizes the catalog's genre name/id mapping for the
// lifetime of the process.
//
// The Cache loads the list lazily on first use. Concurrent first callers share
// a single fetch; once loaded the Catalog is immutable and can be read from any
// goroutine without locking. Failed loads are not remembered, so a later call
// retries the fetch.
package genres
