// Package store keeps a local SQLite history of transcribed words for
// the --history listing.
package store
