// Package ident generates identifiers for stored records.
// Identifiers start with the creation time in unix milliseconds, so they sort by
// creation order, followed by a random suffix drawn from crypto/rand that keeps
// two records created within the same millisecond apart.
package ident
