// Package document persists named JSON documents, such as the site settings
// and the gallery, through a pluggable Backend.
//
// A Store owns one document. Every operation ensures the document exists,
// seeding it on first access, and serialises read-modify-write cycles so that
// concurrent updates within one process are never lost.
package document
