// Package mongo implements the store interfaces against a MongoDB
// collection. Documents are keyed by the item id, ids are stored as their
// canonical string form and timestamps as RFC 3339 strings carrying an
// explicit offset, so any other reader of the collection parses them
// unambiguously regardless of language.
package mongo
