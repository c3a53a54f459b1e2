// Package store defines the persistence interface for extracted text and
// the errors shared by its implementations. The concrete backends live in
// internal/platform (an LRU-bounded in-memory store and a Postgres store);
// callers depend only on the TextStore interface.
package store
