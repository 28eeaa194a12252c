// Package planetable implements the compiler's plane registry (C2): a
// canonicalised, deduplicated table of planes shared across the whole
// compilation.
//
// The table hands out even indices; the antiparallel plane always lives at
// index^1. Lookups are content-addressed by a hash bucket keyed on the
// quantised normal and distance, following the same "RWMutex-guarded map"
// discipline the corpus uses for other shared, process-wide tables — a
// writer lock is taken only on insert, readers take a read lock, so
// FindOrInsert stays cheap when cross-entity compilation is parallelised
// (spec §5 explicitly allows that once the registry is populated).
package planetable
