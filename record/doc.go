// Package record provides the typed row model used by the store.
//
// A [Record] is a map of column name to [Value], a small tagged union that
// avoids reflection on the upsert and filter hot paths. [Filter] and
// [FilterSet] implement the simple predicate model (equality, ordering,
// set membership) that reads support.
package record
