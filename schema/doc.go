// Package schema defines the fixed table schemas of the store.
//
// The seven tables form a closed set ([Table]) matched exhaustively: a new
// table cannot be added without also defining its columns, key columns,
// partition column and validator. Schemas are immutable and known at build
// time; there is no runtime schema evolution.
package schema
