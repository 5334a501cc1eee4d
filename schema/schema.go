package schema

import (
	"fmt"
	"strings"

	"github.com/hupe1980/parquetdb/record"
)

// ColumnType defines the semantic type of a table column.
type ColumnType uint8

const (
	// TypeString is a UTF-8 string column.
	TypeString ColumnType = iota
	// TypeFloat is a 64-bit floating point column.
	TypeFloat
	// TypeInt is a 64-bit integer column.
	TypeInt
	// TypeBool is a boolean column.
	TypeBool
	// TypeTime is a microsecond-precision timestamp column.
	TypeTime
)

// String returns the string representation of the ColumnType.
func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeInt:
		return "Int"
	case TypeBool:
		return "Bool"
	case TypeTime:
		return "Time"
	default:
		return "Unknown"
	}
}

// Column is a single typed column of a table schema.
type Column struct {
	Name string
	Type ColumnType
	// Dict marks the column for dictionary encoding (low-cardinality
	// identifiers such as symbol, currency, frequency).
	Dict bool
}

// Schema is the fixed, immutable definition of one table.
//
// Schemas are known at build time; there is no runtime schema evolution.
type Schema struct {
	Table   Table
	Name    string
	Columns []Column // ordered
	// KeyColumns uniquely identify a logical record within a partition and
	// drive last-write-wins deduplication during upserts.
	KeyColumns []string
	// PartitionColumn names the TypeTime column whose calendar day selects
	// the partition. It doubles as the primary time column for range reads.
	PartitionColumn string
}

// Column returns the column definition for name.
func (s *Schema) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the ordered column names.
func (s *Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// MismatchError reports a record that does not conform to its table's
// fixed schema. There is no automatic coercion or migration path.
type MismatchError struct {
	Table  string
	Column string
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("schema mismatch in table %q, column %q: %s", e.Table, e.Column, e.Reason)
}

// MissingPartitionColumnError reports an upsert payload that lacks a usable
// value for the table's designated partition-timestamp column. It fails the
// whole call before any I/O.
type MissingPartitionColumnError struct {
	Table  string
	Column string
}

func (e *MissingPartitionColumnError) Error() string {
	return fmt.Sprintf("table %q requires a non-null partition column %q", e.Table, e.Column)
}

// Validate checks that rec conforms to the schema.
//
// Unknown columns and wrong-typed values are mismatch errors. Null values are
// accepted for every column except the partition column, which is checked by
// ValidatePartitionColumn.
func (s *Schema) Validate(rec record.Record) error {
	for name, v := range rec {
		col, ok := s.Column(name)
		if !ok {
			return &MismatchError{Table: s.Name, Column: name, Reason: "unknown column"}
		}
		if v.IsNull() {
			continue
		}
		if !kindMatches(v.Kind, col.Type) {
			return &MismatchError{
				Table:  s.Name,
				Column: name,
				Reason: fmt.Sprintf("value kind %s does not match column type %s", v.Kind, col.Type),
			}
		}
	}
	return nil
}

// ValidatePartitionColumn checks that rec carries a non-null timestamp in the
// partition column.
func (s *Schema) ValidatePartitionColumn(rec record.Record) error {
	v, ok := rec[s.PartitionColumn]
	if !ok || v.IsNull() {
		return &MissingPartitionColumnError{Table: s.Name, Column: s.PartitionColumn}
	}
	if v.Kind != record.KindTime {
		return &MismatchError{
			Table:  s.Name,
			Column: s.PartitionColumn,
			Reason: fmt.Sprintf("partition column must be a timestamp, got %s", v.Kind),
		}
	}
	return nil
}

// Key returns the deduplication identity of rec: the stable concatenation of
// its key column values. Missing key columns contribute a null component.
func (s *Schema) Key(rec record.Record) string {
	parts := make([]string, len(s.KeyColumns))
	for i, name := range s.KeyColumns {
		v, ok := rec[name]
		if !ok {
			v = record.Null()
		}
		parts[i] = v.Key()
	}
	return strings.Join(parts, "\x1f")
}

func kindMatches(k record.Kind, t ColumnType) bool {
	switch t {
	case TypeString:
		return k == record.KindString
	case TypeFloat:
		return k == record.KindFloat || k == record.KindInt // allow upgrading Int to Float
	case TypeInt:
		return k == record.KindInt
	case TypeBool:
		return k == record.KindBool
	case TypeTime:
		return k == record.KindTime
	}
	return false
}
