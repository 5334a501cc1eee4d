package partition

import (
	"github.com/parquet-go/parquet-go"

	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// partitionDerivedColumns are surfaced by hive-style dataset writers in other
// ecosystems. They are never written by this store and always stripped on
// read in case a partition file predates it.
var partitionDerivedColumns = map[string]struct{}{
	"year":  {},
	"month": {},
	"day":   {},
}

// leaf maps one parquet leaf column to its table column.
type leaf struct {
	name     string
	typ      schema.ColumnType
	index    int
	optional bool
}

// parquetSchema builds the parquet schema for a table.
//
// Strings declared as dictionary columns get RLE-dictionary encoding; the
// partition column is required, everything else optional. Note that parquet
// groups order fields by name, so leaf indexes follow lexicographic column
// order, not schema declaration order.
func parquetSchema(s *schema.Schema) (*parquet.Schema, []leaf) {
	group := parquet.Group{}
	for _, c := range s.Columns {
		var node parquet.Node
		switch c.Type {
		case schema.TypeString:
			node = parquet.String()
		case schema.TypeFloat:
			node = parquet.Leaf(parquet.DoubleType)
		case schema.TypeInt:
			node = parquet.Int(64)
		case schema.TypeBool:
			node = parquet.Leaf(parquet.BooleanType)
		case schema.TypeTime:
			node = parquet.Timestamp(parquet.Microsecond)
		}
		if c.Dict {
			node = parquet.Encoded(node, &parquet.RLEDictionary)
		}
		if c.Name != s.PartitionColumn {
			node = parquet.Optional(node)
		}
		group[c.Name] = node
	}

	ps := parquet.NewSchema(s.Name, group)
	return ps, schemaLeaves(ps, s)
}

// schemaLeaves resolves the leaf columns of a parquet schema against the
// table schema. Fields without a table column (e.g. partition-derived
// year/month/day) map to no leaf and are skipped during decoding.
func schemaLeaves(ps *parquet.Schema, s *schema.Schema) []leaf {
	fields := ps.Fields()
	leaves := make([]leaf, 0, len(fields))
	for i, f := range fields {
		col, ok := s.Column(f.Name())
		if !ok {
			continue
		}
		leaves = append(leaves, leaf{
			name:     col.Name,
			typ:      col.Type,
			index:    i,
			optional: col.Name != s.PartitionColumn,
		})
	}
	return leaves
}

// encodeRow converts a record into a parquet row in leaf column order.
// Missing and null columns are written as nulls.
func encodeRow(leaves []leaf, totalColumns int, rec record.Record) parquet.Row {
	row := make(parquet.Row, totalColumns)
	for i := range row {
		row[i] = parquet.NullValue().Level(0, 0, i)
	}

	for _, l := range leaves {
		v, ok := rec[l.name]
		if !ok || v.IsNull() {
			continue
		}

		var pv parquet.Value
		switch l.typ {
		case schema.TypeString:
			pv = parquet.ByteArrayValue([]byte(v.StringValue()))
		case schema.TypeFloat:
			if i, ok := v.AsInt64(); ok {
				pv = parquet.DoubleValue(float64(i))
			} else {
				pv = parquet.DoubleValue(v.F64)
			}
		case schema.TypeInt:
			pv = parquet.Int64Value(v.I64)
		case schema.TypeBool:
			pv = parquet.BooleanValue(v.B)
		case schema.TypeTime:
			pv = parquet.Int64Value(v.I64)
		default:
			continue
		}

		def := 0
		if l.optional {
			def = 1
		}
		row[l.index] = pv.Level(0, def, l.index)
	}
	return row
}

// decodeRow converts a parquet row back into a record. Null values are
// omitted from the result, mirroring how absent columns were written.
func decodeRow(byIndex map[int]leaf, prow parquet.Row) record.Record {
	rec := make(record.Record, len(prow))
	for _, pv := range prow {
		l, ok := byIndex[pv.Column()]
		if !ok || pv.IsNull() {
			continue
		}

		switch l.typ {
		case schema.TypeString:
			rec[l.name] = record.String(string(pv.ByteArray()))
		case schema.TypeFloat:
			rec[l.name] = record.Float(pv.Double())
		case schema.TypeInt:
			rec[l.name] = record.Int(pv.Int64())
		case schema.TypeBool:
			rec[l.name] = record.Bool(pv.Boolean())
		case schema.TypeTime:
			rec[l.name] = record.TimeMicros(pv.Int64())
		}
	}
	return rec
}
