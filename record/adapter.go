package record

import (
	"fmt"
	"math"
	"time"
)

// FromAny converts a Go value into a typed Value.
//
// This exists as an adapter layer for callers that assemble rows as
// map[string]any (e.g. JSON ingestion paths).
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Int(int64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		if x > uint64(math.MaxInt64) {
			return Value{}, fmt.Errorf("record uint64 out of range: %d", x)
		}
		return Int(int64(x)), nil
	case time.Time:
		return Time(x), nil
	case []Value:
		return Array(x), nil
	case []any:
		arr := make([]Value, len(x))
		for i := range x {
			vv, err := FromAny(x[i])
			if err != nil {
				return Value{}, err
			}
			arr[i] = vv
		}
		return Array(arr), nil
	case []string:
		arr := make([]Value, len(x))
		for i := range x {
			arr[i] = String(x[i])
		}
		return Array(arr), nil
	default:
		return Value{}, fmt.Errorf("unsupported record value type %T", v)
	}
}

// RecordFromAny converts a map[string]any row to a typed Record.
func RecordFromAny(m map[string]any) (Record, error) {
	r := make(Record, len(m))
	for k, v := range m {
		vv, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", k, err)
		}
		r[k] = vv
	}
	return r, nil
}

// RecordsFromAny converts a slice of map[string]any rows to typed Records.
func RecordsFromAny(rows []map[string]any) ([]Record, error) {
	recs := make([]Record, len(rows))
	for i := range rows {
		r, err := RecordFromAny(rows[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		recs[i] = r
	}
	return recs, nil
}
