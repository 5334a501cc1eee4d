package record

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindTime represents a timestamp value with microsecond precision.
	KindTime
	// KindArray represents an array value. Arrays only appear as filter
	// operands (OpIn); they are not a column type.
	KindArray
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindTime:
		return "Time"
	case KindArray:
		return "Array"
	default:
		return "Invalid"
	}
}

// Value is a small typed value used for records and filters.
//
// The representation is designed to make filtering and key extraction fast
// and predictable: no reflection and no fmt-based stringification.
// Timestamps are normalized to UTC microseconds at construction time, which
// is also the precision persisted to disk.
type Value struct {
	Kind Kind
	I64  int64 // KindInt and KindTime (microseconds since epoch, UTC)
	F64  float64
	s    unique.Handle[string] // interned string, KindString only
	B    bool
	A    []Value
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Time returns a timestamp Value, truncated to microseconds in UTC.
func Time(v time.Time) Value { return Value{Kind: KindTime, I64: v.UTC().UnixMicro()} }

// TimeMicros returns a timestamp Value from raw UTC microseconds since epoch.
func TimeMicros(us int64) Value { return Value{Kind: KindTime, I64: us} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// StringValue returns the string value if Kind is KindString, otherwise "".
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// AsInt64 returns the int64 value if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the float64 value if Kind is KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	if v.Kind != KindFloat {
		return 0, false
	}
	return v.F64, true
}

// AsString returns the string value if Kind is KindString.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindString {
		return "", false
	}
	return v.s.Value(), true
}

// AsBool returns the boolean value if Kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsTime returns the timestamp value if Kind is KindTime.
func (v Value) AsTime() (time.Time, bool) {
	if v.Kind != KindTime {
		return time.Time{}, false
	}
	return time.UnixMicro(v.I64).UTC(), true
}

// AsArray returns the array value if Kind is KindArray.
func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != KindArray {
		return nil, false
	}
	return v.A, true
}

// Key returns a stable string representation for use in maps.
//
// It is the identity used for key-column deduplication during upserts and
// must remain stable across versions.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindTime:
		return "t:" + strconv.FormatInt(v.I64, 10)
	case KindArray:
		if len(v.A) == 0 {
			return "a:"
		}
		parts := make([]string, len(v.A))
		for i := range v.A {
			parts[i] = v.A[i].Key()
		}
		return "a:" + strings.Join(parts, "\x1f")
	default:
		return "invalid"
	}
}

// Record is a typed row keyed by column name.
type Record map[string]Value

// Clone creates a copy of the record.
//
// This is the safe default to prevent external mutation after Upsert().
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	clone := make(Record, len(r))
	for k, v := range r {
		clone[k] = v
	}
	return clone
}
