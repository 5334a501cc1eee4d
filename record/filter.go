package record

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpIn represents the in list operator.
	OpIn Operator = "in"
)

// Filter represents a single column filter condition.
type Filter struct {
	Column   string
	Operator Operator
	Value    Value
}

// Eq returns an equality filter.
func Eq(column string, v Value) Filter { return Filter{Column: column, Operator: OpEqual, Value: v} }

// Ne returns an inequality filter.
func Ne(column string, v Value) Filter {
	return Filter{Column: column, Operator: OpNotEqual, Value: v}
}

// Gt returns a greater-than filter.
func Gt(column string, v Value) Filter {
	return Filter{Column: column, Operator: OpGreaterThan, Value: v}
}

// Gte returns a greater-or-equal filter.
func Gte(column string, v Value) Filter {
	return Filter{Column: column, Operator: OpGreaterEqual, Value: v}
}

// Lt returns a less-than filter.
func Lt(column string, v Value) Filter {
	return Filter{Column: column, Operator: OpLessThan, Value: v}
}

// Lte returns a less-or-equal filter.
func Lte(column string, v Value) Filter {
	return Filter{Column: column, Operator: OpLessEqual, Value: v}
}

// In returns a set-membership filter.
func In(column string, vs ...Value) Filter {
	return Filter{Column: column, Operator: OpIn, Value: Array(vs)}
}

// FilterSet represents a set of filters that must all match (AND logic).
type FilterSet struct {
	Filters []Filter
}

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// Matches checks if the provided record matches all filters in the set.
func (fs *FilterSet) Matches(rec Record) bool {
	if fs == nil {
		return true
	}
	for _, filter := range fs.Filters {
		if !filter.Matches(rec) {
			return false
		}
	}
	return true
}

// Matches checks if the provided record matches this filter.
//
// A missing column never matches.
func (f Filter) Matches(rec Record) bool {
	value, exists := rec[f.Column]
	if !exists {
		return false
	}

	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value)
	case OpNotEqual:
		return !compareEqual(value, f.Value)
	case OpGreaterThan:
		return compareGreater(value, f.Value)
	case OpGreaterEqual:
		return compareGreater(value, f.Value) || compareEqual(value, f.Value)
	case OpLessThan:
		return compareLess(value, f.Value)
	case OpLessEqual:
		return compareLess(value, f.Value) || compareEqual(value, f.Value)
	case OpIn:
		return compareIn(value, f.Value)
	default:
		return false
	}
}

func compareEqual(a, b Value) bool {
	if a.Kind == KindNull && b.Kind == KindNull {
		return true
	}
	if a.Kind == KindNull || b.Kind == KindNull {
		return false
	}

	if isNumber(a) && isNumber(b) {
		// Prefer exact int compare when possible.
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		return asFloat64(a) == asFloat64(b)
	}

	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	case KindTime:
		return a.I64 == b.I64
	case KindArray:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !compareEqual(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func compareGreater(a, b Value) bool {
	if a.Kind == KindTime && b.Kind == KindTime {
		return a.I64 > b.I64
	}
	if a.Kind == KindString && b.Kind == KindString {
		return a.s.Value() > b.s.Value()
	}
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) > asFloat64(b)
}

func compareLess(a, b Value) bool {
	if a.Kind == KindTime && b.Kind == KindTime {
		return a.I64 < b.I64
	}
	if a.Kind == KindString && b.Kind == KindString {
		return a.s.Value() < b.s.Value()
	}
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) < asFloat64(b)
}

func compareIn(a, b Value) bool {
	if b.Kind != KindArray {
		return false
	}
	for _, item := range b.A {
		if compareEqual(a, item) {
			return true
		}
	}
	return false
}

func isNumber(v Value) bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

func asFloat64(v Value) float64 {
	if v.Kind == KindInt {
		return float64(v.I64)
	}
	return v.F64
}
