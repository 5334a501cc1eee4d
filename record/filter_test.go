package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rec := Record{
		"symbol":    String("AAPL"),
		"close":     Float(105.5),
		"volume":    Int(1000),
		"timestamp": Time(ts),
	}

	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"eq string", Eq("symbol", String("AAPL")), true},
		{"eq string miss", Eq("symbol", String("MSFT")), false},
		{"ne", Ne("symbol", String("MSFT")), true},
		{"gt float", Gt("close", Float(100)), true},
		{"gt float miss", Gt("close", Float(200)), false},
		{"gte boundary", Gte("close", Float(105.5)), true},
		{"lt int vs float", Lt("volume", Float(1000.5)), true},
		{"lte boundary", Lte("volume", Int(1000)), true},
		{"in hit", In("symbol", String("MSFT"), String("AAPL")), true},
		{"in miss", In("symbol", String("MSFT"), String("GOOG")), false},
		{"time gt", Gt("timestamp", Time(ts.Add(-time.Hour))), true},
		{"time lt miss", Lt("timestamp", Time(ts)), false},
		{"missing column", Eq("sector", String("tech")), false},
		{"string ordering", Gt("symbol", String("AAA")), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(rec))
		})
	}
}

func TestFilterSetMatches(t *testing.T) {
	rec := Record{"symbol": String("AAPL"), "close": Float(105)}

	fs := NewFilterSet(
		Eq("symbol", String("AAPL")),
		Gt("close", Float(100)),
	)
	assert.True(t, fs.Matches(rec))

	fs = NewFilterSet(
		Eq("symbol", String("AAPL")),
		Gt("close", Float(200)),
	)
	assert.False(t, fs.Matches(rec))

	// Nil and empty filter sets match everything.
	assert.True(t, (*FilterSet)(nil).Matches(rec))
	assert.True(t, NewFilterSet().Matches(rec))
}

func TestCompareEqual_NullSemantics(t *testing.T) {
	assert.True(t, compareEqual(Null(), Null()))
	assert.False(t, compareEqual(Null(), Int(0)))
	assert.False(t, compareEqual(String(""), Null()))
}

func TestCompareNumbers_CrossKind(t *testing.T) {
	assert.True(t, compareEqual(Int(5), Float(5)))
	assert.True(t, compareGreater(Float(5.5), Int(5)))
	assert.True(t, compareLess(Int(4), Float(4.5)))
	assert.False(t, compareGreater(String("5"), Int(4)))
}
