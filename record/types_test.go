package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	i, ok := Int(42).AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	f, ok := Float(1.5).AsFloat64()
	require.True(t, ok)
	assert.Equal(t, 1.5, f)

	s, ok := String("AAPL").AsString()
	require.True(t, ok)
	assert.Equal(t, "AAPL", s)

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	// Wrong-kind accessors fail.
	_, ok = Int(1).AsString()
	assert.False(t, ok)
	_, ok = String("x").AsTime()
	assert.False(t, ok)

	assert.True(t, Null().IsNull())
	assert.False(t, Int(0).IsNull())
}

func TestTimeNormalization(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	local := time.Date(2024, 1, 1, 1, 30, 0, 999, loc) // 999ns truncated

	v := Time(local)
	got, ok := v.AsTime()
	require.True(t, ok)

	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC), got)
}

func TestValueKey_Stability(t *testing.T) {
	ts := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"int", Int(7), "i:7"},
		{"string", String("AAPL"), "s:AAPL"},
		{"bool", Bool(true), "b:1"},
		{"time", Time(ts), "t:" + "1704110400000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Key())
		})
	}

	// Distinct values must have distinct keys.
	assert.NotEqual(t, Int(1).Key(), Float(1).Key())
	assert.NotEqual(t, String("1").Key(), Int(1).Key())
}

func TestRecordClone(t *testing.T) {
	r := Record{"symbol": String("AAPL"), "close": Float(100)}
	c := r.Clone()

	c["close"] = Float(105)
	got, _ := r["close"].AsFloat64()
	assert.Equal(t, 100.0, got)

	assert.Nil(t, Record(nil).Clone())
}

func TestFromAny(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

	rec, err := RecordFromAny(map[string]any{
		"symbol":    "AAPL",
		"close":     105.5,
		"volume":    int64(1000),
		"active":    true,
		"timestamp": ts,
		"note":      nil,
	})
	require.NoError(t, err)

	assert.Equal(t, String("AAPL"), rec["symbol"])
	assert.Equal(t, Float(105.5), rec["close"])
	assert.Equal(t, Int(1000), rec["volume"])
	assert.Equal(t, Bool(true), rec["active"])
	assert.Equal(t, Time(ts), rec["timestamp"])
	assert.True(t, rec["note"].IsNull())

	_, err = FromAny(struct{}{})
	assert.Error(t, err)
}
