package partition

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

func TestKeyFromTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want Key
	}{
		{
			"utc midnight",
			time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Key{2024, 1, 2},
		},
		{
			"intra day",
			time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			Key{2024, 12, 31},
		},
		{
			"non-utc normalized to utc day",
			time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)),
			Key{2024, 1, 1}, // 00:00 UTC
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromTime(tt.in))
		})
	}
}

func TestKeyDirAndPath(t *testing.T) {
	k := Key{Year: 2024, Month: 1, Day: 2}
	assert.Equal(t, "year=2024/month=1/day=2", k.Dir())
	assert.Equal(t,
		filepath.Join("/data", "prices", "year=2024", "month=1", "day=2", "0.parquet"),
		k.FilePath("/data", "prices"),
	)
}

func TestParseDir(t *testing.T) {
	k, ok := ParseDir("year=2024/month=1/day=2")
	require.True(t, ok)
	assert.Equal(t, Key{2024, 1, 2}, k)

	for _, bad := range []string{
		"year=2024/month=1",
		"y=2024/month=1/day=2",
		"year=x/month=1/day=2",
		"",
	} {
		_, ok := ParseDir(bad)
		assert.False(t, ok, bad)
	}
}

func TestKeyCompare(t *testing.T) {
	assert.Negative(t, Key{2023, 12, 31}.Compare(Key{2024, 1, 1}))
	assert.Positive(t, Key{2024, 2, 1}.Compare(Key{2024, 1, 31}))
	assert.Zero(t, Key{2024, 1, 1}.Compare(Key{2024, 1, 1}))
}

func TestGroupByDay(t *testing.T) {
	s := schema.TablePrices.Schema()

	day1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	bar := func(sym string, ts time.Time, close float64) record.Record {
		return record.Record{
			"symbol":    record.String(sym),
			"timestamp": record.Time(ts),
			"close":     record.Float(close),
		}
	}

	groups := GroupByDay(s, []record.Record{
		bar("AAPL", day2, 1),
		bar("AAPL", day1, 2),
		bar("MSFT", day2, 3),
		bar("AAPL", day2, 4), // duplicate key of first row, later in batch
	})

	require.Len(t, groups, 2)

	// Groups are sorted chronologically.
	assert.Equal(t, Key{2024, 1, 1}, groups[0].Key)
	assert.Equal(t, Key{2024, 1, 2}, groups[1].Key)

	// Relative order within a group is stable: the duplicate AAPL row stays
	// after the first one, so last-write-wins is deterministic.
	require.Len(t, groups[1].Records, 3)
	first, _ := groups[1].Records[0]["close"].AsFloat64()
	last, _ := groups[1].Records[2]["close"].AsFloat64()
	assert.Equal(t, 1.0, first)
	assert.Equal(t, 4.0, last)
}
