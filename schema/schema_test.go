package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/parquetdb/record"
)

func TestLookupRoundTrip(t *testing.T) {
	for _, tbl := range All() {
		got, ok := Lookup(tbl.String())
		require.True(t, ok, tbl.String())
		assert.Equal(t, tbl, got)
	}

	_, ok := Lookup("nonexistent")
	assert.False(t, ok)
}

func TestEveryTableHasConsistentSchema(t *testing.T) {
	for _, tbl := range All() {
		s := tbl.Schema()
		require.NotNil(t, s, tbl.String())
		assert.Equal(t, tbl, s.Table)
		assert.Equal(t, tbl.String(), s.Name)
		require.NotEmpty(t, s.KeyColumns)

		// The partition column must exist and be a timestamp.
		col, ok := s.Column(s.PartitionColumn)
		require.True(t, ok, "%s: partition column %q not in schema", s.Name, s.PartitionColumn)
		assert.Equal(t, TypeTime, col.Type)

		// Key columns must exist.
		for _, k := range s.KeyColumns {
			_, ok := s.Column(k)
			assert.True(t, ok, "%s: key column %q not in schema", s.Name, k)
		}
	}
}

func TestValidate(t *testing.T) {
	s := TablePrices.Schema()
	ts := record.Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	valid := record.Record{
		"symbol":    record.String("AAPL"),
		"timestamp": ts,
		"close":     record.Float(100),
		"volume":    record.Int(1000),
	}
	assert.NoError(t, s.Validate(valid))
	assert.NoError(t, s.ValidatePartitionColumn(valid))

	t.Run("unknown column", func(t *testing.T) {
		err := s.Validate(record.Record{"symbol": record.String("AAPL"), "bogus": record.Int(1)})
		var me *MismatchError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "bogus", me.Column)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := s.Validate(record.Record{"close": record.String("100")})
		var me *MismatchError
		require.ErrorAs(t, err, &me)
		assert.Equal(t, "close", me.Column)
	})

	t.Run("int upgrades to float", func(t *testing.T) {
		assert.NoError(t, s.Validate(record.Record{"close": record.Int(100)}))
	})

	t.Run("null is valid for non-partition columns", func(t *testing.T) {
		assert.NoError(t, s.Validate(record.Record{"close": record.Null()}))
	})

	t.Run("missing partition column", func(t *testing.T) {
		err := s.ValidatePartitionColumn(record.Record{"symbol": record.String("AAPL")})
		var mp *MissingPartitionColumnError
		require.ErrorAs(t, err, &mp)
		assert.Equal(t, "timestamp", mp.Column)
		assert.Equal(t, "prices", mp.Table)
	})

	t.Run("null partition column", func(t *testing.T) {
		err := s.ValidatePartitionColumn(record.Record{"timestamp": record.Null()})
		var mp *MissingPartitionColumnError
		assert.ErrorAs(t, err, &mp)
	})
}

func TestKey(t *testing.T) {
	s := TablePrices.Schema()
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	a := record.Record{"symbol": record.String("AAPL"), "timestamp": record.Time(ts), "close": record.Float(1)}
	b := record.Record{"symbol": record.String("AAPL"), "timestamp": record.Time(ts), "close": record.Float(2)}
	c := record.Record{"symbol": record.String("MSFT"), "timestamp": record.Time(ts)}

	assert.Equal(t, s.Key(a), s.Key(b))
	assert.NotEqual(t, s.Key(a), s.Key(c))

	// A missing key column still yields a stable key.
	d := record.Record{"timestamp": record.Time(ts)}
	assert.Equal(t, s.Key(d), s.Key(record.Record{"timestamp": record.Time(ts)}))
}

func TestAdvisoryValidators(t *testing.T) {
	t.Run("rsi bounds", func(t *testing.T) {
		v := TableIndicators.Validator()
		require.NotNil(t, v)
		assert.NoError(t, v(record.Record{"rsi": record.Float(55)}))
		assert.Error(t, v(record.Record{"rsi": record.Float(101)}))
		assert.Error(t, v(record.Record{"rsi": record.Float(-1)}))
		assert.NoError(t, v(record.Record{"macd": record.Float(0.5)})) // rsi absent
	})

	t.Run("positive prices", func(t *testing.T) {
		v := TablePrices.Validator()
		require.NotNil(t, v)
		assert.NoError(t, v(record.Record{"close": record.Float(100)}))
		assert.Error(t, v(record.Record{"close": record.Float(-1)}))
		assert.Error(t, v(record.Record{"volume": record.Int(-5)}))
	})

	t.Run("positive fx rate", func(t *testing.T) {
		v := TableFXRates.Validator()
		require.NotNil(t, v)
		assert.Error(t, v(record.Record{"rate": record.Float(0)}))
		assert.NoError(t, v(record.Record{"rate": record.Float(1.08)}))
	})

	t.Run("tables without validators", func(t *testing.T) {
		assert.Nil(t, TableFilingMeta.Validator())
		assert.Nil(t, TableFundamentals.Validator())
	})
}
