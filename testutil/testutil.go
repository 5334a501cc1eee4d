package testutil

import (
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/parquetdb/record"
)

// RNG encapsulates a seeded random number generator for deterministic test
// fixtures. It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64In returns a pseudo-random float64 in [minVal, maxVal).
func (r *RNG) Float64In(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Int63n returns a non-negative pseudo-random number in [0, n).
func (r *RNG) Int63n(n int64) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63n(n)
}

// PriceBar generates a plausible OHLCV price bar record.
func (r *RNG) PriceBar(symbol string, ts time.Time) record.Record {
	open := r.Float64In(50, 500)
	close := open * r.Float64In(0.95, 1.05)
	high := max(open, close) * r.Float64In(1.0, 1.02)
	low := min(open, close) * r.Float64In(0.98, 1.0)

	return record.Record{
		"symbol":    record.String(symbol),
		"timestamp": record.Time(ts),
		"open":      record.Float(open),
		"high":      record.Float(high),
		"low":       record.Float(low),
		"close":     record.Float(close),
		"volume":    record.Int(r.Int63n(10_000_000)),
		"currency":  record.String("USD"),
		"frequency": record.String("1d"),
	}
}

// Indicator generates a technical indicator record with an in-range RSI.
func (r *RNG) Indicator(symbol, frequency string, ts time.Time) record.Record {
	return record.Record{
		"symbol":    record.String(symbol),
		"frequency": record.String(frequency),
		"timestamp": record.Time(ts),
		"rsi":       record.Float(r.Float64In(0, 100)),
		"macd":      record.Float(r.Float64In(-5, 5)),
		"sma_20":    record.Float(r.Float64In(50, 500)),
	}
}

// FXRate generates an FX rate record.
func (r *RNG) FXRate(base, quote string, ts time.Time) record.Record {
	return record.Record{
		"base_currency":  record.String(base),
		"quote_currency": record.String(quote),
		"timestamp":      record.Time(ts),
		"rate":           record.Float(r.Float64In(0.5, 2.0)),
	}
}
