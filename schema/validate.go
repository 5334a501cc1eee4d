package schema

import (
	"fmt"

	"github.com/hupe1980/parquetdb/record"
)

// RowValidator checks semantic plausibility of a single record.
//
// Validators are advisory: the store logs failures and persists the record
// anyway. They exist to surface bad upstream data (a negative close price, an
// RSI outside its defined range) without blocking ingestion.
type RowValidator func(rec record.Record) error

// Validator returns the advisory validator for the table, or nil.
func (t Table) Validator() RowValidator {
	switch t {
	case TablePrices:
		return validatePriceBar
	case TableFXRates:
		return validateFXRate
	case TableIndicators:
		return validateIndicators
	case TablePnLSnapshots, TableFundamentals, TableFilingItems, TableFilingMeta:
		return nil
	default:
		return nil
	}
}

func validatePriceBar(rec record.Record) error {
	for _, col := range []string{"open", "high", "low", "close"} {
		if f, ok := asNumber(rec[col]); ok && f <= 0 {
			return fmt.Errorf("price column %q must be positive, got %v", col, f)
		}
	}
	if v, ok := rec["volume"].AsInt64(); ok && v < 0 {
		return fmt.Errorf("volume must not be negative, got %d", v)
	}
	return nil
}

func validateFXRate(rec record.Record) error {
	if f, ok := asNumber(rec["rate"]); ok && f <= 0 {
		return fmt.Errorf("rate must be positive, got %v", f)
	}
	return nil
}

func validateIndicators(rec record.Record) error {
	if f, ok := asNumber(rec["rsi"]); ok && (f < 0 || f > 100) {
		return fmt.Errorf("rsi must be within [0, 100], got %v", f)
	}
	return nil
}

func asNumber(v record.Value) (float64, bool) {
	if f, ok := v.AsFloat64(); ok {
		return f, true
	}
	if i, ok := v.AsInt64(); ok {
		return float64(i), true
	}
	return 0, false
}
