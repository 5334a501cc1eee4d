package parquetdb

import (
	"context"

	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// Per-table upsert methods. Each fails with a
// *schema.MissingPartitionColumnError naming the table's designated
// timestamp column when it is absent from the payload.

// UpsertPrices merges OHLCV price bars, keyed by (symbol, timestamp).
func (s *Store) UpsertPrices(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TablePrices, recs)
}

// UpsertFXRates merges FX rates, keyed by (base_currency, quote_currency, timestamp).
func (s *Store) UpsertFXRates(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TableFXRates, recs)
}

// UpsertPnLSnapshots merges P&L snapshots, keyed by (symbol, as_of) and
// partitioned on as_of.
func (s *Store) UpsertPnLSnapshots(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TablePnLSnapshots, recs)
}

// UpsertIndicators merges technical indicators, keyed by
// (symbol, frequency, timestamp).
func (s *Store) UpsertIndicators(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TableIndicators, recs)
}

// UpsertFundamentals merges fundamental ratios, keyed by (symbol, timestamp).
func (s *Store) UpsertFundamentals(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TableFundamentals, recs)
}

// UpsertFilingItems merges structured filing line items, keyed by
// (ticker, accession_number).
func (s *Store) UpsertFilingItems(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TableFilingItems, recs)
}

// UpsertFilingMeta merges filing metadata, keyed by
// (ticker, accession_number) and partitioned on filed_at.
func (s *Store) UpsertFilingMeta(ctx context.Context, recs []record.Record) (int, int, error) {
	return s.Upsert(ctx, schema.TableFilingMeta, recs)
}
