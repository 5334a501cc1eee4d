// Package parquetdb provides an embedded, file-based, partitioned columnar
// store for financial time-series.
//
// The store manages a fixed set of tables (price bars, FX rates, P&L
// snapshots, technical indicators, fundamental ratios, filing line items and
// filing metadata), each with an immutable schema. Records are routed into
// calendar-day partitions laid out hive-style on disk:
//
//	root/<table>/year=<Y>/month=<M>/day=<D>/0.parquet
//
// with one snappy-compressed parquet file per partition, dictionary encoding
// on declared low-cardinality columns and microsecond-precision timestamps.
//
// Writes are merge-on-read upserts: the partition's existing contents are
// read, concatenated with the incoming rows, deduplicated by the table's key
// columns (last write wins) and rewritten whole. The rewrite goes to a temp
// file that is atomically renamed over the partition, and writers touching
// the same (table, day) are serialized in-process, so a crash or a concurrent
// upsert cannot corrupt or silently lose a partition.
//
// # Quick start
//
//	ctx := context.Background()
//	store, err := parquetdb.Open("./data")
//	if err != nil {
//	    panic(err)
//	}
//
//	inserted, updated, err := store.UpsertPrices(ctx, []record.Record{{
//	    "symbol":    record.String("AAPL"),
//	    "timestamp": record.Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
//	    "close":     record.Float(100),
//	}})
//
//	rows, err := store.Read(ctx, schema.TablePrices,
//	    parquetdb.WithColumns("symbol", "close"),
//	    parquetdb.WithFilters(record.Eq("symbol", record.String("AAPL"))),
//	    parquetdb.WithTimeRange(start, end),
//	)
//
// Reading a table that was never written returns an empty result, not an
// error; use [Store.TableExists] when the distinction matters.
package parquetdb
