package parquetdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/parquetdb/partition"
	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

type readOptions struct {
	columns []string
	filters *record.FilterSet
	start   time.Time
	end     time.Time
}

// ReadOption configures a read operation.
type ReadOption func(*readOptions)

// WithColumns projects the result onto exactly the given columns.
func WithColumns(columns ...string) ReadOption {
	return func(o *readOptions) {
		o.columns = columns
	}
}

// WithFilters restricts the result to rows matching all filters (AND logic).
func WithFilters(filters ...record.Filter) ReadOption {
	return func(o *readOptions) {
		o.filters = record.NewFilterSet(filters...)
	}
}

// WithTimeRange restricts the result to rows whose partition timestamp lies
// within [start, end], inclusive. A zero bound is unbounded on that side.
// Partitions whose calendar day falls entirely outside the range are pruned
// before any file is opened.
func WithTimeRange(start, end time.Time) ReadOption {
	return func(o *readOptions) {
		o.start = start
		o.end = end
	}
}

// Read loads a table across all its partitions, applying partition pruning,
// row filters, an inclusive time range and column projection.
//
// A table that was never written returns an empty result, not an error.
// Partition files are loaded concurrently (bounded by WithReadConcurrency)
// and assembled in ascending partition order, so the result is deterministic.
func (s *Store) Read(ctx context.Context, table schema.Table, optFns ...ReadOption) (recs []record.Record, err error) {
	start := time.Now()
	defer func() {
		s.opts.metrics.RecordRead(table.String(), len(recs), time.Since(start), err)
	}()

	if err = s.checkOpen(); err != nil {
		return nil, err
	}

	sch := table.Schema()
	if sch == nil {
		return nil, fmt.Errorf("%w: table id %d", ErrUnknownTable, table)
	}

	var opts readOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	keys, err := partition.List(s.opts.fsys, s.root, sch.Name)
	if err != nil {
		return nil, err
	}
	keys = pruneKeys(keys, opts.start, opts.end)

	results := make([][]record.Record, len(keys))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.readConcurrency)

	for i, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := partition.Read(s.opts.fsys, s.root, sch, key)
			if err != nil {
				// A partition deleted between listing and reading is absence,
				// not failure.
				if errors.Is(err, partition.ErrNotFound) {
					return nil
				}
				return err
			}
			results[i] = filterRows(sch, rows, &opts)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		s.opts.logger.LogRead(ctx, sch.Name, len(keys), 0, err)
		return nil, err
	}

	recs = make([]record.Record, 0)
	for _, part := range results {
		recs = append(recs, part...)
	}
	s.opts.logger.LogRead(ctx, sch.Name, len(keys), len(recs), nil)
	return recs, nil
}

// ReadTable is the name-based convenience variant of Read.
//
// Reads are total: a name that resolves to no table behaves like a table
// that was never written and yields an empty result, not an error.
func (s *Store) ReadTable(ctx context.Context, name string, optFns ...ReadOption) ([]record.Record, error) {
	t, ok := schema.Lookup(name)
	if !ok {
		s.opts.logger.DebugContext(ctx, "read of unknown table", "table", name)
		return []record.Record{}, nil
	}
	return s.Read(ctx, t, optFns...)
}

// pruneKeys drops partitions whose calendar day lies strictly outside the
// inclusive [start, end] range.
func pruneKeys(keys []partition.Key, start, end time.Time) []partition.Key {
	if start.IsZero() && end.IsZero() {
		return keys
	}
	pruned := keys[:0]
	for _, k := range keys {
		day := k.Date()
		if !start.IsZero() && day.Before(partition.KeyFromTime(start).Date()) {
			continue
		}
		if !end.IsZero() && day.After(partition.KeyFromTime(end).Date()) {
			continue
		}
		pruned = append(pruned, k)
	}
	return pruned
}

// filterRows applies the time range, row filters and projection to one
// partition's rows.
func filterRows(sch *schema.Schema, rows []record.Record, opts *readOptions) []record.Record {
	out := rows[:0]
	for _, rec := range rows {
		if !inTimeRange(rec, sch.PartitionColumn, opts.start, opts.end) {
			continue
		}
		if !opts.filters.Matches(rec) {
			continue
		}
		if len(opts.columns) > 0 {
			rec = project(rec, opts.columns)
		}
		out = append(out, rec)
	}
	return out
}

func inTimeRange(rec record.Record, column string, start, end time.Time) bool {
	if start.IsZero() && end.IsZero() {
		return true
	}
	ts, ok := rec[column].AsTime()
	if !ok {
		return false
	}
	if !start.IsZero() && ts.Before(start) {
		return false
	}
	if !end.IsZero() && ts.After(end) {
		return false
	}
	return true
}

// project restricts a record to exactly the requested columns. Columns the
// record does not carry stay absent.
func project(rec record.Record, columns []string) record.Record {
	out := make(record.Record, len(columns))
	for _, c := range columns {
		if v, ok := rec[c]; ok {
			out[c] = v
		}
	}
	return out
}
