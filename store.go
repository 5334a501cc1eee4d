package parquetdb

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/hupe1980/parquetdb/partition"
	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// Store is the single entry point to the partitioned columnar store.
//
// A Store is safe for concurrent use: writers touching the same
// (table, day) partition are serialized on a per-partition mutex, and every
// partition rewrite is a write-temp-then-rename, so concurrent upserts cannot
// silently lose each other's rows. The store holds no long-lived file handles
// between calls.
type Store struct {
	root string
	opts options

	mu     sync.Mutex
	closed bool
	locks  map[string]*sync.Mutex // "<table>/<partition dir>" -> writer lock
}

// Open creates a Store rooted at the given directory, creating it if needed.
//
// The root is explicit configuration; there is no process-wide default.
func Open(root string, optFns ...Option) (*Store, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := opts.fsys.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("create store root: %w", err)
	}

	return &Store{
		root:  root,
		opts:  opts,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Close marks the store closed. Subsequent operations return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Upsert merges a batch of records into the table.
//
// The batch is validated whole before any I/O: a schema mismatch or a
// missing/null partition timestamp on any row fails the entire call with no
// partial writes. Advisory validators run after validation; their failures
// are logged and counted but never block persistence.
//
// Counts are batch-granular per partition, not per key: a partition group
// written to a fresh partition counts entirely as inserted, and a group
// merged into an existing partition counts entirely as updated, even if it
// contains brand-new keys. This granularity is a documented limitation of
// the contract, not a bug.
func (s *Store) Upsert(ctx context.Context, table schema.Table, recs []record.Record) (inserted, updated int, err error) {
	start := time.Now()
	defer func() {
		s.opts.metrics.RecordUpsert(table.String(), len(recs), time.Since(start), err)
		s.opts.logger.LogUpsert(ctx, table.String(), inserted, updated, err)
	}()

	if err = s.checkOpen(); err != nil {
		return 0, 0, err
	}

	sch := table.Schema()
	if sch == nil {
		return 0, 0, fmt.Errorf("%w: table id %d", ErrUnknownTable, table)
	}
	if len(recs) == 0 {
		return 0, 0, nil
	}

	// Fail fast for the whole batch before any file access.
	for i, rec := range recs {
		if err = sch.ValidatePartitionColumn(rec); err != nil {
			return 0, 0, fmt.Errorf("row %d: %w", i, err)
		}
		if err = sch.Validate(rec); err != nil {
			return 0, 0, fmt.Errorf("row %d: %w", i, err)
		}
	}

	if validate := table.Validator(); validate != nil {
		for i, rec := range recs {
			if verr := validate(rec); verr != nil {
				s.opts.logger.LogValidation(ctx, sch.Name, i, verr)
				s.opts.metrics.RecordValidationFailure(sch.Name)
			}
		}
	}

	for _, group := range partition.GroupByDay(sch, recs) {
		if err = ctx.Err(); err != nil {
			return inserted, updated, err
		}

		ins, upd, gerr := s.upsertGroup(sch, group)
		if gerr != nil {
			err = fmt.Errorf("partition %s: %w", group.Key.Dir(), gerr)
			return inserted, updated, err
		}
		inserted += ins
		updated += upd
	}
	return inserted, updated, nil
}

// upsertGroup merges one partition group under the partition's writer lock.
func (s *Store) upsertGroup(sch *schema.Schema, group partition.Group) (int, int, error) {
	lock := s.partitionLock(sch.Name, group.Key)
	lock.Lock()
	defer lock.Unlock()

	if !partition.Exists(s.opts.fsys, s.root, sch.Name, group.Key) {
		if err := partition.Write(s.opts.fsys, s.root, sch, group.Key, group.Records); err != nil {
			return 0, 0, err
		}
		return len(group.Records), 0, nil
	}

	existing, err := partition.Read(s.opts.fsys, s.root, sch, group.Key)
	if err != nil {
		return 0, 0, err
	}

	merged := mergeRecords(sch, existing, group.Records)
	if err := partition.Write(s.opts.fsys, s.root, sch, group.Key, merged); err != nil {
		return 0, 0, err
	}
	return 0, len(group.Records), nil
}

// mergeRecords concatenates existing and incoming rows and deduplicates by
// the table's key columns, keeping the last occurrence: new rows replace old
// rows entirely, and among duplicate new rows the later one in the batch
// wins. First-seen key order is preserved.
func mergeRecords(sch *schema.Schema, existing, incoming []record.Record) []record.Record {
	out := make([]record.Record, 0, len(existing)+len(incoming))
	pos := make(map[string]int, len(existing)+len(incoming))

	for _, recs := range [][]record.Record{existing, incoming} {
		for _, rec := range recs {
			k := sch.Key(rec)
			if i, ok := pos[k]; ok {
				out[i] = rec
				continue
			}
			pos[k] = len(out)
			out = append(out, rec)
		}
	}
	return out
}

func (s *Store) partitionLock(table string, key partition.Key) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := table + "/" + key.Dir()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *Store) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Tables returns the names of tables with at least one partition on disk,
// in declaration order.
func (s *Store) Tables() ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	var names []string
	for _, t := range schema.All() {
		keys, err := partition.List(s.opts.fsys, s.root, t.String())
		if err != nil {
			return nil, err
		}
		if len(keys) > 0 {
			names = append(names, t.String())
		}
	}
	return names, nil
}

// Partitions returns the sorted partition directories of a table, e.g.
// "year=2024/month=1/day=2". Unknown tables return ErrUnknownTable.
func (s *Store) Partitions(name string) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	if _, ok := schema.Lookup(name); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	keys, err := partition.List(s.opts.fsys, s.root, name)
	if err != nil {
		return nil, err
	}
	dirs := make([]string, len(keys))
	for i, k := range keys {
		dirs[i] = k.Dir()
	}
	return dirs, nil
}

// GetSchema returns the fixed schema for a table name, or nil if unknown.
func (s *Store) GetSchema(name string) *schema.Schema {
	t, ok := schema.Lookup(name)
	if !ok {
		return nil
	}
	return t.Schema()
}

// TableExists reports whether the table's directory exists on disk. It
// preserves the distinction between "table never written" and "query matched
// no rows", both of which read as empty.
func (s *Store) TableExists(table schema.Table) bool {
	_, err := s.opts.fsys.Stat(filepath.Join(s.root, table.String()))
	return err == nil
}
