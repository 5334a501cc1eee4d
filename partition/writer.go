package partition

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/hupe1980/parquetdb/internal/fs"
	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// Write rewrites the partition's data file with the given records.
//
// The file is written whole: snappy-compressed parquet with dictionary
// encoding on the table's declared dictionary columns and microsecond
// timestamps. Writes go to a temp file in the partition directory, are
// fsynced and then renamed over the data file, so a failure mid-write leaves
// the previous partition contents intact.
func Write(fsys fs.FileSystem, root string, s *schema.Schema, key Key, recs []record.Record) error {
	dir := key.Path(root, s.Name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create partition dir: %w", err)
	}

	tmpPath := filepath.Join(dir, DataFileName+".tmp")
	f, err := fsys.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("create partition temp file: %w", err)
	}

	cleanup := func(err error) error {
		f.Close()
		fsys.Remove(tmpPath)
		return err
	}

	ps, leaves := parquetSchema(s)
	// Rows are written through the low-level row API; the map type parameter
	// only satisfies the generic writer's dynamic schema mode.
	w := parquet.NewGenericWriter[map[string]any](f, ps, parquet.Compression(&parquet.Snappy))

	rows := make([]parquet.Row, len(recs))
	for i, rec := range recs {
		rows[i] = encodeRow(leaves, len(ps.Fields()), rec)
	}

	if _, err := w.WriteRows(rows); err != nil {
		return cleanup(fmt.Errorf("write partition rows: %w", err))
	}
	if err := w.Close(); err != nil {
		return cleanup(fmt.Errorf("finalize partition file: %w", err))
	}
	if err := f.Sync(); err != nil {
		return cleanup(fmt.Errorf("sync partition file: %w", err))
	}
	if err := f.Close(); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("close partition file: %w", err)
	}

	if err := fsys.Rename(tmpPath, filepath.Join(dir, DataFileName)); err != nil {
		fsys.Remove(tmpPath)
		return fmt.Errorf("publish partition file: %w", err)
	}
	return nil
}
