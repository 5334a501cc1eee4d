package partition

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/hupe1980/parquetdb/internal/fs"
	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// ErrNotFound is returned by Read when the partition's data file does not
// exist. Callers treat absence as an empty result, never as a failure.
var ErrNotFound = os.ErrNotExist

// Read loads the partition's data file fully into memory.
//
// Columns that have no counterpart in the table schema (in particular the
// partition-derived year/month/day columns some dataset writers surface) are
// stripped from the result.
func Read(fsys fs.FileSystem, root string, s *schema.Schema, key Key) ([]record.Record, error) {
	f, err := fsys.OpenFile(key.FilePath(root, s.Name), os.O_RDONLY, 0)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("open partition file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat partition file: %w", err)
	}

	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}

	byIndex := make(map[int]leaf)
	for _, l := range schemaLeaves(pf.Schema(), s) {
		byIndex[l.index] = l
	}

	var recs []record.Record
	buf := make([]parquet.Row, 256)

	for _, rg := range pf.RowGroups() {
		rows := rg.Rows()
		for {
			n, err := rows.ReadRows(buf)
			for _, prow := range buf[:n] {
				recs = append(recs, decodeRow(byIndex, prow))
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				rows.Close()
				return nil, fmt.Errorf("read partition rows: %w", err)
			}
			if n == 0 {
				break
			}
		}
		if err := rows.Close(); err != nil {
			return nil, fmt.Errorf("close partition rows: %w", err)
		}
	}
	return recs, nil
}

// Exists reports whether the partition's data file is present on disk.
func Exists(fsys fs.FileSystem, root, table string, key Key) bool {
	_, err := fsys.Stat(key.FilePath(root, table))
	return err == nil
}
