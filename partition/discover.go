package partition

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hupe1980/parquetdb/internal/fs"
)

// List discovers all partitions of a table on disk, sorted chronologically.
//
// A missing table directory yields an empty list, not an error: a table that
// was never written simply has no partitions yet.
func List(fsys fs.FileSystem, root, table string) ([]Key, error) {
	tableDir := filepath.Join(root, table)

	years, err := fsys.ReadDir(tableDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list partitions of %s: %w", table, err)
	}

	var keys []Key
	for _, ye := range years {
		y, ok := parseEntry(ye, "year=")
		if !ok {
			continue
		}
		months, err := fsys.ReadDir(filepath.Join(tableDir, ye.Name()))
		if err != nil {
			return nil, fmt.Errorf("list partitions of %s: %w", table, err)
		}
		for _, me := range months {
			m, ok := parseEntry(me, "month=")
			if !ok {
				continue
			}
			days, err := fsys.ReadDir(filepath.Join(tableDir, ye.Name(), me.Name()))
			if err != nil {
				return nil, fmt.Errorf("list partitions of %s: %w", table, err)
			}
			for _, de := range days {
				d, ok := parseEntry(de, "day=")
				if !ok {
					continue
				}
				key := Key{Year: y, Month: m, Day: d}
				if Exists(fsys, root, table, key) {
					keys = append(keys, key)
				}
			}
		}
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i].Compare(keys[j]) < 0 })
	return keys, nil
}

func parseEntry(e os.DirEntry, prefix string) (int, bool) {
	if !e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
		return 0, false
	}
	n, ok := parseSegment(e.Name(), prefix)
	return n, ok
}
