package partition

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hupe1980/parquetdb/record"
	"github.com/hupe1980/parquetdb/schema"
)

// DataFileName is the single data file inside a partition directory.
const DataFileName = "0.parquet"

// Key identifies one calendar-day partition of a table.
type Key struct {
	Year  int
	Month int
	Day   int
}

// KeyFromTime derives the partition key from a timestamp (UTC calendar day).
func KeyFromTime(t time.Time) Key {
	t = t.UTC()
	return Key{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Dir returns the hive-style relative directory, e.g. "year=2024/month=1/day=2".
func (k Key) Dir() string {
	return fmt.Sprintf("year=%d/month=%d/day=%d", k.Year, k.Month, k.Day)
}

// Path returns the absolute partition directory for a table under root.
func (k Key) Path(root, table string) string {
	return filepath.Join(root, table,
		fmt.Sprintf("year=%d", k.Year),
		fmt.Sprintf("month=%d", k.Month),
		fmt.Sprintf("day=%d", k.Day),
	)
}

// FilePath returns the absolute path of the partition's data file.
func (k Key) FilePath(root, table string) string {
	return filepath.Join(k.Path(root, table), DataFileName)
}

// Date returns midnight UTC of the partition's day.
func (k Key) Date() time.Time {
	return time.Date(k.Year, time.Month(k.Month), k.Day, 0, 0, 0, 0, time.UTC)
}

// Compare orders keys chronologically.
func (k Key) Compare(other Key) int {
	if k.Year != other.Year {
		return k.Year - other.Year
	}
	if k.Month != other.Month {
		return k.Month - other.Month
	}
	return k.Day - other.Day
}

// ParseDir parses a "year=Y/month=M/day=D" string back into a Key.
func ParseDir(dir string) (Key, bool) {
	parts := strings.Split(dir, "/")
	if len(parts) != 3 {
		return Key{}, false
	}
	y, ok1 := parseSegment(parts[0], "year=")
	m, ok2 := parseSegment(parts[1], "month=")
	d, ok3 := parseSegment(parts[2], "day=")
	if !ok1 || !ok2 || !ok3 {
		return Key{}, false
	}
	return Key{Year: y, Month: m, Day: d}, true
}

func parseSegment(s, prefix string) (int, bool) {
	if !strings.HasPrefix(s, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(s[len(prefix):])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Group is one partition's slice of an incoming batch. Records preserve
// their relative batch order, which makes last-write-wins deterministic for
// duplicate keys within a single call.
type Group struct {
	Key     Key
	Records []record.Record
}

// GroupByDay splits a batch into per-partition groups, sorted chronologically.
//
// Every record must carry a non-null timestamp in the schema's partition
// column; the caller validates this before any grouping or I/O happens.
func GroupByDay(s *schema.Schema, recs []record.Record) []Group {
	index := make(map[Key]int)
	groups := make([]Group, 0, 1)

	for _, rec := range recs {
		ts, _ := rec[s.PartitionColumn].AsTime()
		k := KeyFromTime(ts)

		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group{Key: k})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Key.Compare(groups[j].Key) < 0
	})
	return groups
}
