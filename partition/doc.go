// Package partition implements the physical layer of the store: routing
// records to calendar-day buckets, the hive-style directory layout
// (root/<table>/year=Y/month=M/day=D/0.parquet), and reading and atomically
// rewriting the single parquet file backing each partition.
package partition
