package parquetdb

import (
	"github.com/hupe1980/parquetdb/internal/fs"
)

type options struct {
	logger          *Logger
	metrics         MetricsCollector
	fsys            fs.FileSystem
	readConcurrency int
}

// Option configures Store constructor behavior.
type Option func(*options)

// WithLogger configures the logger used by the store.
//
// If nil is passed, the default text logger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NewLogger(nil)
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithFileSystem overrides the file system implementation.
//
// This exists for tests (fault injection); production code should keep the
// default local file system.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys == nil {
			fsys = fs.Default
		}
		o.fsys = fsys
	}
}

// WithReadConcurrency bounds how many partition files a read loads in
// parallel. Values below 1 reset to the default.
func WithReadConcurrency(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = defaultReadConcurrency
		}
		o.readConcurrency = n
	}
}

const defaultReadConcurrency = 4

func defaultOptions() options {
	return options{
		logger:          NewLogger(nil),
		metrics:         NoopMetricsCollector{},
		fsys:            fs.Default,
		readConcurrency: defaultReadConcurrency,
	}
}
