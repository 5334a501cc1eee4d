// Package testutil provides deterministic fixture generators for tests.
package testutil
