package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "year=2024", "month=1", "day=2")
	assert.NoError(t, lfs.MkdirAll(dir, 0755))

	fpath := filepath.Join(dir, "0.parquet")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.NoError(t, f.Close())

	entries, err := lfs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	newPath := fpath + ".renamed"
	assert.NoError(t, lfs.Rename(fpath, newPath))

	assert.NoError(t, lfs.Remove(newPath))
	_, err = lfs.Stat(newPath)
	assert.True(t, os.IsNotExist(err))
}

func TestFaultyFS_WriteLimit(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("faulty", Fault{FailAfterBytes: 5})

	fpath := filepath.Join(tmp, "faulty.bin")
	f, err := ffs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)
	defer f.Close()

	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = f.Write([]byte("!"))
	assert.Error(t, err)
	assert.Equal(t, 0, n)
}

func TestFaultyFS_SyncAndClose(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.AddRule(".tmp", Fault{FailAfterBytes: -1, FailOnSync: true, FailOnClose: true})

	f, err := ffs.OpenFile(filepath.Join(tmp, "part.tmp"), os.O_CREATE|os.O_RDWR, 0644)
	require.NoError(t, err)

	_, err = f.Write([]byte("data"))
	assert.NoError(t, err)
	assert.Error(t, f.Sync())
	assert.Error(t, f.Close())
}

func TestFaultyFS_Delegation(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, ffs.MkdirAll(dir, 0755))

	fpath := filepath.Join(dir, "data.bin")
	f, err := ffs.OpenFile(fpath, os.O_CREATE, 0644)
	require.NoError(t, err)
	f.Close()

	assert.NoError(t, ffs.Rename(fpath, fpath+".renamed"))
	_, err = ffs.Stat(fpath + ".renamed")
	assert.NoError(t, err)
	assert.NoError(t, ffs.Remove(fpath+".renamed"))

	entries, err := ffs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
