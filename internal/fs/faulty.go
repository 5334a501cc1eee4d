package fs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Fault defines specific failure behavior for files matching a pattern.
type Fault struct {
	FailAfterBytes int64 // Fail writes after this many bytes written to this file. -1 to disable.
	FailOnSync     bool
	FailOnClose    bool
	Err            error
}

// FaultyFS is a FileSystem wrapper that can inject errors.
//
// It is used by partition rewrite tests to prove that a failed write leaves
// the previous partition file intact.
type FaultyFS struct {
	FS FileSystem

	mu    sync.Mutex
	rules map[string]Fault // filename substring -> fault
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fsys FileSystem) *FaultyFS {
	if fsys == nil {
		fsys = Default
	}
	return &FaultyFS{
		FS:    fsys,
		rules: make(map[string]Fault),
	}
}

// AddRule adds a fault injection rule for files whose name contains pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if fault.Err == nil {
		fault.Err = fmt.Errorf("injected fault error")
	}
	f.rules[pattern] = fault
}

func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	fault := Fault{FailAfterBytes: -1}
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) {
			fault = rule
		}
	}
	f.mu.Unlock()

	return &faultyFile{File: file, fault: fault}, nil
}

func (f *FaultyFS) Remove(name string) error {
	return f.FS.Remove(name)
}

func (f *FaultyFS) Rename(oldpath, newpath string) error {
	return f.FS.Rename(oldpath, newpath)
}

func (f *FaultyFS) Stat(name string) (os.FileInfo, error) {
	return f.FS.Stat(name)
}

func (f *FaultyFS) MkdirAll(path string, perm os.FileMode) error {
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) {
	return f.FS.ReadDir(name)
}

type faultyFile struct {
	File
	fault   Fault
	written int64
}

func (ff *faultyFile) Write(p []byte) (n int, err error) {
	if ff.fault.FailAfterBytes >= 0 && ff.written+int64(len(p)) > ff.fault.FailAfterBytes {
		return 0, ff.fault.Err
	}
	n, err = ff.File.Write(p)
	if n > 0 {
		ff.written += int64(n)
	}
	return n, err
}

func (ff *faultyFile) Sync() error {
	if ff.fault.FailOnSync {
		return ff.fault.Err
	}
	return ff.File.Sync()
}

func (ff *faultyFile) Close() error {
	if ff.fault.FailOnClose {
		ff.File.Close()
		return ff.fault.Err
	}
	return ff.File.Close()
}
