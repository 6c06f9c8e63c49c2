//go:build unix

// Package mmfile maps image files into memory so that metadata can be read and wiped in place.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

var (
	ErrEmptyFile   = errors.New("mmfile: empty file")
	ErrNotWritable = errors.New("mmfile: mapping is read-only")
	ErrClosed      = errors.New("mmfile: file closed")
)

// File is a memory-mapped file
type File struct {
	path     string
	file     *os.File
	data     []byte
	writable bool
}

// Open maps the whole of the file at path
//
// when writable is true the mapping is shared, writes to Data are carried through to the file
func Open(path string, writable bool) (*File, error) {
	flag, prot := os.O_RDONLY, unix.PROT_READ
	if writable {
		flag, prot = os.O_RDWR, unix.PROT_READ|unix.PROT_WRITE
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.Size() == 0 {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyFile)
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), prot, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to mmap %s: %w", path, err)
	}
	return &File{
		path:     path,
		file:     f,
		data:     data,
		writable: writable,
	}, nil
}

// Path returns the path the file was opened with
func (m *File) Path() string {
	return m.path
}

// Data returns the mapped bytes
func (m *File) Data() []byte {
	return m.data
}

// Writable reports whether the mapping was opened for writing
func (m *File) Writable() bool {
	return m.writable
}

// Sync flushes changes made to Data back to the file
func (m *File) Sync() error {
	if m.data == nil {
		return ErrClosed
	}
	if !m.writable {
		return ErrNotWritable
	}
	if err := unix.Msync(m.data, unix.MS_SYNC); err != nil {
		return fmt.Errorf("failed to sync %s: %w", m.path, err)
	}
	return nil
}

// Close unmaps and closes the file. Changes are not flushed - call Sync first
func (m *File) Close() error {
	if m.data == nil {
		return ErrClosed
	}
	err := unix.Munmap(m.data)
	m.data = nil
	if err != nil {
		_ = m.file.Close()
		return fmt.Errorf("failed to unmap %s: %w", m.path, err)
	}
	return m.file.Close()
}
