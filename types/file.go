package types

import "io"

// File is an open file. It always supports Read and Close; Seek can be
// discovered via type assertion.
type File interface {
	io.ReadCloser
	Stat() (*Entry, error)
	Name() string
}

type seekableFile struct {
	io.ReadCloser
	seeker io.Seeker
	name   string
	entry  *Entry
}

// NewSeekableFile creates a File that supports Seek.
func NewSeekableFile(name string, entry *Entry, rc io.ReadCloser, seeker io.Seeker) File {
	return &seekableFile{ReadCloser: rc, seeker: seeker, name: name, entry: entry}
}

func (f *seekableFile) Stat() (*Entry, error)                        { return f.entry, nil }
func (f *seekableFile) Name() string                                 { return f.name }
func (f *seekableFile) Seek(offset int64, whence int) (int64, error) { return f.seeker.Seek(offset, whence) }
