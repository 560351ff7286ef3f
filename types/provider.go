// Package types defines the core interfaces and types shared by the srv
// packages. It is intentionally kept minimal with no external dependencies.
package types

import "context"

// Provider is the minimal interface for a served tree. It supports
// navigation (Stat + List). Paths are slash-separated and relative to the
// served root.
//
// Additional capabilities are expressed as optional interfaces that a
// Provider may also implement:
//   - Readable: open files for reading
//   - MountInfoProvider: describe the backing store
//
// Callers detect these capabilities at runtime via type assertion.
type Provider interface {
	Stat(ctx context.Context, path string) (*Entry, error)
	List(ctx context.Context, path string) ([]Entry, error)
}

// Readable is implemented by providers that support reading file content.
type Readable interface {
	Open(ctx context.Context, path string) (File, error)
}

// MountInfoProvider is implemented by providers that can describe themselves.
type MountInfoProvider interface {
	MountInfo() (name, extra string)
}
