// Package resource implements the two things srv can serve: a directory
// tree with categorised listings, and a single fixed text payload.
package resource

import (
	"context"
	"io"
)

// Kind tells which branch of a resource produced a Response.
type Kind int

const (
	KindDirectory Kind = iota
	KindFile
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindFile:
		return "file"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Response is the result of handling one request path. The caller must
// close Body.
type Response struct {
	Kind        Kind
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

// Resource answers a request path. Implementations hold only immutable
// state and are safe for concurrent use.
type Resource interface {
	Handle(ctx context.Context, requestPath string) (*Response, error)
}
