package resource

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"

	"github.com/jackfish212/srv/listing"
	"github.com/jackfish212/srv/types"
)

// DefaultContentType is used for files whose extension has no known type.
const DefaultContentType = "application/octet-stream"

var _ Resource = (*FileServer)(nil)

// FileServer serves a Provider tree: directories are rendered by a
// listing.Lister, files are streamed. Confinement to the served root is
// the provider's job; FileServer passes its errors through untouched.
type FileServer struct {
	fs     types.Provider
	lister *listing.Lister
}

func NewFileServer(fs types.Provider, lister *listing.Lister) *FileServer {
	return &FileServer{fs: fs, lister: lister}
}

func (s *FileServer) Handle(ctx context.Context, requestPath string) (*Response, error) {
	entry, err := s.fs.Stat(ctx, requestPath)
	if err != nil {
		return nil, err
	}

	if entry.IsDir {
		body, err := s.lister.Render(ctx, requestPath)
		if err != nil {
			return nil, err
		}
		return &Response{
			Kind:        KindDirectory,
			ContentType: listing.ContentType,
			Size:        int64(len(body)),
			Body:        io.NopCloser(bytes.NewReader(body)),
		}, nil
	}

	r, ok := s.fs.(types.Readable)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrIrregular, requestPath)
	}
	f, err := r.Open(ctx, requestPath)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Response{
		Kind:        KindFile,
		ContentType: ContentTypeOf(*info),
		Size:        info.Size,
		Body:        f,
	}, nil
}

// ContentTypeOf looks up the media type of a file by its extension.
func ContentTypeOf(e types.Entry) string {
	if ext := e.Ext(); ext != "" {
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
	}
	return DefaultContentType
}
