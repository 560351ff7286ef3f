package srv

import (
	"io"
	"net/http"

	"github.com/jackfish212/srv/listing"
	"github.com/jackfish212/srv/mounts"
	"github.com/jackfish212/srv/resource"
)

// Mode selects what a Server exposes. It is either a DirMode or a RawMode
// and is fixed for the lifetime of the Server.
type Mode interface {
	open(t listing.Templates) (resource.Resource, io.Closer, error)
	// methods returns the HTTP methods the resource answers; nil means all.
	methods() []string
}

var (
	_ Mode = DirMode{}
	_ Mode = RawMode{}
)

// DirMode serves the directory tree rooted at Root.
type DirMode struct {
	Root string
}

func (m DirMode) open(t listing.Templates) (resource.Resource, io.Closer, error) {
	fs, err := mounts.NewLocalFS(m.Root)
	if err != nil {
		return nil, nil, err
	}
	return resource.NewFileServer(fs, listing.NewLister(fs, t)), fs, nil
}

func (DirMode) methods() []string { return []string{http.MethodGet, http.MethodHead} }

// RawMode answers every request with Text.
type RawMode struct {
	Text string
}

func (m RawMode) open(listing.Templates) (resource.Resource, io.Closer, error) {
	return resource.NewTextPage(m.Text), nil, nil
}

func (RawMode) methods() []string { return nil }
