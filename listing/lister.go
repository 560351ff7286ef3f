package listing

import (
	"context"
	"net/url"
	stdpath "path"
	"strings"

	"github.com/jackfish212/srv/types"
)

// ContentType is the media type of a rendered listing.
const ContentType = "text/html; charset=utf-8"

// Bindings is the data passed to DirectoryTemplate.
type Bindings struct {
	Path       string // "/"-rooted display path with a trailing slash
	Parent     string // URL of the parent directory, "" at the root
	Listing    Listing
	Categories []Category
	FormatSize func(int64) string
	Href       func(types.Entry) string
}

// Lister renders directory listings from a Provider. It keeps no state
// between calls: every Render enumerates the directory again.
type Lister struct {
	fs        types.Provider
	templates Templates
}

func NewLister(fs types.Provider, templates Templates) *Lister {
	return &Lister{fs: fs, templates: templates}
}

// Render lists the immediate children of dir and renders them as HTML.
// Errors from the provider are returned unchanged.
func (l *Lister) Render(ctx context.Context, dir string) ([]byte, error) {
	entries, err := l.fs.List(ctx, dir)
	if err != nil {
		return nil, err
	}

	display := stdpath.Clean("/" + dir)
	parent := ""
	if display != "/" {
		parent = URLPath(stdpath.Dir(display), true)
		display += "/"
	}

	html, err := l.templates.Render(DirectoryTemplate, Bindings{
		Path:       display,
		Parent:     parent,
		Listing:    Build(entries),
		Categories: Categories(),
		FormatSize: func(n int64) string { return FormatSize(float64(n)) },
		Href:       Href,
	})
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// Href returns the root-absolute URL of an entry.
func Href(e types.Entry) string {
	return URLPath(e.Path, e.IsDir)
}

// URLPath escapes each segment of a slash path relative to the served root
// and returns it "/"-rooted, with a trailing slash for directories.
func URLPath(p string, dir bool) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return "/"
	}
	segs := strings.Split(p, "/")
	for i, s := range segs {
		segs[i] = url.PathEscape(s)
	}
	u := "/" + strings.Join(segs, "/")
	if dir {
		u += "/"
	}
	return u
}
