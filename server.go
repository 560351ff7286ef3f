// Package srv serves one directory tree, or one fixed text payload, over
// HTTP.
//
// A Server is built from a Mode: DirMode exposes a directory with
// categorised HTML listings (folders, videos, images, documents, other)
// and streams files below it; RawMode answers every request with the same
// text. Requests that would leave the served directory are refused with
// 403.
package srv

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/jackfish212/srv/listing"
	"github.com/jackfish212/srv/resource"
	"github.com/jackfish212/srv/types"
)

const (
	defaultShutdownTimeout   = 5 * time.Second
	defaultReadHeaderTimeout = 10 * time.Second

	// kindKey holds the resource.Kind of a successful response.
	kindKey = "srv.kind"
)

var errorMessages = map[int]string{
	http.StatusNotFound:            "No such file or directory.",
	http.StatusForbidden:           "Sorry, resource is forbidden.",
	http.StatusMethodNotAllowed:    "This resource does not support that method.",
	http.StatusInternalServerError: "The server could not complete the request.",
}

// Server hosts the resource selected by its Mode on a gin engine.
type Server struct {
	engine    *gin.Engine
	templates listing.Templates
	closer    io.Closer
	shutdown  time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithTemplates replaces the embedded HTML templates.
func WithTemplates(t listing.Templates) Option {
	return func(s *Server) { s.templates = t }
}

// WithShutdownTimeout bounds how long Serve waits for in-flight requests
// once its context is cancelled.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) { s.shutdown = d }
}

// New builds a Server for mode. In DirMode the root directory must exist.
func New(mode Mode, opts ...Option) (*Server, error) {
	s := &Server{shutdown: defaultShutdownTimeout}
	for _, opt := range opts {
		opt(s)
	}
	if s.templates == nil {
		t, err := listing.NewHTMLTemplates()
		if err != nil {
			return nil, err
		}
		s.templates = t
	}

	res, closer, err := mode.open(s.templates)
	if err != nil {
		return nil, err
	}
	s.closer = closer
	if mi, ok := closer.(types.MountInfoProvider); ok {
		name, root := mi.MountInfo()
		slog.Debug("opened served root", "provider", name, "root", root)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true
	engine.Use(accessLog(), gin.Recovery())

	h := s.handle(res)
	if methods := mode.methods(); methods != nil {
		for _, m := range methods {
			engine.Handle(m, "/*path", h)
		}
		allow := strings.Join(methods, ", ")
		engine.NoMethod(func(c *gin.Context) {
			c.Header("Allow", allow)
			s.writeError(c, http.StatusMethodNotAllowed)
		})
	} else {
		engine.Any("/*path", h)
	}
	engine.NoRoute(func(c *gin.Context) {
		s.writeError(c, http.StatusNotFound)
	})

	s.engine = engine
	return s, nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Close releases the served directory.
func (s *Server) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	hs := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
		defer cancel()
		return hs.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (s *Server) handle(res resource.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp, err := res.Handle(c.Request.Context(), c.Request.URL.Path)
		if err != nil {
			_ = c.Error(err)
			s.writeError(c, statusFor(err))
			return
		}
		defer resp.Body.Close()
		c.Set(kindKey, resp.Kind.String())

		c.Header("Content-Type", resp.ContentType)
		c.Header("Content-Length", strconv.FormatInt(resp.Size, 10))
		c.Status(http.StatusOK)
		if c.Request.Method == http.MethodHead {
			return
		}
		if _, err := io.Copy(c.Writer, resp.Body); err != nil {
			_ = c.Error(err)
		}
	}
}

func (s *Server) writeError(c *gin.Context, code int) {
	text := http.StatusText(code)
	page, err := s.templates.Render(listing.ErrorTemplate, listing.ErrorPage{
		Code:    code,
		Text:    text,
		Message: errorMessages[code],
	})
	if err != nil {
		_ = c.Error(err)
		c.String(code, "%d %s\n", code, text)
		c.Abort()
		return
	}
	c.Data(code, listing.ContentType, []byte(page))
	c.Abort()
}

// statusFor maps an error from a resource to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrNotDir):
		return http.StatusNotFound
	case errors.Is(err, types.ErrForbidden), errors.Is(err, types.ErrIrregular):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// accessLog logs one record per request once the handlers have run.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"size", humanize.IBytes(uint64(max(c.Writer.Size(), 0))),
			"elapsed", time.Since(start),
		}
		if kind, ok := c.Get(kindKey); ok {
			attrs = append(attrs, "kind", kind)
		}
		if err := c.Errors.Last(); err != nil {
			attrs = append(attrs, "error", err.Err)
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		slog.Log(c.Request.Context(), level, "request", attrs...)
	}
}
