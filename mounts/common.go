// Package mounts provides the host-backed Provider implementations used by
// srv.
package mounts

import (
	"path"
	"strings"
)

// normPath strips leading and trailing slashes from a request path.
func normPath(p string) string {
	return strings.Trim(p, "/")
}

// virtualPath returns the cleaned slash path of p relative to the served
// root, "" for the root itself. p must already be known to be local.
func virtualPath(p string) string {
	p = path.Clean("/" + normPath(p))
	return strings.TrimPrefix(p, "/")
}

// joinPath joins a directory's virtual path with a child name.
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}
