package mounts

import (
	"context"
	"errors"
	"fmt"
	"os"
	stdpath "path"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/jackfish212/srv/types"
)

var (
	_ types.Provider          = (*LocalFS)(nil)
	_ types.Readable          = (*LocalFS)(nil)
	_ types.MountInfoProvider = (*LocalFS)(nil)
)

// LocalFS exposes a host directory read-only. Every path is confined to the
// directory: lexical escapes and symlinks that resolve outside it fail with
// types.ErrForbidden. Paths are resolved to their symlink-free form first
// and then opened through an os.Root handle, so a symlink swapped in after
// the check cannot be followed out of the tree.
type LocalFS struct {
	root   string // absolute, symlink-free
	handle *os.Root
}

// NewLocalFS opens dir as a served root.
func NewLocalFS(dir string) (*LocalFS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", types.ErrNotFound, dir)
		}
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", types.ErrNotDir, dir)
	}
	handle, err := os.OpenRoot(resolved)
	if err != nil {
		return nil, err
	}
	return &LocalFS{root: resolved, handle: handle}, nil
}

// Root returns the canonical host path of the served directory.
func (fs *LocalFS) Root() string { return fs.root }

// Close releases the root handle.
func (fs *LocalFS) Close() error { return fs.handle.Close() }

// resolve maps a request path to a path relative to the root handle,
// "." for the root itself.
func (fs *LocalFS) resolve(path string) (string, error) {
	if strings.IndexByte(path, 0) >= 0 {
		return "", fmt.Errorf("%w: %q", types.ErrForbidden, path)
	}
	rel := normPath(path)
	if rel == "" {
		return ".", nil
	}
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return "", fmt.Errorf("%w: %s", types.ErrForbidden, path)
	}

	resolved, err := filepath.EvalSymlinks(filepath.Join(fs.root, local))
	if err != nil {
		return "", fs.unresolved(path, local, err)
	}
	inner, err := filepath.Rel(fs.root, resolved)
	if err != nil || (inner != "." && !filepath.IsLocal(inner)) {
		return "", fmt.Errorf("%w: %s", types.ErrForbidden, path)
	}
	return inner, nil
}

// unresolved classifies a path whose symlinks could not be evaluated.
// os.Root refuses an escaping link before it looks at the target, so an
// escape is ErrForbidden whether or not the target exists.
func (fs *LocalFS) unresolved(path, local string, err error) error {
	if !isNotExist(err) {
		return err
	}
	if _, rerr := fs.handle.Stat(local); rerr != nil && !isNotExist(rerr) {
		return fmt.Errorf("%w: %s", types.ErrForbidden, path)
	}
	return fmt.Errorf("%w: %s", types.ErrNotFound, path)
}

func (fs *LocalFS) wrapErr(path string, err error) error {
	if isNotExist(err) {
		return fmt.Errorf("%w: %s", types.ErrNotFound, path)
	}
	return err
}

func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func (fs *LocalFS) Stat(_ context.Context, path string) (*types.Entry, error) {
	inner, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	info, err := fs.handle.Stat(inner)
	if err != nil {
		return nil, fs.wrapErr(path, err)
	}
	return fs.infoToEntry(virtualPath(path), info), nil
}

// List returns the immediate children of a directory in directory order.
// Symlinked children are described by their target when it stays inside
// the root, and by the link itself otherwise.
func (fs *LocalFS) List(_ context.Context, path string) ([]types.Entry, error) {
	inner, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	dir, err := fs.handle.Open(inner)
	if err != nil {
		return nil, fs.wrapErr(path, err)
	}
	defer dir.Close()

	info, err := dir.Stat()
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", types.ErrNotDir, path)
	}

	dirEntries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	vp := virtualPath(path)
	entries := make([]types.Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, fs.childEntry(joinPath(vp, de.Name()), de))
	}
	return entries, nil
}

// childEntry describes one directory child. A child that vanished after
// the directory was read keeps its name and type bits.
func (fs *LocalFS) childEntry(childPath string, de os.DirEntry) types.Entry {
	info, err := de.Info()
	if err != nil {
		return types.Entry{Name: de.Name(), Path: childPath, IsDir: de.IsDir()}
	}
	if de.Type()&os.ModeSymlink != 0 {
		if target, err := fs.resolve(childPath); err == nil {
			if ti, err := fs.handle.Stat(target); err == nil {
				info = ti
			}
		}
	}
	return *fs.infoToEntry(childPath, info)
}

func (fs *LocalFS) Open(_ context.Context, path string) (types.File, error) {
	inner, err := fs.resolve(path)
	if err != nil {
		return nil, err
	}
	// Stat before opening: opening a FIFO for reading blocks.
	info, err := fs.handle.Stat(inner)
	if err != nil {
		return nil, fs.wrapErr(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", types.ErrIsDir, path)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", types.ErrIrregular, path)
	}

	f, err := fs.handle.Open(inner)
	if err != nil {
		return nil, fs.wrapErr(path, err)
	}
	info, err = f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("%w: %s", types.ErrIrregular, path)
	}
	vp := virtualPath(path)
	return types.NewSeekableFile(vp, fs.infoToEntry(vp, info), f, f), nil
}

func (fs *LocalFS) infoToEntry(vp string, info os.FileInfo) *types.Entry {
	name := stdpath.Base(vp)
	if vp == "" {
		name = filepath.Base(fs.root)
	}
	e := &types.Entry{Name: name, Path: vp, IsDir: info.IsDir(), Modified: info.ModTime()}
	if !e.IsDir {
		e.Size = info.Size()
	}
	return e
}

func (fs *LocalFS) MountInfo() (string, string) { return "localfs", fs.root }
