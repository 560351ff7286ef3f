package types

import (
	"fmt"
	"strings"
	"time"
)

// Entry represents a file or directory below the served root.
type Entry struct {
	Name     string    // base name
	Path     string    // slash-separated path relative to the served root; "" is the root
	IsDir    bool      // true if directory (symlinks are followed)
	Size     int64     // size in bytes (0 for dirs)
	Modified time.Time // last modification time
}

// Ext returns the final suffix of the entry name including the dot.
// Names that only start with a dot (".bashrc") or end with one ("notes.")
// have no extension.
func (e Entry) Ext() string {
	i := strings.LastIndexByte(e.Name, '.')
	if i <= 0 || i == len(e.Name)-1 {
		return ""
	}
	return e.Name[i:]
}

// String returns a formatted ls-style line for this entry.
func (e Entry) String() string {
	if e.IsDir {
		return fmt.Sprintf("d  %s/", e.Name)
	}
	return fmt.Sprintf("-  %s  %d", e.Name, e.Size)
}
