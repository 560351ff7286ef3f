//go:build unix

package srv

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServeUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	root := setupServedDir(t)
	locked := filepath.Join(root, "locked")
	os.Mkdir(locked, 0755)
	os.WriteFile(filepath.Join(locked, "f.txt"), []byte("f"), 0644)
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	s := newTestServer(t, DirMode{Root: root})
	logs := captureLog(t)

	for _, target := range []string{"/locked/", "/locked/f.txt"} {
		rec := do(t, s, http.MethodGet, target)
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("GET %s = %d, want 500", target, rec.Code)
		}
		if strings.Contains(rec.Body.String(), root) {
			t.Errorf("GET %s error page exposes the served root", target)
		}
	}
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("500 not logged at error level:\n%s", logs.String())
	}

	// The rest of the tree is unaffected.
	if rec := do(t, s, http.MethodGet, "/"); rec.Code != http.StatusOK {
		t.Errorf("GET / = %d, want 200", rec.Code)
	}
}
