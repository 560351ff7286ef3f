package srv

import (
	"fmt"
	"runtime"
	"time"
)

// Set with -ldflags "-X github.com/jackfish212/srv.version=...".
var (
	version   = "dev"
	buildDate = ""
	gitCommit = ""
)

type VersionInfo struct {
	Version   string
	BuildDate string
	GitCommit string
	GoVersion string
	Platform  string
}

func GetVersionInfo() VersionInfo {
	bd := buildDate
	if bd == "" {
		bd = time.Now().Format("2006-01-02")
	}
	return VersionInfo{
		Version:   version,
		BuildDate: bd,
		GitCommit: gitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the --version output, e.g.
// "srv dev (1a2b3c4d) go1.24.3 linux/amd64 2026-10-19".
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	if commit != "" {
		commit = " (" + commit + ")"
	}
	return fmt.Sprintf("srv %s%s %s %s %s",
		v.Version, commit, v.GoVersion, v.Platform, v.BuildDate)
}
