package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version != Version {
		t.Errorf("expected version %q, got %q", Version, info.Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected go version %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.Platform != runtime.GOOS || info.Architecture != runtime.GOARCH {
		t.Errorf("unexpected platform %s/%s", info.Platform, info.Architecture)
	}
}

func TestGetShortVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	defer func() { Version, GitCommit = origVersion, origCommit }()

	Version, GitCommit = "v1.2.0", "unknown"
	if got := GetShortVersion(); got != "v1.2.0" {
		t.Errorf("expected bare version, got %q", got)
	}

	GitCommit = "abcdef1234567890"
	got := GetShortVersion()
	if !strings.Contains(got, "abcdef1") || strings.Contains(got, "abcdef12") {
		t.Errorf("expected 7-char commit in %q", got)
	}
}
