//go:build release

package log

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/mzilenas/hundview/config"
)

func TestLogDir(t *testing.T) {
	dir, err := logDir()
	if err != nil {
		t.Fatalf("logDir returned error: %v", err)
	}

	want := config.LogSubDir
	if runtime.GOOS == "windows" {
		want = config.LogWinSubDir
	}
	if filepath.Base(dir) != want {
		t.Errorf("Expected log dir to end in %q, got %q", want, dir)
	}
}

func TestReleaseLogging(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	Printf("test printf %d", 7)
	Debug("hidden debug")

	if !strings.Contains(buf.String(), "test printf 7") {
		t.Errorf("Expected log to contain printf output, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "log_release_test.go") {
		t.Errorf("Expected caller file in log line, got %q", buf.String())
	}
	if strings.Contains(buf.String(), "hidden debug") {
		t.Errorf("Debug output must be dropped in release builds, got %q", buf.String())
	}
}
