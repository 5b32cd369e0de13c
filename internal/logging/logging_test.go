package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitDirWritesToFile(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir, slog.LevelInfo)
	if err != nil {
		t.Fatalf("InitDir() failed: %v", err)
	}

	slog.Debug("hidden below level")
	slog.Warn("corrupt payload", "key", "tasks")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "lanes.log"))
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "corrupt payload") || !strings.Contains(out, "key=tasks") {
		t.Errorf("log missing warning record: %q", out)
	}
	if strings.Contains(out, "hidden below level") {
		t.Errorf("debug record should be filtered: %q", out)
	}
}
