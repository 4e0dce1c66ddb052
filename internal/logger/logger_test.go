package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/graphstack/neo4j-mcp-server/internal/logger"
)

func TestDynamicLogLevelChange(t *testing.T) {
	t.Run("raising verbosity reveals debug logs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New("info", "text", buf)

		log.Debug("debug message")
		log.Info("info message")

		output := buf.String()
		if strings.Contains(output, "debug message") {
			t.Error("Expected debug message to NOT appear at info level")
		}
		if !strings.Contains(output, "info message") {
			t.Error("Expected info message to appear at info level")
		}

		buf.Reset()
		log.SetLevel("debug")
		log.Debug("debug message after change")

		if !strings.Contains(buf.String(), "debug message after change") {
			t.Error("Expected debug message to appear after changing to debug level")
		}
	})

	t.Run("lowering verbosity filters info and debug logs", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New("debug", "text", buf)

		log.SetLevel("error")
		log.Debug("debug suppressed")
		log.Info("info suppressed")
		log.Error("error visible")

		output := buf.String()
		if strings.Contains(output, "debug suppressed") || strings.Contains(output, "info suppressed") {
			t.Error("Expected debug and info messages to NOT appear at error level")
		}
		if !strings.Contains(output, "error visible") {
			t.Error("Expected error message to appear at error level")
		}
	})

	t.Run("level strings are case insensitive", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New("info", "text", buf)

		log.SetLevel("DEBUG")
		log.Debug("uppercase level works")

		if !strings.Contains(buf.String(), "uppercase level works") {
			t.Error("Expected DEBUG (uppercase) to change log level to debug")
		}
	})

	t.Run("every documented level can be set without panicking", func(t *testing.T) {
		for _, lvl := range logger.ValidLogLevels {
			buf := &bytes.Buffer{}
			log := logger.New("debug", "text", buf)
			log.SetLevel(lvl)
			log.Error("probe")
		}
	})
}

func TestCustomLevelNames(t *testing.T) {
	t.Run("notice logs render with the NOTICE label", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New("debug", "json", buf)

		log.Log(context.Background(), logger.LevelNotice, "advisory")

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("Expected valid JSON output, got: %v (output: %s)", err, buf.String())
		}
		if entry["level"] != "NOTICE" {
			t.Errorf("Expected level NOTICE, got: %v", entry["level"])
		}
	})

	t.Run("critical logs render with the CRITICAL label", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New("debug", "text", buf)

		log.Log(context.Background(), logger.LevelCritical, "meltdown")

		if !strings.Contains(buf.String(), "CRITICAL") {
			t.Errorf("Expected CRITICAL label in output: %s", buf.String())
		}
	})
}

func TestJSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New("info", "json", buf)

	log.Info("info message", "tool", "find_nodes")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON output, got: %v (output: %s)", err, buf.String())
	}
	if entry["msg"] != "info message" {
		t.Errorf("Expected msg field, got: %v", entry["msg"])
	}
	if entry["tool"] != "find_nodes" {
		t.Errorf("Expected tool attribute, got: %v", entry["tool"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("Expected level INFO, got: %v", entry["level"])
	}
}

func TestOpenLogFile(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "server.log")

		f, err := logger.OpenLogFile(path)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		defer f.Close()

		if _, err := f.WriteString("line\n"); err != nil {
			t.Errorf("Expected writable file, got: %v", err)
		}
	})

	t.Run("appends to an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "server.log")
		if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		f, err := logger.OpenLogFile(path)
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if _, err := f.WriteString("second\n"); err != nil {
			t.Fatal(err)
		}
		f.Close()

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "first\nsecond\n" {
			t.Errorf("Expected appended content, got: %q", content)
		}
	})
}
