package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lineuplens/internal/logging"
)

func TestNewJSONLoggerWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("fetched channels", logging.String(logging.FieldLineupID, "9329"), logging.Int("channels", 412))

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log record: %v (raw %q)", err, buf.String())
	}
	if record["msg"] != "fetched channels" {
		t.Fatalf("unexpected msg: %v", record["msg"])
	}
	if record[logging.FieldLineupID] != "9329" {
		t.Fatalf("unexpected lineup_id: %v", record[logging.FieldLineupID])
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewAttachesLogFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf, LogDir: dir, AttachFile: true})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("report written")

	data, err := os.ReadFile(filepath.Join(dir, "lineuplens.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "report written") {
		t.Fatalf("log file missing record: %q", data)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("should vanish")
}
