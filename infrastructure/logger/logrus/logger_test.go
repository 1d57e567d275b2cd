package logrus

import (
	"bytes"
	"encoding/json"
	"testing"

	sirupsen "github.com/sirupsen/logrus"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("debug")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := NewLogger("nonsense")

	if logger.log.GetLevel() != sirupsen.InfoLevel {
		t.Errorf("level = %v, want info", logger.log.GetLevel())
	}
}

func TestInfo_EmitsJSONWithFields(t *testing.T) {
	logger := NewLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Info("restaurants fetched", map[string]interface{}{
		"bucket": "37.775,-122.419,5000",
		"count":  12,
	})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "restaurants fetched" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["bucket"] != "37.775,-122.419,5000" {
		t.Errorf("bucket field = %v", entry["bucket"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestDebug_SuppressedAtInfoLevel(t *testing.T) {
	logger := NewLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	logger.Debug("noise", nil)

	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed at info level, got %q", buf.String())
	}
}

func TestLog_NilFields(t *testing.T) {
	logger := NewLogger("info")
	var buf bytes.Buffer
	logger.log.SetOutput(&buf)

	// Must not panic with nil fields.
	logger.Warn("plain message", nil)

	if buf.Len() == 0 {
		t.Error("warn message should be emitted")
	}
}
