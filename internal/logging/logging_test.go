package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// captureLogOutput reinitializes the logger to write to a buffer, runs f and
// restores the default logger.
func captureLogOutput(level Level, format Format, f func()) string {
	var buf bytes.Buffer
	InitLogger(&buf, level, format)
	f()
	InitLogger(os.Stderr, LevelWarn, FormatText)
	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{name: "Debug level JSON format", level: LevelDebug, format: FormatJSON},
		{name: "Info level JSON format", level: LevelInfo, format: FormatJSON},
		{name: "Warn level Text format", level: LevelWarn, format: FormatText},
		{name: "Error level Text format", level: LevelError, format: FormatText},
		{name: "Default level (invalid value)", level: Level(999), format: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitLogger(&buf, tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}
	InitLogger(os.Stderr, LevelWarn, FormatText)
}

func TestLevelFiltering(t *testing.T) {
	output := captureLogOutput(LevelWarn, FormatText, func() {
		InfoContext(context.Background(), "hidden")
		WarnContext(context.Background(), "shown")
	})
	if strings.Contains(output, "hidden") {
		t.Errorf("info message logged at warn level: %s", output)
	}
	if !strings.Contains(output, "shown") {
		t.Errorf("warn message missing: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: " warn ", want: LevelWarn},
		{input: "warning", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "verbose", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("json"); err != nil || got != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", got, err)
	}
	if got, err := ParseFormat("Text"); err != nil || got != FormatText {
		t.Errorf("ParseFormat(Text) = %v, %v", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected error")
	}
}

func TestRunID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{name: "Context with run ID", ctx: WithRunID(context.Background(), "run-1"), expected: "run-1"},
		{name: "Context without run ID", ctx: context.Background(), expected: ""},
		{name: "Context with wrong type value", ctx: context.WithValue(context.Background(), RunIDKey, 12345), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetRunID(tt.ctx); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestLoggerFromContextAddsRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "abc-123")
	output := captureLogOutput(LevelDebug, FormatJSON, func() {
		DebugContext(ctx, "debug message")
	})

	var entry map[string]any
	if err := json.Unmarshal([]byte(output), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", output, err)
	}
	if entry["run_id"] != "abc-123" {
		t.Errorf("run_id = %v, want abc-123", entry["run_id"])
	}
	if entry["msg"] != "debug message" {
		t.Errorf("msg = %v, want debug message", entry["msg"])
	}
	ts, ok := entry["time"].(string)
	if !ok {
		t.Fatalf("time missing from %v", entry)
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("time %q is not RFC3339: %v", ts, err)
	}
}

func TestFitEvents(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-fit")
	output := captureLogOutput(LevelInfo, FormatJSON, func() {
		FitSucceeded(ctx, "行った", "[行|い]く", "[行|い]った", 3*time.Microsecond)
		FitFailed(ctx, "音楽あ", "[音楽|おん|がく]", errors.New("the word is too long to fit the furigana"))
	})

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %s", len(lines), output)
	}

	var ok map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if ok["msg"] != "fit_succeeded" || ok["result"] != "[行|い]った" || ok["duration_us"] != float64(3) {
		t.Errorf("unexpected success entry: %v", ok)
	}

	var failed map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if failed["msg"] != "fit_failed" || failed["error"] != "the word is too long to fit the furigana" {
		t.Errorf("unexpected failure entry: %v", failed)
	}
	if failed["run_id"] != "run-fit" {
		t.Errorf("run_id = %v, want run-fit", failed["run_id"])
	}
}
