package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/YuminosukeSato/moselect/pkg/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("filter finished",
		ComponentKey, "pareto",
		PopulationKey, 30,
		FrontSizeKey, 9,
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["message"] != "filter finished" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry[PopulationKey] != float64(30) {
		t.Errorf("%s = %v, want 30", PopulationKey, entry[PopulationKey])
	}
	if entry[FrontSizeKey] != float64(9) {
		t.Errorf("%s = %v, want 9", FrontSizeKey, entry[FrontSizeKey])
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("not captured")
	logger.Info("not captured either")
	logger.Warn("captured")

	out := buffer.String()
	if strings.Contains(out, "not captured") {
		t.Error("records below the minimum level must be dropped")
	}
	if !strings.Contains(out, "captured") {
		t.Error("records at the minimum level must be kept")
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, buffer := NewTestLogger(LevelInfo)

	child := logger.With(ComponentKey, "rank")
	child.Info("ranked")

	var entry map[string]interface{}
	if err := json.Unmarshal(buffer.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry[ComponentKey] != "rank" {
		t.Errorf("%s = %v, want rank", ComponentKey, entry[ComponentKey])
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(WrapByErrFmtHandler(handler))

	err := errors.NewValueError("Identify", "bad input")
	logger.Error("operation failed", ErrAttr(err))

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("output is not JSON: %v", jsonErr)
	}
	if _, ok := entry[StacktraceAttrKey]; !ok {
		t.Error("expected a stacktrace attribute for a cockroachdb error")
	}
}

func TestNopLogger(t *testing.T) {
	logger := Nop()
	// Must be inert and chainable.
	logger.With("k", "v").Info("dropped")
	if logger.Enabled(context.Background(), LevelError) {
		t.Error("Nop logger must report disabled at every level")
	}
}

func TestToLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range cases {
		if got := ToLogLevel(name); got != want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
