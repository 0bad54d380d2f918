package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestTestLoggerCapturesAllLevels(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Debug("debug message", "key1", "value1", "number", 42)
	logger.Info("info message", OperationKey, "fit")
	logger.Warn("warning message", "code", "W1")
	logger.Error("error message", "code", "E1")

	if buffer.Len() == 0 {
		t.Fatal("Expected log output, got empty buffer")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !logger.ContainsMessage(msg) {
			t.Errorf("message %q not found in output", msg)
		}
	}
	if !logger.ContainsField("key1", "value1") {
		t.Error("field key1=value1 not found")
	}
	// JSON decoding yields float64 for all numbers.
	if !logger.ContainsField("number", 42.0) {
		t.Error("field number=42 not found")
	}
	if !logger.ContainsField(OperationKey, "fit") {
		t.Error("operation field not found")
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("too quiet")
	logger.Info("still too quiet")
	logger.Warn("loud enough")

	if logger.ContainsMessage("too quiet") || logger.ContainsMessage("still too quiet") {
		t.Error("records below the configured level were captured")
	}
	if !logger.ContainsMessage("loud enough") {
		t.Error("warn record missing")
	}
	if strings.Count(buffer.String(), "\n") != 1 {
		t.Errorf("expected exactly one record, got output %q", buffer.String())
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	child := logger.With(ModelNameKey, "TobitRegression")
	child.Info("bound fields travel")

	tl, ok := child.(*TestLogger)
	if !ok {
		t.Fatalf("With returned %T, want *TestLogger", child)
	}
	if !tl.ContainsField(ModelNameKey, "TobitRegression") {
		t.Error("bound field missing from child logger output")
	}
}

func TestTestLoggerEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelDebug) {
		t.Error("Enabled(Debug) = true at Info level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("Enabled(Error) = false at Info level")
	}
}

func TestSetupLoggerWritesJSON(t *testing.T) {
	prev := GetLogger()
	defer SetDefault(prev)

	var buf bytes.Buffer
	SetupLogger("debug", &buf)

	GetLoggerWithName("test-component").Info("hello", IterationKey, 3)

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("output %q missing message", out)
	}
	if !strings.Contains(out, IterationKey) {
		t.Errorf("output %q missing structured key", out)
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		if got := ToLogLevel(tt.in); Level(got) != tt.want {
			t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("ToLogLevel with unknown name should panic")
		}
	}()
	ToLogLevel("verbose")
}
