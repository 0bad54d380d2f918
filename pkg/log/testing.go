package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// TestLogger captures log records in memory so tests can assert on what an
// estimator logged during a run.
type TestLogger struct {
	mu     sync.Mutex
	buffer *bytes.Buffer
	level  Level
	fields []any
}

// NewTestLogger creates a TestLogger capturing records at or above level,
// returning the logger and the buffer holding its output. Each record is
// one JSON line with "level", "message" and the structured fields.
func NewTestLogger(level Level) (*TestLogger, *bytes.Buffer) {
	buffer := &bytes.Buffer{}
	return &TestLogger{buffer: buffer, level: level}, buffer
}

func (t *TestLogger) log(level Level, name, msg string, fields ...any) {
	if t.level > level {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	record := map[string]any{"level": name, "message": msg}
	all := append(append([]any{}, t.fields...), fields...)
	for i := 0; i+1 < len(all); i += 2 {
		key, ok := all[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", all[i])
		}
		if err, isErr := all[i+1].(error); isErr {
			record[key] = err.Error()
			continue
		}
		record[key] = all[i+1]
	}
	line, _ := json.Marshal(record)
	t.buffer.Write(line)
	t.buffer.WriteByte('\n')
}

func (t *TestLogger) Debug(msg string, fields ...any) { t.log(LevelDebug, "DEBUG", msg, fields...) }
func (t *TestLogger) Info(msg string, fields ...any)  { t.log(LevelInfo, "INFO", msg, fields...) }
func (t *TestLogger) Warn(msg string, fields ...any)  { t.log(LevelWarn, "WARN", msg, fields...) }
func (t *TestLogger) Error(msg string, fields ...any) { t.log(LevelError, "ERROR", msg, fields...) }

func (t *TestLogger) With(fields ...any) Logger {
	t.mu.Lock()
	defer t.mu.Unlock()
	return &TestLogger{
		buffer: t.buffer,
		level:  t.level,
		fields: append(append([]any{}, t.fields...), fields...),
	}
}

func (t *TestLogger) Enabled(_ context.Context, level Level) bool {
	return t.level <= level
}

// records parses the captured output back into one map per log line.
func (t *TestLogger) records() []map[string]any {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []map[string]any
	for _, line := range bytes.Split(t.buffer.Bytes(), []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(line, &rec); err == nil {
			out = append(out, rec)
		}
	}
	return out
}

// ContainsMessage reports whether any captured record carries the message.
func (t *TestLogger) ContainsMessage(msg string) bool {
	for _, rec := range t.records() {
		if rec["message"] == msg {
			return true
		}
	}
	return false
}

// ContainsField reports whether any captured record carries the key with
// the given value. JSON decoding turns all numbers into float64, so pass
// numeric expectations as float64.
func (t *TestLogger) ContainsField(key string, value any) bool {
	for _, rec := range t.records() {
		if v, ok := rec[key]; ok && v == value {
			return true
		}
	}
	return false
}
