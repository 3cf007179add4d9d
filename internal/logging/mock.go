package logging

import "sync"

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
}

// MockLogger records log calls for assertions in tests. Loggers derived
// with WithField/WithFields share the root's entry sink.
type MockLogger struct {
	root   *mockSink
	fields []Field
}

type mockSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{root: &mockSink{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	m.root.mu.Lock()
	defer m.root.mu.Unlock()
	all := append(append([]Field{}, m.fields...), fields...)
	m.root.entries = append(m.root.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

func (m *MockLogger) WithError(err error) Logger {
	return m.WithField(FieldError, err)
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	return &MockLogger{
		root:   m.root,
		fields: append(append([]Field{}, m.fields...), fields...),
	}
}

// Entries returns the captured log entries.
func (m *MockLogger) Entries() []LogEntry {
	m.root.mu.Lock()
	defer m.root.mu.Unlock()
	return append([]LogEntry{}, m.root.entries...)
}

// HasEntry reports whether a message was logged at the given level.
func (m *MockLogger) HasEntry(level, message string) bool {
	m.root.mu.Lock()
	defer m.root.mu.Unlock()
	for _, e := range m.root.entries {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}
