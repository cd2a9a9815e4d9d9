package logger

import (
	"testing"
)

func TestMockLogger(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("Test message", "key", "value")
	mock.Debug("Debug message")
	mock.Warn("Warning message")
	mock.Error("Error message", "error", "test error")

	if len(*mock.Messages) != 4 {
		t.Errorf("Expected 4 messages, got %d", len(*mock.Messages))
	}

	if !mock.HasMessage("INFO", "Test message") {
		t.Error("Expected to find INFO message")
	}
	if mock.HasMessage("INFO", "Debug message") {
		t.Error("Did not expect Debug message at INFO level")
	}

	// With shares the message slice and carries context args.
	contextLogger := mock.With("user", "test-user")
	contextLogger.Info("Context message")

	lastMsg := (*mock.Messages)[len(*mock.Messages)-1]
	if lastMsg.Msg != "Context message" {
		t.Errorf("Expected context message, got: %s", lastMsg.Msg)
	}

	found := false
	for i := 0; i < len(lastMsg.Args)-1; i += 2 {
		if lastMsg.Args[i] == "user" && lastMsg.Args[i+1] == "test-user" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected to find user context in args")
	}
}

func TestLoggerInterface(_ *testing.T) {
	var _ Logger = &SlogLogger{}
	var _ Logger = &MockLogger{}

	testLogger := func(l Logger) {
		l.Info("test")
		l.Debug("debug")
		l.Warn("warn")
		l.Error("error")
		l.With("key", "value").Info("with context")
	}

	testLogger(NewMockLogger())
}

func TestGlobalLogger(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	mock := NewMockLogger()
	SetGlobalLogger(mock)

	Info("global message", "k", "v")
	if !mock.HasMessage("INFO", "global message") {
		t.Error("Expected global Info to reach the configured logger")
	}
}
