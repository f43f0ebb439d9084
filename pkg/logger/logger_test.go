package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"warn", zapcore.WarnLevel},
		{" ERROR ", zapcore.ErrorLevel},
		{"chatty", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.name); got != tt.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestNewLevels(t *testing.T) {
	for _, want := range []zapcore.Level{zapcore.DebugLevel, zapcore.WarnLevel, zapcore.ErrorLevel} {
		l, err := New(want.String())
		if err != nil {
			t.Fatalf("New(%q) error = %v", want, err)
		}
		if !l.Core().Enabled(want) {
			t.Errorf("New(%q) does not log at %s", want, want)
		}
		if want > zapcore.DebugLevel && l.Core().Enabled(want-1) {
			t.Errorf("New(%q) logs below %s", want, want)
		}
	}
}

func TestInitReplacesProcessLogger(t *testing.T) {
	before := Get()
	if before == nil {
		t.Fatal("Get() returned nil")
	}
	if err := Init("warn"); err != nil {
		t.Fatal(err)
	}
	after := Get()
	if after == before {
		t.Error("Init() did not install a new logger")
	}
	if after.Core().Enabled(zapcore.InfoLevel) {
		t.Error("process logger still logs at info after Init(warn)")
	}
	if Named("http") == nil {
		t.Fatal("Named() returned nil")
	}
}
