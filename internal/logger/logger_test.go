package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger resets the logger to default state for test isolation
func resetLogger() {
	Init(Options{})
}

func TestOptions_Level(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want slog.Level
	}{
		{"default", Options{}, slog.LevelInfo},
		{"debug", Options{Debug: true}, slog.LevelDebug},
		{"quiet", Options{Quiet: true}, slog.LevelError},
		{"quiet wins over debug", Options{Debug: true, Quiet: true}, slog.LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.Level())
		})
	}
}

func TestInit_Levels(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		logged  []string
		dropped []string
	}{
		{
			name:    "info level",
			opts:    Options{},
			logged:  []string{"info msg", "warn msg", "error msg"},
			dropped: []string{"debug msg"},
		},
		{
			name:   "debug level",
			opts:   Options{Debug: true},
			logged: []string{"debug msg", "info msg", "warn msg", "error msg"},
		},
		{
			name:    "quiet level",
			opts:    Options{Quiet: true},
			logged:  []string{"error msg"},
			dropped: []string{"debug msg", "info msg", "warn msg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			tt.opts.Output = buf
			Init(tt.opts)
			defer resetLogger()

			Debug("debug msg")
			Info("info msg")
			Warn("warn msg")
			Error("error msg")

			for _, msg := range tt.logged {
				assert.Contains(t, buf.String(), msg)
			}
			for _, msg := range tt.dropped {
				assert.NotContains(t, buf.String(), msg)
			}
		})
	}
}

func TestInit_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{JSON: true, Output: buf})
	defer resetLogger()

	Info("found entries", "count", 42)

	out := buf.String()
	assert.Contains(t, out, `"msg":"found entries"`)
	assert.Contains(t, out, `"count":42`)
	assert.Contains(t, out, `"level":"INFO"`)
}

func TestInit_TextFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	Info("cleaned entries", "count", 7)

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="cleaned entries"`)
	assert.Contains(t, out, "count=7")
}

func TestInit_CustomLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	custom := slog.New(slog.NewTextHandler(buf, nil))
	Init(Options{Logger: custom, Quiet: true})
	defer resetLogger()

	Info("routed to custom logger")
	assert.Contains(t, buf.String(), "routed to custom logger")
}

func TestWith_ReturnsLoggerWithAttrs(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Output: buf})
	defer resetLogger()

	l := With("index", 23)
	require.NotNil(t, l)
	l.Info("exempt from funding strip")

	assert.Contains(t, buf.String(), "exempt from funding strip")
	assert.Contains(t, buf.String(), "index=23")
}

func TestContextVariants(t *testing.T) {
	buf := &bytes.Buffer{}
	Init(Options{Debug: true, Output: buf})
	defer resetLogger()

	ctx := context.Background()
	DebugContext(ctx, "debug with context")
	InfoContext(ctx, "info with context")
	ErrorContext(ctx, "error with context")

	for _, msg := range []string{"debug with context", "info with context", "error with context"} {
		assert.Contains(t, buf.String(), msg)
	}
}
