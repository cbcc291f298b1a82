package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestOpenLogSink(t *testing.T) {
	w, closeFn, err := openLogSink("")
	if err != nil || w != io.Discard {
		t.Errorf("empty path: w=%v err=%v", w, err)
	}
	closeFn()

	path := filepath.Join(t.TempDir(), "affinelab.log")
	w, closeFn, err = openLogSink(path)
	if err != nil {
		t.Fatal(err)
	}
	newLogger(w, log.InfoLevel).Info("hello")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q", data)
	}
}

func TestRejectedInputIsLogged(t *testing.T) {
	var buf bytes.Buffer
	m := initialModel(defaultConfig(), newLogger(&buf, log.InfoLevel))
	m.runCommand(CmdRotate)
	m.buffer = "abc"
	m.commitInput()
	if !strings.Contains(buf.String(), "rejected input") {
		t.Errorf("log = %q, want rejected input warning", buf.String())
	}
}
