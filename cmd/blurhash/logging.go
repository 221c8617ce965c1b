package main

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI's logger. When logFile is empty, logs go to
// stderr only; otherwise they also go to a rotating file managed by
// lumberjack, mirroring the kind of ambient file-rotation concern this
// corpus's dicos.go CLI carries alongside cobra. The returned close func
// must be called before the process exits so the rotator flushes.
func newLogger(logFile string) (*slog.Logger, func() error) {
	if logFile == "" {
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() error { return nil }
	}

	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	writer := io.MultiWriter(os.Stderr, rotator)
	return slog.New(slog.NewTextHandler(writer, nil)), rotator.Close
}
