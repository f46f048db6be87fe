package main

import (
	"io"
	"log/slog"
)

// newStderrLogger logs as text to w so stdout carries only the command's output.
// Unknown levels fall back to info.
func newStderrLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})).With("service", "tayo-rider")
}
