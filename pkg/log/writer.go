package log

import (
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFileMaxSizeMB  = 10
	defaultLogFileMaxBackups = 3
	defaultLogFileMaxAgeDays = 30
)

// NewRotatingFileWriter returns a size-rotated writer for the given log file path.
// The caller is responsible for closing it.
func NewRotatingFileWriter(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    defaultLogFileMaxSizeMB,
		MaxBackups: defaultLogFileMaxBackups,
		MaxAge:     defaultLogFileMaxAgeDays,
	}
}
