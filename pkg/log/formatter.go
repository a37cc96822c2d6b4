package log

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

const defaultTimestampFormat = "15:04:05.000"

var defaultColorScheme = map[Level]string{
	ErrorLevel: "red",
	WarnLevel:  "yellow",
	InfoLevel:  "green",
	DebugLevel: "blue+h",
	TraceLevel: "white",
}

// Formatter renders log entries as `<time> <LEVEL> [key=value ...] <message>` lines.
type Formatter struct {
	levelColors     map[Level]func(string) string
	timestampColor  func(string) string
	TimestampFormat string
	DisableColors   bool
}

// NewFormatter returns a Formatter with the default color scheme.
func NewFormatter() *Formatter {
	levelColors := make(map[Level]func(string) string, len(defaultColorScheme))

	for level, style := range defaultColorScheme {
		levelColors[level] = ansi.ColorFunc(style)
	}

	return &Formatter{
		TimestampFormat: defaultTimestampFormat,
		levelColors:     levelColors,
		timestampColor:  ansi.ColorFunc("black+h"),
	}
}

// Format implements logrus.Formatter.
func (formatter *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	level := FromLogrusLevel(entry.Level)
	timestamp := entry.Time.Format(formatter.TimestampFormat)
	levelName := fmt.Sprintf("%-4s", level.ShortName())

	if !formatter.DisableColors {
		timestamp = formatter.timestampColor(timestamp)

		if colorFunc, ok := formatter.levelColors[level]; ok {
			levelName = colorFunc(levelName)
		}
	}

	buf.WriteString(timestamp)
	buf.WriteString(" ")
	buf.WriteString(levelName)
	buf.WriteString(" ")

	fields := Fields(entry.Data)

	for _, key := range fields.Keys(logrus.ErrorKey) {
		fmt.Fprintf(buf, "[%s=%v] ", key, fields[key])
	}

	buf.WriteString(strings.TrimRight(entry.Message, "\n"))

	if err, ok := fields[logrus.ErrorKey]; ok {
		fmt.Fprintf(buf, ": %v", err)
	}

	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
