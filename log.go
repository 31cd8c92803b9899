package embervk

import (
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// LogLevel selects the lowest level that is written out.
type LogLevel int

const (
	LogTrace LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

var (
	logOut   = log.New(os.Stderr, "", log.Ldate|log.Ltime)
	logLevel = LogInfo
	logColor = term.IsTerminal(int(os.Stderr.Fd()))
)

var levelTags = [...]string{"TRACE", "INFO", "WARN", "ERROR"}

var levelColors = [...]string{"\x1b[90m", "\x1b[32m", "\x1b[33m", "\x1b[31m"}

// SetLogLevel sets the lowest level that gets written. The default is LogInfo,
// which shows creation and teardown milestones; LogTrace adds per-frame events.
func SetLogLevel(level LogLevel) {
	logLevel = level
}

// SetLogOutput redirects log writes, primarily for tests. Level coloring is
// disabled for custom writers since they are rarely terminals.
func SetLogOutput(w io.Writer) {
	logOut = log.New(w, "", 0)
	logColor = false
}

func Tracef(format string, args ...interface{}) { logf(LogTrace, format, args...) }
func Infof(format string, args ...interface{})  { logf(LogInfo, format, args...) }
func Warnf(format string, args ...interface{})  { logf(LogWarn, format, args...) }
func Errorf(format string, args ...interface{}) { logf(LogError, format, args...) }

func logf(level LogLevel, format string, args ...interface{}) {
	if level < logLevel || level < LogTrace || level > LogError {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if logColor {
		logOut.Printf("%s%-5s\x1b[0m %s", levelColors[level], levelTags[level], msg)
		return
	}
	logOut.Printf("%-5s %s", levelTags[level], msg)
}
