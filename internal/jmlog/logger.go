/*
Package jmlog provides a small level-gated logger for the jsonmap CLI.

The core packages (parser, eval, jsonmap) never log anything themselves —
logging is strictly a concern of the command-line wrapper around the core.
*/
package jmlog

import (
	"fmt"
	"io"
	"log"
	"strings"
)

/*
Logger is the minimal logging interface the CLI writes through.
*/
type Logger interface {

	/*
		LogError adds a new error log message.
	*/
	LogError(v ...interface{})

	/*
		LogInfo adds a new info log message.
	*/
	LogInfo(v ...interface{})

	/*
		LogDebug adds a new debug log message.
	*/
	LogDebug(v ...interface{})
}

/*
Level represents a logging level.
*/
type Level string

/*
Supported log levels.
*/
const (
	Debug Level = "debug"
	Info  Level = "info"
	Error Level = "error"
)

/*
LevelLogger is a wrapper around a Logger which adds level based filtering.
*/
type LevelLogger struct {
	logger Logger
	level  Level
}

/*
New wraps a writer in a level-gated logger writing to w via the standard
library's log package.
*/
func New(w io.Writer, level string) (*LevelLogger, error) {
	return NewLevelLogger(&writerLogger{log.New(w, "", log.LstdFlags)}, level)
}

/*
NewLevelLogger wraps a given Logger and adds level based filtering.
*/
func NewLevelLogger(logger Logger, level string) (*LevelLogger, error) {
	lvl := Level(strings.ToLower(level))

	if lvl != Debug && lvl != Info && lvl != Error {
		return nil, fmt.Errorf("invalid log level: %v", level)
	}

	return &LevelLogger{logger, lvl}, nil
}

/*
Level returns the current log level.
*/
func (ll *LevelLogger) Level() Level {
	return ll.level
}

/*
LogError adds a new error log message. Errors are always logged.
*/
func (ll *LevelLogger) LogError(v ...interface{}) {
	ll.logger.LogError(v...)
}

/*
LogInfo adds a new info log message.
*/
func (ll *LevelLogger) LogInfo(v ...interface{}) {
	if ll.level == Info || ll.level == Debug {
		ll.logger.LogInfo(v...)
	}
}

/*
LogDebug adds a new debug log message.
*/
func (ll *LevelLogger) LogDebug(v ...interface{}) {
	if ll.level == Debug {
		ll.logger.LogDebug(v...)
	}
}

/*
writerLogger is the default Logger implementation, writing through a
standard library *log.Logger.
*/
type writerLogger struct {
	std *log.Logger
}

func (wl *writerLogger) LogError(v ...interface{}) {
	wl.std.Print("error: " + fmt.Sprint(v...))
}

func (wl *writerLogger) LogInfo(v ...interface{}) {
	wl.std.Print(fmt.Sprint(v...))
}

func (wl *writerLogger) LogDebug(v ...interface{}) {
	wl.std.Print("debug: " + fmt.Sprint(v...))
}
