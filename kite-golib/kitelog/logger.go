package kitelog

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
)

var flags = log.LstdFlags | log.Lshortfile | log.Lmicroseconds

// Basic logs to stderr with the release identifier as prefix
var Basic = New(os.Stderr, fmt.Sprintf("[release=%s] ", os.Getenv("RELEASE")))

// Discard drops every log line; it is meant for tests
var Discard = New(ioutil.Discard, "")

// Logger encapsulates a log handler and a recorder of timings
type Logger struct {
	Default   *log.Logger
	Durations Durations
}

// Interface encapsulates the relevant methods of log.Logger
type Interface interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// New creates a Logger writing to w
func New(w io.Writer, prefix string) *Logger {
	return &Logger{Default: log.New(w, prefix, flags)}
}

// Printf implements Interface
func (l *Logger) Printf(format string, v ...interface{}) {
	l.Default.Output(2, fmt.Sprintf(format, v...))
}

// Println implements Interface
func (l *Logger) Println(v ...interface{}) {
	l.Default.Output(2, fmt.Sprintln(v...))
}
