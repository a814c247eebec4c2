package rollbar

import (
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	rollbar "github.com/rollbar/rollbar-go"
)

var (
	mu          sync.Mutex
	withPanic   = false
	logDisabled = false
	// accept every 3rd message on average, at most one every 500ms
	accepted = newSampler(3, 500*time.Millisecond)
)

func init() {
	// Without a token, reporting only logs locally.
	rollbar.SetToken(os.Getenv("ROLLBAR_TOKEN"))

	env := os.Getenv("ROLLBAR_ENV")
	if env == "" {
		env = "development"
	}
	rollbar.SetEnvironment(env)
}

// Disable rollbar messages
func Disable() {
	rollbar.SetToken("")
	rollbar.SetEnvironment("")
	rollbar.SetEnabled(false)
}

// WithPanic causes all subsequent rollbar calls to panic. The returned function reverts the behavior.
// Intended for use as: defer rollbar.WithPanic(t)() within a test function.
func WithPanic(testing.TB) func() {
	mu.Lock()
	withPanic = true
	mu.Unlock()
	return func() {
		mu.Lock()
		withPanic = false
		mu.Unlock()
	}
}

// SetLogDisabled sets the status of logging to Golang's log.
func SetLogDisabled(disabled bool) {
	mu.Lock()
	defer mu.Unlock()
	logDisabled = disabled
}

// SetCodeVersion sets the version reported with each item
func SetCodeVersion(ver string) {
	rollbar.SetCodeVersion(ver)
}

// Wait will block until the queue of errors / messages is empty.
func Wait() {
	rollbar.Wait()
}

// Critical sends a critical error report to Rollbar.
func Critical(err error, data ...interface{}) {
	send(rollbar.CRIT, err, data...)
}

// Error sends an error report to Rollbar.
func Error(err error, data ...interface{}) {
	send(rollbar.ERR, err, data...)
}

// Warning sends a warning report to Rollbar.
func Warning(err error, data ...interface{}) {
	send(rollbar.WARN, err, data...)
}

func send(level string, err error, data ...interface{}) {
	mu.Lock()
	panics, quiet := withPanic, logDisabled
	mu.Unlock()

	if !quiet {
		log.Println("ROLLBAR", level, err, data)
	}
	if panics {
		panic(fmt.Sprintf("rollbar [%s]: %v %v", level, err, data))
	}
	if rollbar.Token() == "" {
		return
	}
	if !accepted.Accept() {
		if !quiet {
			log.Println("dropping rollbar event due to filtering")
		}
		return
	}

	extras := make(map[string]interface{}, len(data))
	for idx, d := range data {
		extras[fmt.Sprintf("data%d", idx)] = d
	}
	skip := 2 // Go up two stack frames to report where the error came from
	rollbar.ErrorWithStackSkipWithExtras(level, err, skip, extras)
}
