package dispatch

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/cwbudde/fnswitch/internal/value"
)

const defaultFallbackLogName = "PropertyFunctionsRequiringReflection"

// fallbackLog appends one line per unresolved call when enabled (§4.7).
// Writes are open-append-close per call, never batched, and errors are
// swallowed: a logging failure must never surface as a dispatch failure.
// Concurrent writers are fine (§5) — each write is one os.OpenFile +
// one Write + one Close, so individual lines may interleave under heavy
// concurrency but never tear mid-line on platforms with atomic O_APPEND
// writes below the pipe buffer size, which every line here is.
type fallbackLog struct {
	enabled bool
	path    string
	mu      sync.Mutex
}

func newFallbackLog(enabled bool, path string) *fallbackLog {
	if path == "" {
		path = "./" + defaultFallbackLogName
	}
	return &fallbackLog{enabled: enabled, path: path}
}

func (d *Dispatcher) logUnresolved(receiverType, objectInstanceType, methodName string, args []value.V) {
	if d.fallback == nil || !d.fallback.enabled {
		return
	}
	d.fallback.append(receiverType, objectInstanceType, methodName, args)
}

func (l *fallbackLog) append(receiverType, objectInstanceType, methodName string, args []value.V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	argTypes := make([]string, len(args))
	for i, a := range args {
		argTypes[i] = a.Kind().String()
	}
	line := fmt.Sprintf("ReceiverType=%s; ObjectInstanceType=%s; MethodName=%s(%s)\n",
		receiverType, objectInstanceType, methodName, strings.Join(argTypes, ", "))
	_, _ = f.WriteString(line)
}
