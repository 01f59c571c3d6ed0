// Copyright 2025 The ptcalc Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides a minimal leveled logging facility with
// pluggable emitters. The default configuration discards everything;
// stdout and stderr belong to the calculator's report, so the CLI
// decides explicitly where logs go.
package log

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Level is the log level.
type Level uint32

// The set of levels, in decreasing order of severity.
const (
	Warning Level = iota
	Info
	Debug
)

// String implements fmt.Stringer.String.
func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	default:
		return fmt.Sprintf("invalid level (%d)", uint32(l))
	}
}

// Emitter is the final destination for log lines.
type Emitter interface {
	// Emit emits the given log statement.
	Emit(level Level, timestamp time.Time, format string, v ...any)
}

// Writer writes log lines to an underlying io.Writer. Writes that fail
// are counted and reported on the next successful write instead of
// being retried, so logging never blocks progress.
type Writer struct {
	// Next is where output is written.
	Next io.Writer

	// mu protects Next.
	mu sync.Mutex

	// errors counts failed writes since the last successful one.
	errors int64
}

// Write implements io.Writer.Write.
func (l *Writer) Write(data []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.errors > 0 {
		// Report and reset the counter only if the underlying writer
		// recovered; otherwise keep counting.
		if _, err := fmt.Fprintf(l.Next, "\n*** Dropped %d log messages ***\n", l.errors); err != nil {
			l.errors++
			return 0, err
		}
		l.errors = 0
	}

	n, err := l.Next.Write(data)
	if err != nil {
		l.errors++
	}
	return n, err
}

// TextEmitter emits human-readable log lines: a level letter, the
// timestamp, and the message.
type TextEmitter struct {
	*Writer
}

// Emit implements Emitter.Emit.
func (e TextEmitter) Emit(level Level, timestamp time.Time, format string, args ...any) {
	prefix := byte('W')
	switch level {
	case Info:
		prefix = 'I'
	case Debug:
		prefix = 'D'
	}
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(e.Writer, "%c%s %s\n", prefix, timestamp.Format("0102 15:04:05.000000"), line)
}

// logger is an immutable (level, emitter) pair. Reconfiguration swaps
// the whole pair so concurrent Infof/Debugf callers never see a torn
// state.
type logger struct {
	level   Level
	emitter Emitter
}

var current atomic.Pointer[logger]

func init() {
	current.Store(&logger{
		level:   Info,
		emitter: TextEmitter{&Writer{Next: io.Discard}},
	})
}

// SetLevel sets the output level; statements below it are dropped.
func SetLevel(newLevel Level) {
	old := current.Load()
	current.Store(&logger{level: newLevel, emitter: old.emitter})
}

// SetTarget sets the log target; it applies to all subsequent
// statements.
func SetTarget(target Emitter) {
	old := current.Load()
	current.Store(&logger{level: old.level, emitter: target})
}

// IsLogging returns whether the given level would currently be emitted.
func IsLogging(level Level) bool {
	return current.Load().level >= level
}

func logf(level Level, format string, v ...any) {
	l := current.Load()
	if l.level < level {
		return
	}
	l.emitter.Emit(level, time.Now(), format, v...)
}

// Warningf logs at the warning level.
func Warningf(format string, v ...any) {
	logf(Warning, format, v...)
}

// Infof logs at the info level.
func Infof(format string, v ...any) {
	logf(Info, format, v...)
}

// Debugf logs at the debug level.
func Debugf(format string, v ...any) {
	logf(Debug, format, v...)
}
