package logging

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/alexisbeaulieu97/tint/internal/ports"
)

const defaultBufferLimit = 1000

type entry struct {
	ctx    context.Context
	level  zerolog.Level
	msg    string
	fields []interface{}
}

// EventBuffer is a bounded ring of log entries held while a full-screen
// program owns the terminal. Once full the oldest entry is overwritten.
type EventBuffer struct {
	mu      sync.Mutex
	entries []entry
	start   int
	size    int
	dropped int
}

// NewEventBuffer returns a buffer holding at most limit entries (1000 when
// limit is not positive).
func NewEventBuffer(limit int) *EventBuffer {
	if limit <= 0 {
		limit = defaultBufferLimit
	}
	return &EventBuffer{entries: make([]entry, limit)}
}

// Len reports how many entries are waiting.
func (b *EventBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

func (b *EventBuffer) push(e entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	end := (b.start + b.size) % len(b.entries)
	b.entries[end] = e
	if b.size < len(b.entries) {
		b.size++
		return
	}
	b.start = (b.start + 1) % len(b.entries)
	b.dropped++
}

// Flush replays the waiting entries in order through delegate and empties the
// buffer. Overwritten entries are reported with a single warning.
func (b *EventBuffer) Flush(delegate ports.Logger) {
	if delegate == nil {
		return
	}

	b.mu.Lock()
	pending := make([]entry, 0, b.size)
	for i := 0; i < b.size; i++ {
		pending = append(pending, b.entries[(b.start+i)%len(b.entries)])
	}
	dropped := b.dropped
	b.start, b.size, b.dropped = 0, 0, 0
	b.mu.Unlock()

	if dropped > 0 {
		delegate.Warn(context.Background(), "log entries dropped while the terminal was busy", "dropped", dropped)
	}
	for _, e := range pending {
		switch e.level {
		case zerolog.DebugLevel:
			delegate.Debug(e.ctx, e.msg, e.fields...)
		case zerolog.WarnLevel:
			delegate.Warn(e.ctx, e.msg, e.fields...)
		case zerolog.ErrorLevel:
			delegate.Error(e.ctx, e.msg, e.fields...)
		default:
			delegate.Info(e.ctx, e.msg, e.fields...)
		}
	}
}

// BufferedLogger is a ports.Logger that records into an EventBuffer instead
// of writing.
type BufferedLogger struct {
	buffer *EventBuffer
	fields []interface{}
}

// NewBufferedLogger records into buffer.
func NewBufferedLogger(buffer *EventBuffer) *BufferedLogger {
	return &BufferedLogger{buffer: buffer}
}

func (l *BufferedLogger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, zerolog.DebugLevel, msg, fields)
}

func (l *BufferedLogger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, zerolog.InfoLevel, msg, fields)
}

func (l *BufferedLogger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, zerolog.WarnLevel, msg, fields)
}

func (l *BufferedLogger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.record(ctx, zerolog.ErrorLevel, msg, fields)
}

// With returns a logger sharing the buffer with extra persistent fields.
func (l *BufferedLogger) With(fields ...interface{}) ports.Logger {
	return &BufferedLogger{buffer: l.buffer, fields: mergeFields(l.fields, fields, nil)}
}

func (l *BufferedLogger) record(ctx context.Context, level zerolog.Level, msg string, fields []interface{}) {
	if l == nil || l.buffer == nil {
		return
	}
	l.buffer.push(entry{ctx: ctx, level: level, msg: msg, fields: mergeFields(l.fields, fields, nil)})
}

var _ ports.Logger = (*BufferedLogger)(nil)
