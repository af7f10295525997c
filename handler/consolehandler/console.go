package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler"
)

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: StyledFormatter)
	Formatter formatter.Formatter
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewStyledFormatter(formatter.Config{})
	}
}

// ConsoleHandler writes one formatted line per entry. Lines from
// concurrent callers are serialized and each is written with a single
// Write call.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
	closed          chan struct{}
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	applyConsoleDefaults(&cfg)

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
		closed:    make(chan struct{}),
	}

	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	if h.bufferFormatter != nil {
		h.buf.Grow(256)
	}

	return h
}

// Handle formats and writes the entry
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	var err error
	if h.bufferFormatter != nil {
		h.mu.Lock()
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err = h.writer.Write(h.buf.Bytes())
		h.mu.Unlock()
	} else {
		var data []byte
		data, err = h.formatter.Format(entry)
		if err == nil {
			h.mu.Lock()
			_, err = h.writer.Write(data)
			h.mu.Unlock()
		}
	}

	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	h.stats.IncrementWritten(entry.Level)
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler. The writer is not closed; the handler does
// not own it.
func (h *ConsoleHandler) Close() error {
	select {
	case <-h.closed:
		return nil // Already closed
	default:
		close(h.closed)
	}
	return nil
}
