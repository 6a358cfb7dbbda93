package server

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// maxConsoleMessages bounds the lines kept per render
const maxConsoleMessages = 100

// ConsoleMessage is one line of render output returned to web clients
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger for a single web render. Each line is echoed
// to out tagged with the render ID and kept so it can be returned to the client.
type WebLogger struct {
	renderID string
	out      io.Writer

	mu       sync.Mutex
	messages []ConsoleMessage
	dropped  int
}

// NewWebLogger creates a logger for one render. A nil out keeps messages
// without echoing them.
func NewWebLogger(renderID string, out io.Writer) *WebLogger {
	return &WebLogger{renderID: renderID, out: out}
}

func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	if wl.out != nil {
		fmt.Fprintf(wl.out, "[%s] %s", wl.shortID(), message)
	}

	wl.mu.Lock()
	defer wl.mu.Unlock()
	if len(wl.messages) >= maxConsoleMessages {
		wl.dropped++
		return
	}
	wl.messages = append(wl.messages, ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     messageLevel(message),
	})
}

// Messages returns a copy of the lines logged so far. Lines past the limit
// are summarized by a final warning.
func (wl *WebLogger) Messages() []ConsoleMessage {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	out := make([]ConsoleMessage, len(wl.messages), len(wl.messages)+1)
	copy(out, wl.messages)
	if wl.dropped > 0 {
		out = append(out, ConsoleMessage{
			Message:   fmt.Sprintf("%d more messages dropped\n", wl.dropped),
			Timestamp: time.Now(),
			Level:     "warning",
		})
	}
	return out
}

// messageLevel classifies a log line by its wording
func messageLevel(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error") || strings.Contains(lower, "failed"):
		return "error"
	case strings.Contains(lower, "cancelled") || strings.Contains(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}

// shortID returns the leading segment of the render ID
func (wl *WebLogger) shortID() string {
	if len(wl.renderID) > 8 {
		return wl.renderID[:8]
	}
	return wl.renderID
}
