package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/jonathan/skill-gap/internal/pipeline"
)

// SSE event names
const (
	eventStep     = "step"
	eventComplete = "complete"
	eventError    = "error"
)

// SSEWriter writes numbered Server-Sent Events. It is safe for concurrent use
// since ranking reports progress from several goroutines.
type SSEWriter struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
	nextID  int
}

// NewSSEWriter sets the event-stream headers on w. It fails when w cannot
// flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends data as JSON under the given event name.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", event, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.nextID, event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteStep sends one pipeline progress event.
func (s *SSEWriter) WriteStep(event pipeline.ProgressEvent) error {
	return s.WriteEvent(eventStep, event)
}

// WriteError sends a terminal error event.
func (s *SSEWriter) WriteError(message string) {
	_ = s.WriteEvent(eventError, map[string]string{"error": message})
}

// WriteComplete sends the terminal event carrying the final report.
func (s *SSEWriter) WriteComplete(report any) {
	_ = s.WriteEvent(eventComplete, report)
}
