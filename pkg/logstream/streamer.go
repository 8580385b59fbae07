package logstream

import (
	"encoding/json"
	"sync"
)

// Streamer correlates a planning run on a background goroutine with the SSE
// handler consuming its progress. Each stream is a buffered channel: the
// consumer blocks on receive and wakes on arrival, FIFO per stream. Emit to
// a missing stream is a silent drop, as is emit to a full buffer; progress
// messages must never stall the pipeline.
type Streamer struct {
	mu      sync.Mutex
	streams map[string]chan string
	buffer  int
}

const defaultBuffer = 256

func New() *Streamer {
	return &Streamer{streams: make(map[string]chan string), buffer: defaultBuffer}
}

// Create allocates the queue for id and returns its receive side.
func (s *Streamer) Create(id string) <-chan string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan string, s.buffer)
	s.streams[id] = ch
	return ch
}

// Emit enqueues message on stream id if it exists.
func (s *Streamer) Emit(id, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.streams[id]
	if !ok {
		return
	}
	select {
	case ch <- message:
	default:
	}
}

// Close removes the stream and closes its channel, ending the consumer's
// range loop once it has drained the buffer.
func (s *Streamer) Close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch, ok := s.streams[id]
	if !ok {
		return
	}
	delete(s.streams, id)
	close(ch)
}

// Has reports whether a stream is registered for id.
func (s *Streamer) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.streams[id]
	return ok
}

// Event is the SSE envelope: {"type":"log"|"result"|"error", ...}.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func LogEvent(message string) string { return marshal(Event{Type: "log", Message: message}) }

func ErrorEvent(message string) string { return marshal(Event{Type: "error", Message: message}) }

func ResultEvent(data any) string { return marshal(Event{Type: "result", Data: data}) }

func marshal(e Event) string {
	b, err := json.Marshal(e)
	if err != nil {
		b, _ = json.Marshal(Event{Type: "error", Message: "内部错误: 无法序列化事件"})
	}
	return string(b)
}
