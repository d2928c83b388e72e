package log

import (
	"fmt"
	"io"
	"strings"
)

// Recorder is the interface for recording resolution messages.
// Messages are transient: they describe what an effect did (or why it did
// nothing) during a single resolution, for display to the players.
type Recorder interface {
	Log(text string)
	Logf(format string, args ...any)
	Messages() []Message
}

// Message is a single recorded line.
type Message struct {
	Seq  int
	Text string
}

// --- MemoryRecorder: stores messages in memory for test assertions ---

type MemoryRecorder struct {
	messages []Message
	seq      int
}

func NewMemoryRecorder() *MemoryRecorder {
	return &MemoryRecorder{}
}

func (r *MemoryRecorder) Log(text string) {
	r.seq++
	r.messages = append(r.messages, Message{Seq: r.seq, Text: text})
}

func (r *MemoryRecorder) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

func (r *MemoryRecorder) Messages() []Message {
	return r.messages
}

// Contains reports whether any recorded message contains the given substring.
func (r *MemoryRecorder) Contains(substr string) bool {
	for _, m := range r.messages {
		if strings.Contains(m.Text, substr) {
			return true
		}
	}
	return false
}

// LastMessage returns the most recent message, or a zero message if none.
func (r *MemoryRecorder) LastMessage() Message {
	if len(r.messages) == 0 {
		return Message{}
	}
	return r.messages[len(r.messages)-1]
}

// --- TextRecorder: writes human-readable lines to an io.Writer ---

type TextRecorder struct {
	MemoryRecorder
	w io.Writer
}

func NewTextRecorder(w io.Writer) *TextRecorder {
	return &TextRecorder{w: w}
}

func (r *TextRecorder) Log(text string) {
	r.MemoryRecorder.Log(text)
	fmt.Fprintln(r.w, text)
}

func (r *TextRecorder) Logf(format string, args ...any) {
	r.Log(fmt.Sprintf(format, args...))
}

// FormatAll formats all messages as a multi-line string.
func FormatAll(messages []Message) string {
	var sb strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&sb, "%3d  %s\n", m.Seq, m.Text)
	}
	return sb.String()
}
