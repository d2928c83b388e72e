package log

import (
	"strings"
	"testing"
)

func TestMemoryRecorderSequencesMessages(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Log("first")
	rec.Logf("second %d", 2)

	msgs := rec.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Seq >= msgs[1].Seq {
		t.Error("sequence numbers should increase")
	}
	if msgs[1].Text != "second 2" {
		t.Errorf("expected formatted text, got %q", msgs[1].Text)
	}
}

func TestMemoryRecorderContains(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Log("Deal 3 damage to the rival.")
	if !rec.Contains("3 damage") {
		t.Error("expected substring match")
	}
	if rec.Contains("heal") {
		t.Error("unexpected match")
	}
}

func TestTextRecorderWrites(t *testing.T) {
	var sb strings.Builder
	rec := NewTextRecorder(&sb)
	rec.Log("hello")
	rec.Logf("%d world", 1)

	out := sb.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "1 world") {
		t.Errorf("expected both messages written, got %q", out)
	}
	if len(rec.Messages()) != 2 {
		t.Error("text recorder should also retain messages")
	}
}

func TestFormatAll(t *testing.T) {
	rec := NewMemoryRecorder()
	rec.Log("a")
	rec.Log("b")
	out := FormatAll(rec.Messages())
	if !strings.Contains(out, "a") || !strings.Contains(out, "b") {
		t.Errorf("expected both lines, got %q", out)
	}
}
