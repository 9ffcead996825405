package event

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestMinutesClampsInvertedSpan(t *testing.T) {
	start := time.Date(2025, time.March, 3, 15, 0, 0, 0, time.UTC)
	e := New("x", start, start.Add(-time.Hour), "")
	if got := e.Minutes(); got != 0 {
		t.Fatalf("expected 0 minutes for inverted span, got %d", got)
	}
	if got := e.Duration(); got != 0 {
		t.Fatalf("expected 0 duration for inverted span, got %v", got)
	}
}

func TestMinutes(t *testing.T) {
	start := time.Date(2025, time.March, 3, 14, 0, 0, 0, time.UTC)
	e := New("x", start, start.Add(90*time.Minute), "task_1")
	if got := e.Minutes(); got != 90 {
		t.Fatalf("expected 90 minutes, got %d", got)
	}
	if !e.Linked() {
		t.Fatalf("expected event to be linked")
	}
}

func TestTimestampRoundTrip(t *testing.T) {
	start := time.Date(2025, time.March, 3, 14, 30, 0, 0, time.UTC)
	e := New("deep work", start, start.Add(time.Hour), "task_9")

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"start":"2025-03-03T14:30:00Z"`) {
		t.Fatalf("expected ISO-8601 start, got %s", data)
	}

	var back Event
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Start.Equal(start) || !back.End.Equal(start.Add(time.Hour)) {
		t.Fatalf("round trip changed the span: %v..%v", back.Start, back.End)
	}
	if back.TaskID != "task_9" {
		t.Fatalf("round trip lost the task link: %q", back.TaskID)
	}
}

func TestSameDay(t *testing.T) {
	morning := Timestamp{Time: time.Date(2025, time.March, 3, 9, 0, 0, 0, time.Local)}
	if !morning.SameDay(time.Date(2025, time.March, 3, 23, 45, 0, 0, time.Local)) {
		t.Fatalf("events on the same calendar day must group together")
	}
	if morning.SameDay(time.Date(2025, time.March, 4, 0, 15, 0, 0, time.Local)) {
		t.Fatalf("the midnight boundary must split days")
	}
}

func TestTimestampRejectsGarbage(t *testing.T) {
	var e Event
	if err := json.Unmarshal([]byte(`{"id":"ev_1","start":"yesterday-ish","end":""}`), &e); err == nil {
		t.Fatalf("expected parse error for malformed timestamp")
	}
}
