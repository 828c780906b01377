package profiler

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestTickLogsOncePerInterval(t *testing.T) {
	now := time.Unix(0, 0)
	var lines []string
	p := NewProfiler(
		WithClock(func() time.Time { return now }),
		WithLogger(func(format string, args ...any) { lines = append(lines, fmt.Sprintf(format, args...)) }),
	)

	for range 49 {
		now = now.Add(20 * time.Millisecond)
		if p.Tick(9) {
			t.Fatalf("logged before the interval elapsed at %v", now)
		}
	}
	now = now.Add(20 * time.Millisecond)
	if !p.Tick(9) {
		t.Fatalf("did not log after one second")
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines want 1", len(lines))
	}
	if !strings.HasPrefix(lines[0], "[Profiler] FPS: 50.00 | Frame: 20.00 ms | Objects: 9") {
		t.Fatalf("unexpected line: %q", lines[0])
	}

	now = now.Add(10 * time.Millisecond)
	if p.Tick(9) {
		t.Fatalf("counter was not reset after logging")
	}
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0))
	if p.updateInterval != time.Second {
		t.Fatalf("interval: got %v want 1s", p.updateInterval)
	}
	p = NewProfiler(WithInterval(250 * time.Millisecond))
	if p.updateInterval != 250*time.Millisecond {
		t.Fatalf("interval: got %v want 250ms", p.updateInterval)
	}
}

func TestFormat(t *testing.T) {
	got := Format(59.94, 16.68, 3)
	want := "[Profiler] FPS: 59.94 | Frame: 16.68 ms | Objects: 3"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
