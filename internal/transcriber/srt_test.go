package transcriber

import (
	"testing"
	"time"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:01,830
I'm happy to
have you here today.

2
00:00:01,910 --> 00:00:03,610
As I'm sure you're all aware.
`

func TestParseSRT(t *testing.T) {
	result := ParseSRT(sampleSRT)

	if len(result.Segments) != 2 {
		t.Fatalf("Segments = %d, want 2", len(result.Segments))
	}

	first := result.Segments[0]
	if first.Text != "I'm happy to have you here today." {
		t.Errorf("first segment text = %q", first.Text)
	}
	if first.Start != 0 {
		t.Errorf("first segment start = %v, want 0", first.Start)
	}
	if first.End != 1830*time.Millisecond {
		t.Errorf("first segment end = %v, want 1.83s", first.End)
	}

	second := result.Segments[1]
	if second.Start != 1910*time.Millisecond {
		t.Errorf("second segment start = %v, want 1.91s", second.Start)
	}

	want := "I'm happy to have you here today. As I'm sure you're all aware."
	if result.Transcript != want {
		t.Errorf("Transcript = %q, want %q", result.Transcript, want)
	}
}

func TestParseSRTEmpty(t *testing.T) {
	result := ParseSRT("")
	if len(result.Segments) != 0 {
		t.Errorf("Segments = %d, want 0", len(result.Segments))
	}
	if result.Transcript != "" {
		t.Errorf("Transcript = %q, want empty", result.Transcript)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"00:00:00,000", 0},
		{"00:01:30,500", 90*time.Second + 500*time.Millisecond},
		{"01:00:00,000", time.Hour},
		{"garbage", 0},
	}

	for _, tt := range tests {
		if got := parseTimestamp(tt.in); got != tt.want {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
