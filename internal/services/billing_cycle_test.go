package services

import (
	"testing"
	"time"
)

func TestCurrentCycle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "on the 21st the cycle starts today",
			now:       time.Date(2026, time.August, 21, 9, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.August, 21, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.September, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		},
		{
			name:      "on the 20th the cycle started last month",
			now:       time.Date(2026, time.August, 20, 23, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, time.July, 21, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		},
		{
			name:      "january wraps into the previous year",
			now:       time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		},
		{
			name:      "december cycle ends next year",
			now:       time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.January, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		},
		{
			name:      "non-UTC instants are normalized to UTC days",
			now:       time.Date(2026, time.August, 21, 2, 0, 0, 0, time.FixedZone("UTC+5", 5*3600)),
			wantStart: time.Date(2026, time.July, 21, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, time.August, 20, 23, 59, 59, 999*int(time.Millisecond), time.UTC),
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			window := CurrentCycle(test.now)
			if !window.Start.Equal(test.wantStart) {
				t.Fatalf("start = %v, want %v", window.Start, test.wantStart)
			}
			if !window.End.Equal(test.wantEnd) {
				t.Fatalf("end = %v, want %v", window.End, test.wantEnd)
			}
		})
	}
}

func TestCycleWindowContainsIsInclusive(t *testing.T) {
	t.Parallel()

	window := CurrentCycle(time.Date(2026, time.August, 25, 0, 0, 0, 0, time.UTC))

	if !window.Contains(window.Start) {
		t.Fatal("expected window to contain its start instant")
	}
	if !window.Contains(window.End) {
		t.Fatal("expected window to contain its end instant")
	}
	if window.Contains(window.Start.Add(-time.Millisecond)) {
		t.Fatal("expected instant before start to be outside")
	}
	if window.Contains(window.End.Add(time.Millisecond)) {
		t.Fatal("expected instant after end to be outside")
	}
}

func TestDateOnlyUTC(t *testing.T) {
	t.Parallel()

	value := time.Date(2026, time.August, 21, 3, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))
	got := DateOnlyUTC(value)
	want := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnlyUTC = %v, want %v", got, want)
	}
}
