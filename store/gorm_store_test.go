package store

import (
	"testing"
	"time"
)

func TestNextTimestampAdvancesClock(t *testing.T) {
	past := time.Now().UTC().Add(-time.Hour)
	got := time.Time(nextTimestamp(past))
	if !got.After(past) {
		t.Errorf("nextTimestamp(%v) = %v, expected later", past, got)
	}
}

func TestNextTimestampNudgesPastStalledClock(t *testing.T) {
	// a previous value at or ahead of the wall clock still yields a strictly
	// later timestamp
	tests := []time.Time{
		time.Now().UTC(),
		time.Now().UTC().Add(time.Second),
		time.Now().UTC().Add(time.Minute),
	}
	for _, prev := range tests {
		got := time.Time(nextTimestamp(prev))
		if !got.After(prev) {
			t.Errorf("nextTimestamp(%v) = %v, not strictly later", prev, got)
		}
	}
}
