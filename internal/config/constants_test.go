package config

import "testing"

func TestConstants(t *testing.T) {
	if MinMinutes < 1 {
		t.Fatalf("MinMinutes must be at least 1")
	}
	if MaxMinutes < MinMinutes {
		t.Fatalf("MaxMinutes must not be below MinMinutes")
	}
	if DefaultMinutes < MinMinutes || DefaultMinutes > MaxMinutes {
		t.Fatalf("DefaultMinutes out of range: %d", DefaultMinutes)
	}
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if ArcRadius <= 0 {
		t.Fatalf("ArcRadius must be positive")
	}
	if DialPositions%LabelEvery != 0 {
		t.Fatalf("DialPositions must be a multiple of LabelEvery")
	}
	if AppName == "" || LogFileName == "" {
		t.Fatalf("AppName and LogFileName should not be empty")
	}
	if EventBuffer <= 0 {
		t.Fatalf("EventBuffer must be positive")
	}
}

func TestLayoutConstants(t *testing.T) {
	if MinDialRows > DefaultDialRows || DefaultDialRows > MaxDialRows {
		t.Fatalf("dial row bounds out of order: %d %d %d", MinDialRows, DefaultDialRows, MaxDialRows)
	}
	if MinDialRows%2 == 0 || DefaultDialRows%2 == 0 || MaxDialRows%2 == 0 {
		t.Fatalf("dial rows must be odd so the centre falls on a row")
	}
	if MinProgressBarWidth > ProgressBarWidth {
		t.Fatalf("MinProgressBarWidth must not exceed ProgressBarWidth")
	}
}
