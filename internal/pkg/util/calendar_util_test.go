package util

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		want  int
	}{
		{"31天月份", 2025, 1, 31},
		{"30天月份", 2025, 6, 30},
		{"平年二月", 2025, 2, 28},
		{"闰年二月", 2024, 2, 29},
		{"世纪闰年", 2000, 2, 29},
		{"世纪平年", 2100, 2, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestEnumerateDays(t *testing.T) {
	days := EnumerateDays(2025, 6)
	if len(days) != 30 {
		t.Fatalf("len = %d, want 30", len(days))
	}
	if got := days[0].Format(time.DateOnly); got != "2025-06-01" {
		t.Errorf("first day = %s, want 2025-06-01", got)
	}
	if got := days[29].Format(time.DateOnly); got != "2025-06-30" {
		t.Errorf("last day = %s, want 2025-06-30", got)
	}
	for i := 1; i < len(days); i++ {
		if !days[i].After(days[i-1]) {
			t.Errorf("days not ascending at index %d", i)
		}
	}
}

func TestEnumerateMonths(t *testing.T) {
	months := EnumerateMonths(2025)
	if len(months) != 12 {
		t.Fatalf("len = %d, want 12", len(months))
	}
	if months[0] != "2025-01" || months[11] != "2025-12" {
		t.Errorf("unexpected bounds: %s .. %s", months[0], months[11])
	}
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	if got := MonthKey(ts); got != "2025-06" {
		t.Errorf("MonthKey = %s, want 2025-06", got)
	}
}

func TestGetMidnight(t *testing.T) {
	ts := time.Date(2025, 6, 15, 13, 45, 30, 999, time.UTC)
	got := GetMidnight(ts)
	want := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("GetMidnight = %v, want %v", got, want)
	}
}
