package streak

import (
	"testing"
	"time"

	"github.com/mfriesen/tend/internal/habit"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustKey(t *testing.T, date string, p habit.Periodicity) PeriodKey {
	t.Helper()
	k, err := NewPeriodKey(mustDate(date), p)
	if err != nil {
		t.Fatalf("NewPeriodKey(%s, %s): %v", date, p, err)
	}
	return k
}

func TestNewPeriodKey_Daily(t *testing.T) {
	// Time of day is irrelevant — only the date matters.
	morning := time.Date(2024, 1, 5, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, 1, 5, 22, 15, 0, 0, time.UTC)

	k1, err := NewPeriodKey(morning, habit.Daily)
	if err != nil {
		t.Fatal(err)
	}
	k2, _ := NewPeriodKey(evening, habit.Daily)
	if k1 != k2 {
		t.Errorf("same day produced different keys: %v vs %v", k1, k2)
	}
	if got := k1.String(); got != "2024-01-05" {
		t.Errorf("String() = %q, want %q", got, "2024-01-05")
	}
}

func TestNewPeriodKey_WeeklyISOYearBoundary(t *testing.T) {
	// 2024-12-30 is a Monday in ISO week 1 of 2025; 2025-01-02 is the same
	// week. Both must collapse to a single key.
	a := mustKey(t, "2024-12-30", habit.Weekly)
	b := mustKey(t, "2025-01-02", habit.Weekly)
	if a != b {
		t.Errorf("dates in the same ISO week produced different keys: %v vs %v", a, b)
	}
	if got := a.String(); got != "2025-W01" {
		t.Errorf("String() = %q, want %q", got, "2025-W01")
	}
}

func TestNewPeriodKey_WeeklySundayBelongsToWeek(t *testing.T) {
	// 2024-01-07 is a Sunday — it belongs to the week starting Monday 01-01,
	// not the following week.
	sunday := mustKey(t, "2024-01-07", habit.Weekly)
	monday := mustKey(t, "2024-01-01", habit.Weekly)
	if sunday != monday {
		t.Errorf("Sunday mapped to a different week than its Monday: %v vs %v", sunday, monday)
	}
}

func TestNewPeriodKey_Monthly(t *testing.T) {
	a := mustKey(t, "2024-02-01", habit.Monthly)
	b := mustKey(t, "2024-02-29", habit.Monthly)
	if a != b {
		t.Errorf("same month produced different keys: %v vs %v", a, b)
	}
	if got := a.String(); got != "2024-02" {
		t.Errorf("String() = %q, want %q", got, "2024-02")
	}
}

func TestNewPeriodKey_InvalidPeriodicity(t *testing.T) {
	_, err := NewPeriodKey(mustDate("2024-01-01"), habit.Periodicity("HOURLY"))
	if err == nil {
		t.Fatal("expected error for invalid periodicity, got nil")
	}
}

func TestPrev_Daily(t *testing.T) {
	k := mustKey(t, "2024-03-01", habit.Daily)
	want := mustKey(t, "2024-02-29", habit.Daily) // leap year
	if got := k.Prev(); got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}
}

func TestPrev_WeeklyAcrossYearBoundary(t *testing.T) {
	// 2025-W01 starts 2024-12-30; its predecessor is 2024-W52.
	k := mustKey(t, "2025-01-02", habit.Weekly)
	prev := k.Prev()
	if got := prev.String(); got != "2024-W52" {
		t.Errorf("Prev().String() = %q, want %q", got, "2024-W52")
	}
}

func TestPrev_MonthlyVariableLengths(t *testing.T) {
	// March's predecessor is February regardless of February's length.
	k := mustKey(t, "2024-03-15", habit.Monthly)
	want := mustKey(t, "2024-02-10", habit.Monthly)
	if got := k.Prev(); got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}

	// January rolls back to December of the previous year.
	jan := mustKey(t, "2024-01-31", habit.Monthly)
	dec := mustKey(t, "2023-12-01", habit.Monthly)
	if got := jan.Prev(); got != dec {
		t.Errorf("Prev() = %v, want %v", got, dec)
	}
}

func TestFollows_Daily(t *testing.T) {
	a := mustKey(t, "2024-01-01", habit.Daily)
	b := mustKey(t, "2024-01-02", habit.Daily)
	c := mustKey(t, "2024-01-03", habit.Daily)

	if !b.Follows(a) {
		t.Error("01-02 should follow 01-01")
	}
	if c.Follows(a) {
		t.Error("01-03 should not follow 01-01")
	}
	if a.Follows(b) {
		t.Error("Follows is directional — 01-01 does not follow 01-02")
	}
}

func TestFollows_WeeklyAcrossYearBoundary(t *testing.T) {
	// Week-start subtraction, not week-number comparison: 2024-W52 → 2025-W01.
	w52 := mustKey(t, "2024-12-27", habit.Weekly)
	w01 := mustKey(t, "2024-12-30", habit.Weekly)
	if !w01.Follows(w52) {
		t.Errorf("%v should follow %v across the ISO year boundary", w01, w52)
	}
}

func TestFollows_MonthlyRollover(t *testing.T) {
	// Jan 31 and Feb 1 sit in consecutive months.
	jan := mustKey(t, "2024-01-31", habit.Monthly)
	feb := mustKey(t, "2024-02-01", habit.Monthly)
	if !feb.Follows(jan) {
		t.Error("February should follow January")
	}

	// December → January of the next year.
	dec := mustKey(t, "2023-12-25", habit.Monthly)
	if !jan.Follows(dec) {
		t.Error("2024-01 should follow 2023-12")
	}
}

func TestBefore(t *testing.T) {
	a := mustKey(t, "2024-01-01", habit.Daily)
	b := mustKey(t, "2024-01-02", habit.Daily)
	if !a.Before(b) {
		t.Error("01-01 should sort before 01-02")
	}
	if b.Before(a) {
		t.Error("01-02 should not sort before 01-01")
	}
	if a.Before(a) {
		t.Error("a key should not sort before itself")
	}
}
