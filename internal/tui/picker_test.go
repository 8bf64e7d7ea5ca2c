package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfriesen/tend/internal/habit"
)

func testHabits(names ...string) []habit.Habit {
	out := make([]habit.Habit, len(names))
	for i, n := range names {
		out[i] = habit.Habit{ID: i + 1, Name: n, Periodicity: habit.Daily}
	}
	return out
}

func newTestPicker(names ...string) *HabitPicker {
	p := &HabitPicker{
		title:      "Which habit?",
		height:     10,
		habits:     testHabits(names...),
		termHeight: 24,
	}
	p.applyFilter()
	return p
}

func TestPicker_ShowsAllInitially(t *testing.T) {
	p := newTestPicker("Exercise", "Read a Book", "Meditate")
	if len(p.filtered) != 3 {
		t.Fatalf("all habits should be visible initially, got %d", len(p.filtered))
	}
}

func TestPicker_FilteringByQuery(t *testing.T) {
	p := newTestPicker("Exercise", "Read a Book", "Run")

	// "r" matches all three (exeRcise, Read, Run).
	p.query = "r"
	p.applyFilter()
	if len(p.filtered) != 3 {
		t.Fatalf("query 'r' should match 3 habits, got %d", len(p.filtered))
	}

	// "rea" matches Read a Book only.
	p.query = "rea"
	p.applyFilter()
	if len(p.filtered) != 1 || p.filtered[0].habit.Name != "Read a Book" {
		t.Fatalf("query 'rea' should match only Read a Book, got %d items", len(p.filtered))
	}

	// Clear query — everything reappears.
	p.query = ""
	p.applyFilter()
	if len(p.filtered) != 3 {
		t.Fatalf("empty query should show all habits, got %d", len(p.filtered))
	}
}

func TestPicker_Navigation(t *testing.T) {
	p := newTestPicker("one", "two", "three")

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.cursor != 1 {
		t.Fatalf("cursor should be 1 after down, got %d", p.cursor)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	if p.cursor != 2 {
		t.Fatalf("cursor should stay at 2 at bottom, got %d", p.cursor)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyUp})
	if p.cursor != 1 {
		t.Fatalf("cursor should be 1 after up, got %d", p.cursor)
	}
}

func TestPicker_EnterSelectsHabit(t *testing.T) {
	p := newTestPicker("one", "two", "three")

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := model.(*HabitPicker)

	if result.chosen == nil || result.chosen.Name != "two" {
		t.Fatalf("enter should choose the habit under the cursor, got %+v", result.chosen)
	}
	if result.canceled {
		t.Fatal("selection should not be marked canceled")
	}
}

func TestPicker_EscCancels(t *testing.T) {
	p := newTestPicker("one")

	model, _ := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	result := model.(*HabitPicker)
	if !result.canceled {
		t.Fatal("esc should cancel the picker")
	}
	if result.chosen != nil {
		t.Fatalf("canceled picker should choose nothing, got %+v", result.chosen)
	}
}

func TestPicker_ViewRendersHabitsAndStatus(t *testing.T) {
	p := newTestPicker("Exercise", "Read a Book")

	view := p.View()
	if !strings.Contains(view, "Exercise") {
		t.Error("view should list Exercise")
	}
	if !strings.Contains(view, "2/2") {
		t.Error("view should show the match count")
	}
	if strings.Contains(view, "No matches") {
		t.Error("view should not say No matches when habits are visible")
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		query, target string
		want          bool
	}{
		{"", "anything", true},
		{"ex", "Exercise", true},
		{"rb", "Read a Book", true}, // word-boundary subsequence
		{"xyz", "Exercise", false},
		{"EXERCISE", "exercise", true}, // case-insensitive
	}
	for _, tt := range tests {
		got, _ := FuzzyMatch(tt.query, tt.target)
		if got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.query, tt.target, got, tt.want)
		}
	}
}

func TestFuzzyMatch_ScoresPrefixHigher(t *testing.T) {
	_, prefix := FuzzyMatch("re", "Read a Book")
	_, scattered := FuzzyMatch("re", "Exercise")
	if prefix <= scattered {
		t.Errorf("prefix match should outscore scattered match: %d vs %d", prefix, scattered)
	}
}
