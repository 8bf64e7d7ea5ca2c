package tui

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mfriesen/tend/internal/habit"
	"github.com/mfriesen/tend/internal/ui"
)

// HabitPicker is a fuzzy-search selector over habits, used when a command
// that needs a habit is run without naming one.
type HabitPicker struct {
	title  string
	height int

	habits   []habit.Habit
	filtered []scoredHabit
	query    string
	cursor   int
	offset   int // viewport scroll offset
	chosen   *habit.Habit
	canceled bool

	termHeight int
}

type scoredHabit struct {
	habit habit.Habit
	score int
}

// PickHabit shows the picker and returns the selected habit.
// Returns nil and no error if the user canceled.
func PickHabit(title string, habits []habit.Habit) (*habit.Habit, error) {
	p := &HabitPicker{
		title:      title,
		height:     10,
		habits:     habits,
		termHeight: 24,
	}
	p.applyFilter()

	prog := tea.NewProgram(p, tea.WithAltScreen())
	m, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("habit picker: %w", err)
	}
	result := m.(*HabitPicker)
	if result.canceled {
		return nil, nil
	}
	return result.chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// --- Bubbletea model implementation ---

func (p *HabitPicker) Init() tea.Cmd {
	return nil
}

func (p *HabitPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termHeight = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			p.canceled = true
			return p, tea.Quit

		case "enter":
			if len(p.filtered) > 0 {
				h := p.filtered[p.cursor].habit
				p.chosen = &h
			}
			return p, tea.Quit

		case "up", "ctrl+p":
			if p.cursor > 0 {
				p.cursor--
				if p.cursor < p.offset {
					p.offset = p.cursor
				}
			}
			return p, nil

		case "down", "ctrl+n":
			if p.cursor < len(p.filtered)-1 {
				p.cursor++
				vis := p.visibleHeight()
				if p.cursor >= p.offset+vis {
					p.offset = p.cursor - vis + 1
				}
			}
			return p, nil

		case "backspace":
			if len(p.query) > 0 {
				p.query = p.query[:len(p.query)-1]
				p.applyFilter()
			}
			return p, nil

		default:
			if len(msg.String()) == 1 {
				p.query += msg.String()
				p.applyFilter()
			}
			return p, nil
		}
	}
	return p, nil
}

func (p *HabitPicker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}

	// Query input
	prompt := lipgloss.NewStyle().Foreground(ui.Leaf).Bold(true).Render("> ")
	cursor := lipgloss.NewStyle().Foreground(ui.Leaf).Render("▎")
	b.WriteString("  " + prompt + p.query + cursor + "\n\n")

	// Filtered list
	vis := p.visibleHeight()
	end := p.offset + vis
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	} else {
		for i := p.offset; i < end; i++ {
			b.WriteString(p.renderHabit(p.filtered[i].habit, i == p.cursor) + "\n")
		}
	}

	// Status bar
	b.WriteString("\n")
	status := ui.Muted.Render(fmt.Sprintf("  %d/%d", len(p.filtered), len(p.habits)))
	help := ui.Muted.Render(" · ↑↓ navigate · enter select · esc cancel")
	b.WriteString(status + help + "\n")

	return b.String()
}

// --- internal helpers ---

func (p *HabitPicker) visibleHeight() int {
	h := p.height
	if h <= 0 || h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	if h < 3 {
		h = 3
	}
	return h
}

func (p *HabitPicker) applyFilter() {
	p.filtered = nil
	if p.query == "" {
		for _, h := range p.habits {
			p.filtered = append(p.filtered, scoredHabit{habit: h})
		}
	} else {
		for _, h := range p.habits {
			if ok, sc := FuzzyMatch(p.query, h.Name); ok {
				p.filtered = append(p.filtered, scoredHabit{habit: h, score: sc})
			}
		}
		// Sort by score descending (higher is better).
		sortScored(p.filtered)
	}
	p.cursor = 0
	p.offset = 0
}

func (p *HabitPicker) renderHabit(h habit.Habit, selected bool) string {
	pointer := "  "
	nameStyle := lipgloss.NewStyle()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		nameStyle = lipgloss.NewStyle().Foreground(ui.Leaf).Bold(true)
	}

	name := nameStyle.Render(h.Name)
	period := ui.Muted.Render("  " + h.Periodicity.Label())
	return "  " + pointer + name + period
}

// sortScored sorts by score descending using insertion sort (stable, good for small N).
func sortScored(items []scoredHabit) {
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && items[j].score < key.score {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}
