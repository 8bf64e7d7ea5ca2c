package habit

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Periodicity is how often a habit is meant to be completed.
type Periodicity string

// Valid periodicity values.
const (
	Daily   Periodicity = "DAILY"
	Weekly  Periodicity = "WEEKLY"
	Monthly Periodicity = "MONTHLY"
)

// ErrInvalidPeriodicity is returned when a periodicity outside
// {DAILY, WEEKLY, MONTHLY} reaches the store or the streak engine.
var ErrInvalidPeriodicity = errors.New("invalid periodicity")

// ParsePeriodicity validates and normalizes a periodicity string.
// Accepts long and short forms, case-insensitive: daily (d), weekly (w), monthly (m).
func ParsePeriodicity(s string) (Periodicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day", "d":
		return Daily, nil
	case "weekly", "week", "w":
		return Weekly, nil
	case "monthly", "month", "m":
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q — valid values: daily (d), weekly (w), monthly (m)", ErrInvalidPeriodicity, s)
	}
}

// Valid reports whether p is one of the known periodicities.
func (p Periodicity) Valid() bool {
	switch p {
	case Daily, Weekly, Monthly:
		return true
	}
	return false
}

// Label returns a short lowercase display label, e.g. "daily".
func (p Periodicity) Label() string {
	return strings.ToLower(string(p))
}

// Habit is a recurring habit being tracked.
type Habit struct {
	ID          int
	Name        string
	Periodicity Periodicity
	CreatedAt   time.Time
}

// Completion records that a habit was done at a point in time.
// Completions are append-only facts; streak math dedups them by period.
type Completion struct {
	ID          int
	HabitID     int
	CompletedAt time.Time
}

// Store handles habit persistence.
type Store struct {
	db *sql.DB
}

// NewStore creates a new habit store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Add creates a new habit and returns its ID. Habit names are unique.
func (s *Store) Add(name string, p Periodicity, createdAt time.Time) (int, error) {
	if !p.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, p)
	}
	res, err := s.db.Exec(
		`INSERT INTO habits (name, periodicity, created_at) VALUES (?, ?, ?)`,
		name, string(p), createdAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return 0, fmt.Errorf("habit %q already exists", name)
		}
		return 0, fmt.Errorf("adding habit: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// Get returns a single habit by ID.
func (s *Store) Get(id int) (*Habit, error) {
	row := s.db.QueryRow(
		`SELECT id, name, periodicity, created_at FROM habits WHERE id = ?`, id,
	)
	h, err := scanHabitRow(row)
	if err != nil {
		return nil, fmt.Errorf("getting habit #%d: %w", id, err)
	}
	if h == nil {
		return nil, fmt.Errorf("habit #%d not found", id)
	}
	return h, nil
}

// GetByName returns a single habit by its unique name.
func (s *Store) GetByName(name string) (*Habit, error) {
	row := s.db.QueryRow(
		`SELECT id, name, periodicity, created_at FROM habits WHERE name = ?`, name,
	)
	h, err := scanHabitRow(row)
	if err != nil {
		return nil, fmt.Errorf("getting habit %q: %w", name, err)
	}
	if h == nil {
		return nil, fmt.Errorf("habit %q not found", name)
	}
	return h, nil
}

// List returns all tracked habits, oldest first.
func (s *Store) List() ([]Habit, error) {
	rows, err := s.db.Query(
		`SELECT id, name, periodicity, created_at FROM habits ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHabitRows(rows)
}

// ListByPeriodicity returns all habits with the given periodicity.
func (s *Store) ListByPeriodicity(p Periodicity) ([]Habit, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, p)
	}
	rows, err := s.db.Query(
		`SELECT id, name, periodicity, created_at FROM habits WHERE periodicity = ? ORDER BY created_at ASC, id ASC`,
		string(p),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHabitRows(rows)
}

// Delete removes a habit. Its completions go with it (FK cascade).
func (s *Store) Delete(id int) error {
	res, err := s.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting habit: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("habit #%d not found", id)
	}
	return nil
}

// AddCompletion records a completion for a habit and returns its ID.
func (s *Store) AddCompletion(habitID int, completedAt time.Time) (int, error) {
	res, err := s.db.Exec(
		`INSERT INTO habit_completions (habit_id, completed_at) VALUES (?, ?)`,
		habitID, completedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, fmt.Errorf("recording completion: %w", err)
	}
	id, _ := res.LastInsertId()
	return int(id), nil
}

// Completions returns all completions for a habit, most recent first.
func (s *Store) Completions(habitID int) ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, completed_at FROM habit_completions
		 WHERE habit_id = ? ORDER BY completed_at DESC, id DESC`,
		habitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletionRows(rows)
}

// AllCompletions returns every completion across all habits, most recent first.
func (s *Store) AllCompletions() ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT id, habit_id, completed_at FROM habit_completions ORDER BY completed_at DESC, id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCompletionRows(rows)
}

// CompletedOn reports whether the habit has at least one completion on the
// given calendar date (UTC). Used by the dashboard's pending count.
func (s *Store) CompletedOn(habitID int, day time.Time) (bool, error) {
	var n int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM habit_completions WHERE habit_id = ? AND DATE(completed_at) = ?`,
		habitID, day.UTC().Format("2006-01-02"),
	).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// scanHabitRow scans a single habit from a sql.Row.
func scanHabitRow(row *sql.Row) (*Habit, error) {
	var h Habit
	var pStr, createdStr string
	if err := row.Scan(&h.ID, &h.Name, &pStr, &createdStr); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	h.Periodicity = Periodicity(pStr)
	h.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
	return &h, nil
}

// scanHabitRows scans sql.Rows into a slice of Habit.
func scanHabitRows(rows *sql.Rows) ([]Habit, error) {
	var habits []Habit
	for rows.Next() {
		var h Habit
		var pStr, createdStr string
		if err := rows.Scan(&h.ID, &h.Name, &pStr, &createdStr); err != nil {
			return nil, err
		}
		h.Periodicity = Periodicity(pStr)
		h.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdStr)
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

// scanCompletionRows scans sql.Rows into a slice of Completion.
func scanCompletionRows(rows *sql.Rows) ([]Completion, error) {
	var completions []Completion
	for rows.Next() {
		var c Completion
		var completedStr string
		if err := rows.Scan(&c.ID, &c.HabitID, &completedStr); err != nil {
			return nil, err
		}
		c.CompletedAt, _ = time.Parse("2006-01-02 15:04:05", completedStr)
		completions = append(completions, c)
	}
	return completions, rows.Err()
}
