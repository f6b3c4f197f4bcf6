package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hostel-assistant-backend/internal/db"
)

// Store gives typed access to the hostel tables. No business logic lives
// here; callers decide what the rows mean.
type Store struct {
	db *db.DB
}

func New(database *db.DB) *Store {
	return &Store{db: database}
}

// MenuDay is one weekday's mess menu.
type MenuDay struct {
	Day       string `json:"day"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type RoomAssignment struct {
	RoomNumber  string `json:"room_number"`
	StudentName string `json:"student_name"`
	Contact     string `json:"contact"`
	Floor       int    `json:"floor"`
	Block       string `json:"block"`
}

// NewComplaint carries the fields written when a ticket is opened. The
// identity fields are pointers because the user may never have supplied a
// profile.
type NewComplaint struct {
	Name     *string
	Room     *string
	Contact  *string
	Category string
	Details  string
}

type Complaint struct {
	ID        int       `json:"id"`
	Category  string    `json:"category"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ComplaintFilter narrows ListComplaints; empty fields are ignored.
type ComplaintFilter struct {
	Contact string
	Room    string
}

// MenuForDay returns the menu row for a weekday name. The boolean is false
// when no row exists for that day.
func (s *Store) MenuForDay(ctx context.Context, day string) (MenuDay, bool, error) {
	var m MenuDay
	err := s.db.QueryRowContext(ctx,
		`SELECT day, breakfast, lunch, dinner FROM mess_menu WHERE day = $1`, day,
	).Scan(&m.Day, &m.Breakfast, &m.Lunch, &m.Dinner)
	if err == sql.ErrNoRows {
		return MenuDay{}, false, nil
	}
	if err != nil {
		return MenuDay{}, false, fmt.Errorf("failed to get menu for %s: %w", day, err)
	}
	return m, true, nil
}

// WeeklyMenu returns all seeded menu days ordered Monday through Sunday.
func (s *Store) WeeklyMenu(ctx context.Context) ([]MenuDay, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT day, breakfast, lunch, dinner FROM mess_menu
		ORDER BY CASE day
			WHEN 'Monday' THEN 1 WHEN 'Tuesday' THEN 2 WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4 WHEN 'Friday' THEN 5 WHEN 'Saturday' THEN 6
			WHEN 'Sunday' THEN 7 END
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get weekly menu: %w", err)
	}
	defer rows.Close()

	menu := []MenuDay{}
	for rows.Next() {
		var m MenuDay
		if err := rows.Scan(&m.Day, &m.Breakfast, &m.Lunch, &m.Dinner); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		menu = append(menu, m)
	}
	return menu, rows.Err()
}

// RecentAnnouncements returns up to limit announcements, newest first.
func (s *Store) RecentAnnouncements(ctx context.Context, limit int) ([]Announcement, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, body, created_at FROM announcements
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get announcements: %w", err)
	}
	defer rows.Close()

	anns := []Announcement{}
	for rows.Next() {
		var a Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		anns = append(anns, a)
	}
	return anns, rows.Err()
}

// AllFAQs returns every question/answer pair.
func (s *Store) AllFAQs(ctx context.Context) ([]FAQ, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT question, answer FROM faqs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get faqs: %w", err)
	}
	defer rows.Close()

	faqs := []FAQ{}
	for rows.Next() {
		var f FAQ
		if err := rows.Scan(&f.Question, &f.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan faq row: %w", err)
		}
		faqs = append(faqs, f)
	}
	return faqs, rows.Err()
}

// RoomRoster returns every room assignment in numeric room order. Room
// numbers are digit strings, so shorter-then-lexicographic sorts them
// numerically without casting.
func (s *Store) RoomRoster(ctx context.Context) ([]RoomAssignment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT room_number, student_name, contact, floor, block FROM room_assignments
		ORDER BY length(room_number), room_number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get room roster: %w", err)
	}
	defer rows.Close()

	roster := []RoomAssignment{}
	for rows.Next() {
		var r RoomAssignment
		if err := rows.Scan(&r.RoomNumber, &r.StudentName, &r.Contact, &r.Floor, &r.Block); err != nil {
			return nil, fmt.Errorf("failed to scan room row: %w", err)
		}
		roster = append(roster, r)
	}
	return roster, rows.Err()
}

// HostelFacts returns the flat key->value fact table.
func (s *Store) HostelFacts(ctx context.Context) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM hostel_info`)
	if err != nil {
		return nil, fmt.Errorf("failed to get hostel info: %w", err)
	}
	defer rows.Close()

	facts := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan hostel info row: %w", err)
		}
		facts[k] = v
	}
	return facts, rows.Err()
}

// CreateComplaint inserts a complaint row and returns its generated id. The
// id only exists once the insert has committed, so a returned ticket number
// always has a backing row.
func (s *Store) CreateComplaint(ctx context.Context, c NewComplaint) (int, error) {
	var id int
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO complaints (name, room, contact, category, details, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'Open', NOW())
		RETURNING id
	`, c.Name, c.Room, c.Contact, c.Category, c.Details).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create complaint: %w", err)
	}
	return id, nil
}

// ListComplaints returns up to 50 complaints, newest first, matching every
// supplied filter.
func (s *Store) ListComplaints(ctx context.Context, f ComplaintFilter) ([]Complaint, error) {
	q := `SELECT id, category, details, status, created_at FROM complaints`
	args := []any{}
	clauses := []string{}
	if f.Contact != "" {
		args = append(args, f.Contact)
		clauses = append(clauses, fmt.Sprintf("contact = $%d", len(args)))
	}
	if f.Room != "" {
		args = append(args, f.Room)
		clauses = append(clauses, fmt.Sprintf("room = $%d", len(args)))
	}
	for i, c := range clauses {
		if i == 0 {
			q += " WHERE " + c
		} else {
			q += " AND " + c
		}
	}
	q += " ORDER BY id DESC LIMIT 50"

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	defer rows.Close()

	complaints := []Complaint{}
	for rows.Next() {
		var c Complaint
		if err := rows.Scan(&c.ID, &c.Category, &c.Details, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan complaint row: %w", err)
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
