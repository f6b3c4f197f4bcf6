package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Seed loads the demo dataset. Safe to run on every start: menus, rooms,
// facts and FAQs upsert on their unique keys, and announcements are only
// inserted while the table is empty so restarts do not duplicate them.
func (s *Store) Seed(ctx context.Context) error {
	menu := []MenuDay{
		{Day: "Monday", Breakfast: "Poha & Tea", Lunch: "Dal Fry, Jeera Rice, Salad", Dinner: "Roti, Mix Veg, Kheer"},
		{Day: "Tuesday", Breakfast: "Idli Sambhar & Coffee", Lunch: "Rajma Chawal, Pickle", Dinner: "Roti, Paneer Butter Masala, Rice"},
		{Day: "Wednesday", Breakfast: "Upma & Tea", Lunch: "Chole Puri, Onion Salad", Dinner: "Veg Pulao, Raita, Papad"},
		{Day: "Thursday", Breakfast: "Aloo Paratha & Curd", Lunch: "Kadhi Chawal, Pickle", Dinner: "Roti, Aloo Gobi, Dal"},
		{Day: "Friday", Breakfast: "Bread Sandwich & Tea", Lunch: "Sambhar Rice, Coconut Chutney", Dinner: "Roti, Chicken Curry/Paneer Makhani"},
		{Day: "Saturday", Breakfast: "Puri Bhaji & Tea", Lunch: "Veg Biryani, Boiled Egg, Raita", Dinner: "Roti, Dal Tadka, Jeera Rice"},
		{Day: "Sunday", Breakfast: "Dosa Sambhar & Coffee", Lunch: "Pav Bhaji, Butter", Dinner: "Roti, Veg Kofta, Rice"},
	}
	for _, m := range menu {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO mess_menu (day, breakfast, lunch, dinner)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (day) DO NOTHING
		`, m.Day, m.Breakfast, m.Lunch, m.Dinner); err != nil {
			return fmt.Errorf("failed to seed menu for %s: %w", m.Day, err)
		}
	}

	faqs := []FAQ{
		{Question: "What are visitor timings?", Answer: "Visitors are allowed 5–7 PM on weekdays, 10 AM–1 PM on Sundays. Valid ID required at gate."},
		{Question: "Who is the warden?", Answer: "Ms. Priya Sharma. Contact: +91-98xxxxxx01, Office: Ground floor, 8 AM–6 PM."},
		{Question: "What are mess timings?", Answer: "Breakfast: 7:30-9:30 AM, Lunch: 12:30-2:30 PM, Dinner: 7:30-9:30 PM"},
		{Question: "WiFi password?", Answer: "HostelWiFi2024. Speed: 50 Mbps. Contact IT desk for issues."},
		{Question: "Laundry service?", Answer: "Pickup: Mon/Wed/Fri 9 AM. Return: Next day 5 PM. ₹50 per load."},
		{Question: "Medical emergency?", Answer: "Call security: 9876543210. Nearest hospital: City General (2 km). First aid: Warden office."},
		{Question: "Room maintenance?", Answer: "Submit complaint via assistant or warden office. Electrical: 24hrs, Plumbing: Same day."},
	}
	for _, f := range faqs {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO faqs (question, answer) VALUES ($1, $2)
			ON CONFLICT (question) DO NOTHING
		`, f.Question, f.Answer); err != nil {
			return fmt.Errorf("failed to seed faq %q: %w", f.Question, err)
		}
	}

	rooms := []RoomAssignment{
		{RoomNumber: "101", StudentName: "Priya Singh", Contact: "+91-9876543201", Floor: 1, Block: "A"},
		{RoomNumber: "102", StudentName: "Anita Sharma", Contact: "+91-9876543202", Floor: 1, Block: "A"},
		{RoomNumber: "103", StudentName: "Meera Patel", Contact: "+91-9876543203", Floor: 1, Block: "A"},
		{RoomNumber: "201", StudentName: "Kavya Reddy", Contact: "+91-9876543204", Floor: 2, Block: "A"},
		{RoomNumber: "202", StudentName: "Sneha Gupta", Contact: "+91-9876543205", Floor: 2, Block: "A"},
		{RoomNumber: "26", StudentName: "Riya Jain", Contact: "+91-9876543206", Floor: 1, Block: "B"},
		{RoomNumber: "301", StudentName: "Divya Kumar", Contact: "+91-9876543207", Floor: 3, Block: "A"},
		{RoomNumber: "302", StudentName: "Pooja Agarwal", Contact: "+91-9876543208", Floor: 3, Block: "A"},
	}
	for _, r := range rooms {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO room_assignments (room_number, student_name, contact, floor, block)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (room_number) DO NOTHING
		`, r.RoomNumber, r.StudentName, r.Contact, r.Floor, r.Block); err != nil {
			return fmt.Errorf("failed to seed room %s: %w", r.RoomNumber, err)
		}
	}

	facts := []struct{ key, value, description string }{
		{"total_rooms", "150", "Total number of rooms in hostel"},
		{"total_floors", "4", "Number of floors"},
		{"mess_capacity", "200", "Maximum mess seating capacity"},
		{"warden_office", "Ground Floor, Block A", "Warden office location"},
		{"security_number", "9876543210", "24x7 security contact"},
	}
	for _, f := range facts {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO hostel_info (key, value, description)
			VALUES ($1, $2, $3)
			ON CONFLICT (key) DO NOTHING
		`, f.key, f.value, f.description); err != nil {
			return fmt.Errorf("failed to seed hostel info %s: %w", f.key, err)
		}
	}

	// Announcements have no natural key, so guard on emptiness instead of
	// upserting. Re-running seed never duplicates them.
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count announcements: %w", err)
	}
	if count > 0 {
		log.Debug().Int("existing", count).Msg("announcements already seeded, skipping")
		return nil
	}

	announcements := []Announcement{
		{Title: "Water Filter Maintenance", Body: "2nd-floor RO will be serviced today 2–4 PM. Use ground floor dispenser."},
		{Title: "Power Backup Drill", Body: "Brief generator test at 7:30 PM. Expect 2-minute switchover."},
		{Title: "Laundry Schedule", Body: "Laundry pickup: Mon/Wed/Fri at 9 AM. Return: Next day 5 PM."},
		{Title: "Room Inspection", Body: "Weekly room inspection on Saturday 11 AM. Please keep rooms tidy."},
		{Title: "Study Hall Extension", Body: "Study hall will remain open till midnight during exam week."},
	}
	for _, a := range announcements {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO announcements (title, body, created_at) VALUES ($1, $2, NOW())
		`, a.Title, a.Body); err != nil {
			return fmt.Errorf("failed to seed announcement %q: %w", a.Title, err)
		}
	}

	log.Info().Msg("demo data seeded")
	return nil
}
