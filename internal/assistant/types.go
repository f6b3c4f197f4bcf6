package assistant

import "hostel-assistant-backend/internal/store"

// Intent codes the classifier may return.
const (
	IntentMessInfo       = "MESS_INFO"
	IntentFacilityUpdate = "FACILITY_UPDATE"
	IntentComplaint      = "COMPLAINT_REGISTRATION"
	IntentFAQ            = "FAQ"
	IntentGeneric        = "GENERIC"
)

// UserProfile is whatever the client chose to tell us about the user.
// Fields are opaque strings and never validated.
type UserProfile struct {
	Name    string `json:"name,omitempty"`
	Room    string `json:"room,omitempty"`
	Contact string `json:"contact,omitempty"`
}

// Context is the snapshot of hostel state sent to the model and, on the
// hydration path, to the client. Keys follow the wire format the page
// expects.
type Context struct {
	TodayMenu     store.MenuDay          `json:"today_menu"`
	WeeklyMenu    []store.MenuDay        `json:"complete_weekly_menu"`
	Announcements []store.Announcement   `json:"announcements"`
	FAQs          []store.FAQ            `json:"faqs"`
	Rooms         []store.RoomAssignment `json:"room_assignments"`
	HostelInfo    map[string]string      `json:"hostel_info"`
	UserProfile   UserProfile            `json:"user_profile"`
}

// IntentResult is the fixed shape every chat turn resolves to. All fields
// are always present; TicketID is attached only after a complaint row was
// written.
type IntentResult struct {
	Intent        string            `json:"intent"`
	Answer        string            `json:"answer"`
	NeedsFollowup bool              `json:"needs_followup"`
	Slots         map[string]string `json:"slots"`
	TicketID      int               `json:"ticket_id,omitempty"`
}
