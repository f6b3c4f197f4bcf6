package assistant

import (
	"context"
	"time"

	"hostel-assistant-backend/internal/store"
)

// mealPlaceholder fills menu fields for a weekday with no seeded row.
const mealPlaceholder = "TBD"

// Gateway is the read surface the context builder needs from the store.
type Gateway interface {
	MenuForDay(ctx context.Context, day string) (store.MenuDay, bool, error)
	WeeklyMenu(ctx context.Context) ([]store.MenuDay, error)
	RecentAnnouncements(ctx context.Context, limit int) ([]store.Announcement, error)
	AllFAQs(ctx context.Context) ([]store.FAQ, error)
	RoomRoster(ctx context.Context) ([]store.RoomAssignment, error)
	HostelFacts(ctx context.Context) (map[string]string, error)
}

// ContextBuilder assembles the per-request hostel snapshot. Read-only; every
// collection defaults to empty so a bare database still yields a usable
// context.
type ContextBuilder struct {
	store             Gateway
	announcementLimit int
	now               func() time.Time
}

func NewContextBuilder(g Gateway, announcementLimit int) *ContextBuilder {
	if announcementLimit <= 0 {
		announcementLimit = 5
	}
	return &ContextBuilder{store: g, announcementLimit: announcementLimit, now: time.Now}
}

func (b *ContextBuilder) Build(ctx context.Context, profile UserProfile) (Context, error) {
	day := b.now().Weekday().String()

	today, ok, err := b.store.MenuForDay(ctx, day)
	if err != nil {
		return Context{}, err
	}
	if !ok {
		today = store.MenuDay{Day: day, Breakfast: mealPlaceholder, Lunch: mealPlaceholder, Dinner: mealPlaceholder}
	}

	weekly, err := b.store.WeeklyMenu(ctx)
	if err != nil {
		return Context{}, err
	}
	announcements, err := b.store.RecentAnnouncements(ctx, b.announcementLimit)
	if err != nil {
		return Context{}, err
	}
	faqs, err := b.store.AllFAQs(ctx)
	if err != nil {
		return Context{}, err
	}
	rooms, err := b.store.RoomRoster(ctx)
	if err != nil {
		return Context{}, err
	}
	facts, err := b.store.HostelFacts(ctx)
	if err != nil {
		return Context{}, err
	}

	c := Context{
		TodayMenu:     today,
		WeeklyMenu:    weekly,
		Announcements: announcements,
		FAQs:          faqs,
		Rooms:         rooms,
		HostelInfo:    facts,
		UserProfile:   profile,
	}
	// Collections marshal as [] / {}, never null.
	if c.WeeklyMenu == nil {
		c.WeeklyMenu = []store.MenuDay{}
	}
	if c.Announcements == nil {
		c.Announcements = []store.Announcement{}
	}
	if c.FAQs == nil {
		c.FAQs = []store.FAQ{}
	}
	if c.Rooms == nil {
		c.Rooms = []store.RoomAssignment{}
	}
	if c.HostelInfo == nil {
		c.HostelInfo = map[string]string{}
	}
	return c, nil
}
