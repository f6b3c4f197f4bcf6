package assistant

import (
	"context"
	"fmt"
	"strings"

	"hostel-assistant-backend/internal/store"
)

const defaultCategory = "Other"

// ComplaintWriter is the write surface the ticketer needs from the store.
type ComplaintWriter interface {
	CreateComplaint(ctx context.Context, c store.NewComplaint) (int, error)
}

// Ticketer turns a complete complaint classification into a persisted
// ticket.
type Ticketer struct {
	store ComplaintWriter
}

func NewTicketer(w ComplaintWriter) *Ticketer {
	return &Ticketer{store: w}
}

// MaybeCreateTicket opens a ticket iff the classifier asserted a complete
// complaint (COMPLAINT_REGISTRATION with no followup needed). The returned
// result carries the generated ticket id; the id is read back only after the
// insert committed. A store failure propagates so no ticket number is ever
// reported without a backing row.
func (t *Ticketer) MaybeCreateTicket(ctx context.Context, result IntentResult, profile UserProfile) (IntentResult, error) {
	if result.Intent != IntentComplaint || result.NeedsFollowup {
		return result, nil
	}

	category := strings.TrimSpace(result.Slots["category"])
	if category == "" {
		category = defaultCategory
	}

	id, err := t.store.CreateComplaint(ctx, store.NewComplaint{
		Name:     optional(profile.Name),
		Room:     optional(profile.Room),
		Contact:  optional(profile.Contact),
		Category: category,
		Details:  result.Slots["details"],
	})
	if err != nil {
		return result, fmt.Errorf("failed to register complaint: %w", err)
	}

	result.TicketID = id
	// Skip the acknowledgement when the model already produced one.
	if !strings.Contains(strings.ToLower(result.Answer), "logged") {
		ack := fmt.Sprintf("Your complaint has been logged (Ticket #%d) under '%s'. We will update you upon resolution.", id, category)
		result.Answer = strings.TrimSpace(result.Answer) + "\n\n" + ack
	}
	return result, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
