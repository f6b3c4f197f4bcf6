package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"hostel-assistant-backend/internal/store"
)

type fakeComplaintWriter struct {
	nextID  int
	err     error
	created []store.NewComplaint
}

func (f *fakeComplaintWriter) CreateComplaint(_ context.Context, c store.NewComplaint) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, c)
	return f.nextID, nil
}

func TestMaybeCreateTicket_OnlyCompleteComplaintsCreate(t *testing.T) {
	tests := []struct {
		name          string
		intent        string
		needsFollowup bool
		wantTicket    bool
	}{
		{"complete complaint", IntentComplaint, false, true},
		{"incomplete complaint", IntentComplaint, true, false},
		{"other intent", IntentMessInfo, false, false},
		{"other intent with followup", IntentGeneric, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &fakeComplaintWriter{nextID: 7}
			tk := NewTicketer(w)

			result := IntentResult{Intent: tt.intent, Answer: "ok", NeedsFollowup: tt.needsFollowup, Slots: map[string]string{}}
			got, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{})
			if err != nil {
				t.Fatalf("MaybeCreateTicket: %v", err)
			}
			if tt.wantTicket {
				if got.TicketID != 7 {
					t.Errorf("ticket_id = %d, want 7", got.TicketID)
				}
				if len(w.created) != 1 {
					t.Errorf("created %d rows, want 1", len(w.created))
				}
			} else {
				if got.TicketID != 0 {
					t.Errorf("ticket_id = %d, want absent", got.TicketID)
				}
				if len(w.created) != 0 {
					t.Errorf("created %d rows, want none", len(w.created))
				}
			}
		})
	}
}

func TestMaybeCreateTicket_CategoryDefaultsToOther(t *testing.T) {
	w := &fakeComplaintWriter{nextID: 1}
	tk := NewTicketer(w)

	result := IntentResult{Intent: IntentComplaint, Answer: "ok", Slots: map[string]string{"category": "  "}}
	if _, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{}); err != nil {
		t.Fatalf("MaybeCreateTicket: %v", err)
	}
	if w.created[0].Category != "Other" {
		t.Errorf("category = %q, want Other", w.created[0].Category)
	}
}

func TestMaybeCreateTicket_SlotsAndProfileCopied(t *testing.T) {
	w := &fakeComplaintWriter{nextID: 12}
	tk := NewTicketer(w)

	result := IntentResult{
		Intent: IntentComplaint,
		Answer: "Got it.",
		Slots:  map[string]string{"category": "Electricity", "details": "light broken in room 101"},
	}
	profile := UserProfile{Name: "A", Room: "101", Contact: "x"}
	got, err := tk.MaybeCreateTicket(context.Background(), result, profile)
	if err != nil {
		t.Fatalf("MaybeCreateTicket: %v", err)
	}

	c := w.created[0]
	if c.Category != "Electricity" || c.Details != "light broken in room 101" {
		t.Errorf("row = %+v", c)
	}
	if c.Name == nil || *c.Name != "A" || c.Room == nil || *c.Room != "101" || c.Contact == nil || *c.Contact != "x" {
		t.Errorf("profile fields = %+v", c)
	}
	if got.TicketID != 12 {
		t.Errorf("ticket_id = %d", got.TicketID)
	}
}

func TestMaybeCreateTicket_EmptyProfileYieldsNullFields(t *testing.T) {
	w := &fakeComplaintWriter{nextID: 3}
	tk := NewTicketer(w)

	result := IntentResult{Intent: IntentComplaint, Answer: "ok", Slots: map[string]string{}}
	if _, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{}); err != nil {
		t.Fatalf("MaybeCreateTicket: %v", err)
	}
	c := w.created[0]
	if c.Name != nil || c.Room != nil || c.Contact != nil {
		t.Errorf("profile fields should be nil: %+v", c)
	}
}

func TestMaybeCreateTicket_AppendsAcknowledgement(t *testing.T) {
	w := &fakeComplaintWriter{nextID: 42}
	tk := NewTicketer(w)

	result := IntentResult{Intent: IntentComplaint, Answer: "I will report it.", Slots: map[string]string{"category": "Plumbing"}}
	got, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{})
	if err != nil {
		t.Fatalf("MaybeCreateTicket: %v", err)
	}
	if !strings.Contains(got.Answer, "Ticket #42") {
		t.Errorf("answer missing ticket number: %q", got.Answer)
	}
	if !strings.Contains(got.Answer, "'Plumbing'") {
		t.Errorf("answer missing category: %q", got.Answer)
	}
	if !strings.HasPrefix(got.Answer, "I will report it.") {
		t.Errorf("original answer should be kept: %q", got.Answer)
	}
}

func TestMaybeCreateTicket_NoDuplicateAcknowledgement(t *testing.T) {
	w := &fakeComplaintWriter{nextID: 8}
	tk := NewTicketer(w)

	answer := "Your complaint has been LOGGED already."
	result := IntentResult{Intent: IntentComplaint, Answer: answer, Slots: map[string]string{}}
	got, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{})
	if err != nil {
		t.Fatalf("MaybeCreateTicket: %v", err)
	}
	if got.Answer != answer {
		t.Errorf("answer changed: %q", got.Answer)
	}
	if got.TicketID != 8 {
		t.Errorf("ticket_id = %d", got.TicketID)
	}
}

func TestMaybeCreateTicket_StoreFailurePropagates(t *testing.T) {
	w := &fakeComplaintWriter{err: errors.New("connection lost")}
	tk := NewTicketer(w)

	result := IntentResult{Intent: IntentComplaint, Answer: "ok", Slots: map[string]string{}}
	got, err := tk.MaybeCreateTicket(context.Background(), result, UserProfile{})
	if err == nil {
		t.Fatal("expected error")
	}
	if got.TicketID != 0 {
		t.Errorf("no ticket id may be reported on failure, got %d", got.TicketID)
	}
}
