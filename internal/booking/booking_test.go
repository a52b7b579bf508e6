package booking

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/yogi2022/VW-NexaServe-AI-i.mobilothon-5.0/internal/ledger"
)

func TestScheduleSynthesizesSlotAndRecords(t *testing.T) {
	l := ledger.New()
	p := NewPlanner(l, rand.New(rand.NewSource(1)))

	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	slot := p.Schedule("VW-TEST0001", date, "Brake Service")

	if !strings.HasPrefix(slot.BookingID, "VW-APT-") || len(slot.BookingID) != len("VW-APT-")+8 {
		t.Fatalf("unexpected booking id: %q", slot.BookingID)
	}
	if slot.BookingID != strings.ToUpper(slot.BookingID) {
		t.Fatalf("booking id must be upper-case: %q", slot.BookingID)
	}
	if !slot.Date.Equal(date) || slot.Time != "10:00 AM" {
		t.Fatalf("slot not on preferred date: %+v", slot)
	}
	if slot.EstimatedCostINR < 3000 || slot.EstimatedCostINR >= 15000 {
		t.Fatalf("cost estimate out of range: %d", slot.EstimatedCostINR)
	}
	if slot.PartsAvailability != "Confirmed" {
		t.Fatalf("parts availability: %q", slot.PartsAvailability)
	}

	recs := l.Records()
	if len(recs) != 1 {
		t.Fatalf("booking must append one ledger record, got %d", len(recs))
	}
	rec := recs[0]
	if rec.ServiceType != "Appointment Scheduled" || rec.VehicleID != "VW-TEST0001" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Cost != 0 || rec.Technician != ledger.TechnicianAI {
		t.Fatalf("booking record must be zero-cost AI: %+v", rec)
	}
	if !strings.Contains(rec.Details, "Brake Service") || !strings.Contains(rec.Details, "2025-07-15") {
		t.Fatalf("record details missing booking info: %q", rec.Details)
	}
}

func TestScheduleUniqueBookingIDs(t *testing.T) {
	l := ledger.New()
	p := NewPlanner(l, rand.New(rand.NewSource(2)))
	date := time.Now()
	a := p.Schedule("VW-1", date, "Oil Change")
	b := p.Schedule("VW-1", date, "Oil Change")
	if a.BookingID == b.BookingID {
		t.Fatalf("booking ids must be unique")
	}
	if l.Len() != 2 {
		t.Fatalf("each booking appends a record, got %d", l.Len())
	}
}
