package ledger

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatusCompleted = "completed"

	TechnicianAI            = "AI Assistant"
	TechnicianServiceCenter = "Service Center"

	hashLen = 16
)

// Record is one completed service action. Immutable once appended.
type Record struct {
	RecordID      string    `json:"record_id"`
	VehicleID     string    `json:"vehicle_id"`
	Timestamp     time.Time `json:"timestamp"`
	ServiceType   string    `json:"service_type"`
	Details       string    `json:"details"`
	Cost          int       `json:"cost"`
	Technician    string    `json:"technician"`
	Status        string    `json:"status"`
	IntegrityHash string    `json:"integrity_hash"`
}

// Ledger is the process-wide append-only store of service records. The
// underlying order is chronological (append order); Records presents the
// newest first. Append is the only mutation and is safe for concurrent use
// across sessions.
type Ledger struct {
	mu      sync.Mutex
	records []Record
	now     func() time.Time
}

func New() *Ledger {
	return &Ledger{now: time.Now}
}

// Append creates and stores a record for a completed action. cost must be
// non-negative; the technician is derived from it (zero cost means the AI
// resolved it without a service center).
func (l *Ledger) Append(vehicleID, serviceType, details string, cost int) Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := l.now().UTC()
	technician := TechnicianServiceCenter
	if cost == 0 {
		technician = TechnicianAI
	}
	rec := Record{
		RecordID:      uuid.NewString(),
		VehicleID:     vehicleID,
		Timestamp:     ts,
		ServiceType:   serviceType,
		Details:       details,
		Cost:          cost,
		Technician:    technician,
		Status:        StatusCompleted,
		IntegrityHash: integrityHash(ts, serviceType, details),
	}
	l.records = append(l.records, rec)
	return rec
}

// Records returns a reverse-chronological copy for presentation. The store
// itself stays in append order.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Record, len(l.records))
	for i, r := range l.records {
		out[len(l.records)-1-i] = r
	}
	return out
}

func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

func integrityHash(ts time.Time, serviceType, details string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s%s%s", ts.Format(time.RFC3339Nano), serviceType, details)))
	return fmt.Sprintf("%x", sum)[:hashLen]
}
