package domain

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type HistoryEntry struct {
	ID        string
	Kind      TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

// History is the append-only log of effective transactions of one account.
type History struct {
	mu      sync.RWMutex
	entries []HistoryEntry
	now     func() time.Time
}

func NewHistory() *History {
	return &History{now: time.Now}
}

func (h *History) Record(kind TransactionKind, amount decimal.Decimal) HistoryEntry {
	entry := HistoryEntry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: h.clock(),
	}

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()

	return entry
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// CountKind counts entries of the given kind recorded at or after since.
// A zero since counts the whole log.
func (h *History) CountKind(kind TransactionKind, since time.Time) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	count := 0
	for _, entry := range h.entries {
		if entry.Kind != kind {
			continue
		}
		if !since.IsZero() && entry.Timestamp.Before(since) {
			continue
		}
		count++
	}
	return count
}

func (h *History) clock() time.Time {
	if h.now == nil {
		return time.Now()
	}
	return h.now()
}
