package history

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"ulascansenturk/weather-lookup/internal/presentation"
)

// Entry is a formatted snapshot of one successful lookup. Temperature keeps
// the unit that was active when the entry was captured.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	Location    string    `json:"location"`
	Temperature string    `json:"temperature"`
	Description string    `json:"description"`
	IconID      string    `json:"icon_id"`
	CapturedAt  time.Time `json:"captured_at"`
}

func NewEntry(summary presentation.Summary) Entry {
	return Entry{
		ID:          uuid.New(),
		Location:    summary.Location,
		Temperature: summary.Temperature,
		Description: summary.Description,
		IconID:      summary.IconID,
		CapturedAt:  time.Now(),
	}
}

func (e Entry) Lines() []string {
	return []string{
		"Location: " + e.Location,
		"Temperature: " + e.Temperature,
		"Description: " + e.Description,
	}
}

// Localized returns a copy whose temperature is re-expressed in unit.
func (e Entry) Localized(unit presentation.UnitPreference) Entry {
	e.Temperature = presentation.Localize(e.Temperature, unit)
	return e
}

type Store interface {
	Append(entry Entry)
	List() []Entry
	Len() int
}

// InMemoryStore keeps entries in insertion order for the life of the
// process. Entries are never deduplicated or expired.
type InMemoryStore struct {
	entries []Entry
	mutex   sync.Mutex
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (m *InMemoryStore) Append(entry Entry) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.entries = append(m.entries, entry)
}

func (m *InMemoryStore) List() []Entry {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

func (m *InMemoryStore) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.entries)
}
