package history_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"ulascansenturk/weather-lookup/internal/history"
	"ulascansenturk/weather-lookup/internal/presentation"
)

type InMemoryStoreTestSuite struct {
	suite.Suite
	store *history.InMemoryStore
}

func (s *InMemoryStoreTestSuite) SetupTest() {
	s.store = history.NewInMemoryStore()
}

func entryFor(location, temperature string) history.Entry {
	return history.NewEntry(presentation.Summary{
		Location:    location,
		Temperature: temperature,
		Description: "Sunny",
		IconID:      "sun.max",
	})
}

func (s *InMemoryStoreTestSuite) TestEmptyStore() {
	s.Equal(0, s.store.Len())
	s.Empty(s.store.List())
}

func (s *InMemoryStoreTestSuite) TestAppendKeepsInsertionOrder() {
	s.store.Append(entryFor("Paris", "22.5°C"))
	s.store.Append(entryFor("Berlin", "15.0°C"))
	s.store.Append(entryFor("Paris", "22.5°C"))

	entries := s.store.List()

	s.Require().Len(entries, 3)
	s.Equal("Paris", entries[0].Location)
	s.Equal("Berlin", entries[1].Location)
	s.Equal("Paris", entries[2].Location)
	s.NotEqual(entries[0].ID, entries[2].ID)
}

func (s *InMemoryStoreTestSuite) TestListReturnsCopy() {
	s.store.Append(entryFor("Paris", "22.5°C"))

	entries := s.store.List()
	entries[0].Temperature = "changed"

	s.Equal("22.5°C", s.store.List()[0].Temperature)
}

func (s *InMemoryStoreTestSuite) TestNewEntry() {
	entry := entryFor("Tokyo", "30.5°C")

	s.NotEqual(uuid.Nil, entry.ID)
	s.False(entry.CapturedAt.IsZero())
	s.Equal([]string{
		"Location: Tokyo",
		"Temperature: 30.5°C",
		"Description: Sunny",
	}, entry.Lines())
}

func (s *InMemoryStoreTestSuite) TestLocalizedDoesNotMutateEntry() {
	entry := entryFor("Tokyo", "20.0°C")

	localized := entry.Localized(presentation.Fahrenheit)

	s.Equal("68.0°F", localized.Temperature)
	s.Equal("20.0°C", entry.Temperature)
	s.Equal(entry.ID, localized.ID)
}

func (s *InMemoryStoreTestSuite) TestConcurrentAppend() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.store.Append(entryFor(fmt.Sprintf("City%d", i), "10.0°C"))
		}(i)
	}
	wg.Wait()

	s.Equal(50, s.store.Len())
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreTestSuite))
}
