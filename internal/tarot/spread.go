package tarot

import (
	"fmt"
	"strings"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// SpreadType identifies a layout of cards.
type SpreadType string

const (
	DailyReading      SpreadType = "DailyReading"
	PastPresentFuture SpreadType = "PastPresentFuture"
)

// SpreadPosition is one slot of a spread.
type SpreadPosition struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// Spread is a named layout. Build it with NewSpread.
type Spread struct {
	Type        SpreadType
	Name        string
	Description string
	Positions   []SpreadPosition
	// OncePerDay limits each user to one reading of this spread per calendar day.
	OncePerDay bool
}

// NewSpread validates and builds a spread.
func NewSpread(t SpreadType, name, description string, positions []SpreadPosition) (Spread, error) {
	if strings.TrimSpace(name) == "" {
		return Spread{}, errors.ValidationError("name", name, "spread name cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return Spread{}, errors.ValidationError("description", description, "spread description cannot be empty")
	}
	if len(positions) == 0 {
		return Spread{}, errors.ValidationError("positions", "[]", "a spread must have at least one position")
	}

	return Spread{
		Type:        t,
		Name:        name,
		Description: description,
		Positions:   append([]SpreadPosition(nil), positions...),
	}, nil
}

// CardCount is the number of positions.
func (s Spread) CardCount() int {
	return len(s.Positions)
}

func (s Spread) String() string {
	return fmt.Sprintf("%s (%s): %d card(s)", s.Name, s.Type, s.CardCount())
}

// SpreadService is the catalogue of known spreads.
type SpreadService struct {
	order   []SpreadType
	spreads map[SpreadType]Spread
}

// NewSpreadService registers the built-in spreads.
func NewSpreadService() *SpreadService {
	s := &SpreadService{spreads: make(map[SpreadType]Spread)}

	daily := mustSpread(NewSpread(DailyReading, "Daily Reading",
		"This, my friend, is a chance to glimpse your day ahead of it happening. One card, for one day. What say you, Traveler?",
		[]SpreadPosition{
			{0, "The One Light", "In this reading, that may only be offered once per day, the One Light will illuminate what's ahead of you; good or evil, this will show what awaits you."},
		}))
	daily.OncePerDay = true
	s.register(daily)

	s.register(mustSpread(NewSpread(PastPresentFuture, "Past, Present and Future",
		"Three cards laid in a line: what was, what is, and what may yet come to pass.",
		[]SpreadPosition{
			{0, "The Past", "The roots of your question, and what still echoes from it."},
			{1, "The Present", "The forces at work around you now."},
			{2, "The Future", "Where the path leads if nothing changes."},
		})))

	return s
}

func mustSpread(s Spread, err error) Spread {
	if err != nil {
		panic(err)
	}
	return s
}

func (s *SpreadService) register(spread Spread) {
	if _, exists := s.spreads[spread.Type]; !exists {
		s.order = append(s.order, spread.Type)
	}
	s.spreads[spread.Type] = spread
}

// Get returns the spread or a SpreadNotFound error.
func (s *SpreadService) Get(t SpreadType) (Spread, error) {
	if spread, ok := s.spreads[t]; ok {
		return spread, nil
	}
	return Spread{}, errors.SpreadNotFoundError(string(t))
}

// Lookup reports whether t is known.
func (s *SpreadService) Lookup(t SpreadType) (Spread, bool) {
	spread, ok := s.spreads[t]
	return spread, ok
}

// All returns the spreads in registration order.
func (s *SpreadService) All() []Spread {
	all := make([]Spread, len(s.order))
	for i, t := range s.order {
		all[i] = s.spreads[t]
	}
	return all
}

// Names returns the display names in registration order.
func (s *SpreadService) Names() []string {
	names := make([]string, len(s.order))
	for i, t := range s.order {
		names[i] = s.spreads[t].Name
	}
	return names
}

// CardCount returns how many cards t deals.
func (s *SpreadService) CardCount(t SpreadType) (int, error) {
	spread, err := s.Get(t)
	if err != nil {
		return 0, err
	}
	return spread.CardCount(), nil
}
