package tarot

import (
	"time"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// DrawnCard is a card as it landed in a spread.
type DrawnCard struct {
	Card     Card `json:"card"`
	Position int  `json:"position"`
	Reversed bool `json:"reversed"`
}

// Meaning picks the upright or reversed reading.
func (d DrawnCard) Meaning() string {
	if d.Reversed {
		return d.Card.Reversed
	}
	return d.Card.Upright
}

// Label is the card name, marked when reversed.
func (d DrawnCard) Label() string {
	if d.Reversed {
		return d.Card.Name + " (reversed)"
	}
	return d.Card.Name
}

// Reading is a saved spread for one user.
type Reading struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Type      SpreadType  `json:"type"`
	Deck      DeckType    `json:"deck"`
	Cards     []DrawnCard `json:"cards"`
	Timestamp time.Time   `json:"timestamp"`
	Question  string      `json:"question,omitempty"`
}

// NewReading stamps a new reading. A reading must hold at least one card.
func NewReading(userID uuid.UUID, t SpreadType, deck DeckType, cards []DrawnCard, question string) (Reading, error) {
	if len(cards) == 0 {
		return Reading{}, errors.ValidationError("cards", "[]", "a reading must have at least one card")
	}

	return Reading{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Deck:      deck,
		Cards:     cards,
		Timestamp: time.Now(),
		Question:  question,
	}, nil
}

// SameDay reports whether the reading was taken on the calendar day of t.
func (r Reading) SameDay(t time.Time) bool {
	y1, m1, d1 := r.Timestamp.Local().Date()
	y2, m2, d2 := t.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
