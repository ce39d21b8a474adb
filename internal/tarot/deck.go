package tarot

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/johnconnor-sec/seer-go/internal/errors"
)

// DeckType names the deck a reading was drawn from.
type DeckType string

const DeckStandard DeckType = "Standard"

// StandardDeckSize is 22 Major plus 4 suits of 14.
const StandardDeckSize = 78

// Deck is an ordered, immutable set of cards.
type Deck struct {
	Type  DeckType
	cards []Card
}

// NewDeck builds the standard 78-card deck.
func NewDeck() *Deck {
	cards := majorCards()
	for _, suit := range Suits {
		cards = append(cards, minorCards(suit)...)
	}
	return &Deck{Type: DeckStandard, cards: cards}
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck in order.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

// Find looks a card up by name, ignoring case.
func (d *Deck) Find(name string) (Card, bool) {
	for _, c := range d.cards {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Card{}, false
}

// Draw deals n distinct cards into positions 0..n-1, each upright or reversed.
func (d *Deck) Draw(n int, rng *rand.Rand) ([]DrawnCard, error) {
	if n < 1 || n > len(d.cards) {
		return nil, errors.ValidationError("cards", fmt.Sprint(n),
			fmt.Sprintf("must draw between 1 and %d cards", len(d.cards)))
	}

	order := rng.Perm(len(d.cards))
	drawn := make([]DrawnCard, n)
	for i := range drawn {
		drawn[i] = DrawnCard{
			Card:     d.cards[order[i]],
			Position: i,
			Reversed: rng.IntN(2) == 1,
		}
	}
	return drawn, nil
}
