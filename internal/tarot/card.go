// Package tarot models cards, decks, spreads and the readings drawn from them.
package tarot

import "fmt"

// Arcana splits the deck into trumps and suit cards.
type Arcana string

const (
	Major Arcana = "Major"
	Minor Arcana = "Minor"
)

// Suit of a Minor Arcana card. Major cards have no suit.
type Suit string

const (
	NoSuit    Suit = ""
	Wands     Suit = "Wands"
	Cups      Suit = "Cups"
	Swords    Suit = "Swords"
	Pentacles Suit = "Pentacles"
)

// Suits in deck order.
var Suits = []Suit{Wands, Cups, Swords, Pentacles}

// Card is one face of the deck with its two readings.
type Card struct {
	Name     string `json:"name"`
	Arcana   Arcana `json:"arcana"`
	Suit     Suit   `json:"suit,omitempty"`
	Number   int    `json:"number"`
	Upright  string `json:"upright"`
	Reversed string `json:"reversed"`
}

func (c Card) String() string {
	return c.Name
}

type meaning struct {
	name     string
	upright  string
	reversed string
}

var majorArcana = []meaning{
	{"The Fool", "new beginnings, spontaneity, a leap of faith", "recklessness, hesitation, folly"},
	{"The Magician", "willpower, skill, manifestation", "manipulation, untapped talent, trickery"},
	{"The High Priestess", "intuition, hidden knowledge, the subconscious", "secrets, disconnection from instinct"},
	{"The Empress", "abundance, nurture, fertility", "dependence, smothering, creative block"},
	{"The Emperor", "authority, structure, stability", "rigidity, domination, lack of discipline"},
	{"The Hierophant", "tradition, teaching, conformity", "rebellion, unorthodoxy, new approaches"},
	{"The Lovers", "union, harmony, meaningful choice", "imbalance, misalignment, discord"},
	{"The Chariot", "determination, victory, control", "aggression, lack of direction"},
	{"Strength", "courage, compassion, inner strength", "self-doubt, weakness, raw emotion"},
	{"The Hermit", "introspection, solitude, guidance", "isolation, loneliness, withdrawal"},
	{"Wheel of Fortune", "cycles, fate, turning points", "bad luck, resistance to change"},
	{"Justice", "fairness, truth, cause and effect", "injustice, dishonesty, evasion"},
	{"The Hanged Man", "surrender, pause, new perspective", "stalling, needless sacrifice"},
	{"Death", "endings, transformation, transition", "resistance to change, stagnation"},
	{"Temperance", "balance, moderation, patience", "excess, imbalance, haste"},
	{"The Devil", "bondage, temptation, materialism", "release, breaking free, reclaiming power"},
	{"The Tower", "sudden upheaval, revelation, collapse", "averted disaster, fear of change"},
	{"The Star", "hope, renewal, serenity", "despair, lost faith, discouragement"},
	{"The Moon", "illusion, dreams, uncertainty", "clarity emerging, released fear"},
	{"The Sun", "joy, success, vitality", "temporary gloom, dimmed enthusiasm"},
	{"Judgement", "awakening, reckoning, absolution", "self-doubt, ignoring the call"},
	{"The World", "completion, fulfilment, wholeness", "unfinished business, lack of closure"},
}

var ranks = []meaning{
	{"Ace", "a seed of", "a blocked beginning of"},
	{"Two", "a choice within", "indecision about"},
	{"Three", "growth of", "delays to"},
	{"Four", "stability in", "stagnation in"},
	{"Five", "conflict over", "recovery of"},
	{"Six", "harmony in", "nostalgia for"},
	{"Seven", "a test of", "doubt around"},
	{"Eight", "movement in", "restriction of"},
	{"Nine", "near fulfilment of", "anxiety over"},
	{"Ten", "the culmination of", "the burden of"},
	{"Page", "curiosity about", "immaturity in"},
	{"Knight", "pursuit of", "impulsiveness with"},
	{"Queen", "mastery of inner", "insecurity in"},
	{"King", "command of", "misuse of"},
}

var suitDomains = map[Suit]string{
	Wands:     "passion and ambition",
	Cups:      "feeling and relationships",
	Swords:    "thought and conflict",
	Pentacles: "work and material matters",
}

func majorCards() []Card {
	cards := make([]Card, len(majorArcana))
	for i, m := range majorArcana {
		cards[i] = Card{
			Name:     m.name,
			Arcana:   Major,
			Number:   i,
			Upright:  m.upright,
			Reversed: m.reversed,
		}
	}
	return cards
}

func minorCards(suit Suit) []Card {
	domain := suitDomains[suit]
	cards := make([]Card, len(ranks))
	for i, r := range ranks {
		cards[i] = Card{
			Name:     fmt.Sprintf("%s of %s", r.name, suit),
			Arcana:   Minor,
			Suit:     suit,
			Number:   i + 1,
			Upright:  r.upright + " " + domain,
			Reversed: r.reversed + " " + domain,
		}
	}
	return cards
}
