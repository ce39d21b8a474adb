// Package narrator gives The Seer a voice: short lines typed out slowly.
package narrator

import (
	"math/rand/v2"
	"time"

	"github.com/johnconnor-sec/seer-go/internal/ui"
)

var omens = []string{
	"The cards remember what the heart forgets.",
	"Every ending is a door left ajar.",
	"What is hidden in the cup is seen in the sword.",
	"The moon lies only to those who ask it for certainty.",
	"A question asked twice has already been answered.",
}

// Narrator speaks through the engine with the typewriter effect.
type Narrator struct {
	engine *ui.Engine
	speed  time.Duration
	rng    *rand.Rand
}

// New creates a narrator typing at speed per character.
func New(engine *ui.Engine, speed time.Duration, rng *rand.Rand) *Narrator {
	return &Narrator{engine: engine, speed: speed, rng: rng}
}

// SpeakWisdom types one line in the mystical style.
func (n *Narrator) SpeakWisdom(text string) error {
	return n.engine.Say(text, ui.StyleMystical, n.speed)
}

// Omen speaks a random proverb.
func (n *Narrator) Omen() error {
	return n.SpeakWisdom(omens[n.rng.IntN(len(omens))])
}

// TransitionToMenu announces a move into the named screen.
func (n *Narrator) TransitionToMenu(name string) error {
	return n.SpeakWisdom("The mists part, and the " + name + " takes shape before you...")
}

// TransitionToReading sets the scene before cards are drawn.
func (n *Narrator) TransitionToReading() error {
	return n.SpeakWisdom("The candles flicker. The cards stir, eager to be read...")
}
