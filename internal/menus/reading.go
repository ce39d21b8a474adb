package menus

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/seer-go/internal/tarot"
	"github.com/johnconnor-sec/seer-go/internal/ui"
)

const (
	readingTitle  = "Choose Your Spread"
	readingPrompt = "Which spread shall I lay for you?"
)

// ReadingMenu lets the user pick a spread and draws it.
type ReadingMenu struct {
	app *App
}

func NewReadingMenu(app *App) *ReadingMenu {
	return &ReadingMenu{app: app}
}

// Show returns after one reading, or when the user backs out.
func (m *ReadingMenu) Show() (bool, error) {
	spreads := m.app.Spreads.All()
	items := append(m.app.Spreads.Names(), "Back")

	for {
		r, err := m.app.Engine.Run(readingTitle, readingPrompt, m.app.options(items...))
		if err != nil {
			return false, err
		}
		if r.IsCancelled() {
			return false, nil
		}

		idx, _ := r.Index()
		switch {
		case idx >= 1 && idx <= len(spreads):
			done, err := m.read(spreads[idx-1])
			if err != nil || done {
				return false, err
			}
		case idx == len(spreads)+1:
			return false, nil
		default:
			if err := m.app.unexpected("reading", r); err != nil {
				return false, err
			}
		}
	}
}

// read lays out one spread. done is false when the user should pick again.
func (m *ReadingMenu) read(spread tarot.Spread) (done bool, err error) {
	user, ok := m.app.Accounts.Current()
	if !ok {
		return true, m.app.Engine.ShowError("No traveler is logged in.")
	}

	if spread.OncePerDay && m.drawnToday(user.ID, spread.Type) {
		if err := m.app.Narrator.SpeakWisdom(
			fmt.Sprintf("The %s has already been offered to you today. Return tomorrow, traveler.", spread.Name)); err != nil {
			return false, err
		}
		return false, m.app.Engine.PressAnyKey()
	}

	if err := m.app.Engine.Header(spread.Name); err != nil {
		return false, err
	}
	if err := m.app.Narrator.SpeakWisdom(spread.Description); err != nil {
		return false, err
	}
	question, ok, err := m.app.Engine.ReadLine("Your question (Enter for none): ", false)
	if err != nil || !ok {
		return false, err
	}

	cards, err := m.app.Deck.Draw(spread.CardCount(), m.app.Rand)
	if err != nil {
		return true, m.app.Engine.ShowError(describe(err))
	}
	reading, err := tarot.NewReading(user.ID, spread.Type, m.app.Deck.Type, cards, question)
	if err != nil {
		return true, m.app.Engine.ShowError(describe(err))
	}
	reading.Timestamp = m.app.now()

	if err := m.app.Readings.SaveReading(reading); err != nil {
		m.app.logger().WithError(err).Error("could not save reading", map[string]any{"user": user.Username})
		if err := m.app.Engine.ShowError("The spirits could not record this reading."); err != nil {
			return true, err
		}
	} else {
		m.app.logger().Info("reading drawn", map[string]any{"user": user.Username, "spread": string(spread.Type)})
	}

	return true, showReading(m.app, spread.Name, spread.Positions, reading)
}

func (m *ReadingMenu) drawnToday(userID uuid.UUID, t tarot.SpreadType) bool {
	now := m.app.now()
	for _, r := range m.app.Readings.UserReadings(userID) {
		if r.Type == t && r.SameDay(now) {
			return true
		}
	}
	return false
}

// showReading prints every card under its position, then pauses.
func showReading(app *App, name string, positions []tarot.SpreadPosition, reading tarot.Reading) error {
	if err := app.Engine.Header(name); err != nil {
		return err
	}

	say := func(text string, style ui.Style) error {
		return app.Engine.Say(text, style, 0)
	}

	if err := say(reading.Timestamp.Local().Format("Monday, 2 January 2006 at 15:04"), ui.StyleInfo); err != nil {
		return err
	}
	if reading.Question != "" {
		if err := say("You asked: "+reading.Question, ui.StylePrompt); err != nil {
			return err
		}
	}

	for _, card := range reading.Cards {
		if err := app.Engine.Terminal().NewLine(); err != nil {
			return err
		}
		position := fmt.Sprintf("Card %d", card.Position+1)
		meaning := ""
		if card.Position < len(positions) {
			position = positions[card.Position].Name
			meaning = positions[card.Position].Meaning
		}

		if err := say(position, ui.StyleHeader); err != nil {
			return err
		}
		if meaning != "" {
			if err := say("  "+meaning, ui.StyleInfo); err != nil {
				return err
			}
		}
		if err := app.Engine.Say("  "+card.Label(), ui.StyleHovered, app.Speed); err != nil {
			return err
		}
		if err := app.Narrator.SpeakWisdom("  " + card.Meaning()); err != nil {
			return err
		}
	}

	return app.Engine.PressAnyKey()
}
