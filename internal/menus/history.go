package menus

import (
	"fmt"

	"github.com/johnconnor-sec/seer-go/internal/tarot"
)

const (
	historyTitle  = "Reading History"
	historyPrompt = "Which memory shall we revisit?"
)

// HistoryMenu lists the user's past readings, newest first.
type HistoryMenu struct {
	app *App
}

func NewHistoryMenu(app *App) *HistoryMenu {
	return &HistoryMenu{app: app}
}

func (m *HistoryMenu) Show() (bool, error) {
	user, ok := m.app.Accounts.Current()
	if !ok {
		return false, m.app.Engine.ShowError("No traveler is logged in.")
	}

	for {
		readings := m.app.Readings.UserReadings(user.ID)
		if len(readings) == 0 {
			if err := m.app.Engine.Header(historyTitle); err != nil {
				return false, err
			}
			if err := m.app.Narrator.SpeakWisdom("Your past remains unwritten. No readings have been recorded."); err != nil {
				return false, err
			}
			return false, m.app.Engine.PressAnyKey()
		}

		items := make([]string, 0, len(readings)+1)
		for _, r := range readings {
			items = append(items, m.label(r))
		}
		items = append(items, "Back")

		r, err := m.app.Engine.Run(historyTitle, historyPrompt, m.app.options(items...))
		if err != nil {
			return false, err
		}
		if r.IsCancelled() {
			return false, nil
		}

		idx, _ := r.Index()
		switch {
		case idx >= 1 && idx <= len(readings):
			if err := m.detail(readings[idx-1]); err != nil {
				return false, err
			}
		case idx == len(readings)+1:
			return false, nil
		default:
			if err := m.app.unexpected("history", r); err != nil {
				return false, err
			}
		}
	}
}

func (m *HistoryMenu) spreadName(t tarot.SpreadType) string {
	if spread, ok := m.app.Spreads.Lookup(t); ok {
		return spread.Name
	}
	return string(t)
}

func (m *HistoryMenu) label(r tarot.Reading) string {
	return fmt.Sprintf("%s  %s (%d card(s))",
		r.Timestamp.Local().Format("2006-01-02 15:04"), m.spreadName(r.Type), len(r.Cards))
}

func (m *HistoryMenu) detail(r tarot.Reading) error {
	var positions []tarot.SpreadPosition
	if spread, ok := m.app.Spreads.Lookup(r.Type); ok {
		positions = spread.Positions
	}
	return showReading(m.app, m.spreadName(r.Type), positions, r)
}
