package menus

import (
	"fmt"

	"github.com/johnconnor-sec/seer-go/internal/ui"
)

const mainPrompt = "What mysteries do you seek, traveler?"

var aboutLines = []string{
	"I am The Seer, guardian of the ancient cards.",
	"Through the tarot, I glimpse the threads of fate that bind all things.",
	"Seek my counsel, and the cards shall reveal what lies hidden.",
}

// MainMenu is the hub shown after login.
type MainMenu struct {
	app *App
}

func NewMainMenu(app *App) *MainMenu {
	return &MainMenu{app: app}
}

// Show returns true once the user has logged out.
func (m *MainMenu) Show() (bool, error) {
	user, ok := m.app.Accounts.Current()
	if !ok {
		return true, m.app.Engine.ShowError("No traveler is logged in.")
	}
	title := fmt.Sprintf("The Seer's Chamber - %s", user.Username)

	for {
		r, err := m.app.Engine.Run(title, mainPrompt, m.app.options(
			"New Reading",
			"View Reading History",
			"Profile Settings",
			"About The Seer",
			"Logout",
		))
		if err != nil {
			return false, err
		}

		logout, err := m.dispatch(r)
		if err != nil || logout {
			return logout, err
		}
	}
}

func (m *MainMenu) dispatch(r ui.Result) (bool, error) {
	if r.IsCancelled() {
		if !m.app.ConfirmOnEscape {
			return true, m.farewell()
		}
		return m.logout()
	}

	switch idx, _ := r.Index(); idx {
	case 1:
		if err := m.app.Narrator.TransitionToReading(); err != nil {
			return false, err
		}
		_, err := NewReadingMenu(m.app).Show()
		return false, err
	case 2:
		if err := m.app.Narrator.TransitionToMenu("Reading History"); err != nil {
			return false, err
		}
		_, err := NewHistoryMenu(m.app).Show()
		return false, err
	case 3:
		if err := m.app.Narrator.TransitionToMenu("Profile Settings"); err != nil {
			return false, err
		}
		_, err := NewProfileMenu(m.app).Show()
		return false, err
	case 4:
		return false, m.about()
	case 5:
		return m.logout()
	default:
		return false, m.app.unexpected("main", r)
	}
}

func (m *MainMenu) logout() (bool, error) {
	yes, err := farewellMenu(m.app).Show()
	if err != nil || !yes {
		return false, err
	}
	return true, m.farewell()
}

func (m *MainMenu) farewell() error {
	return m.app.Narrator.SpeakWisdom("Until we meet again, traveler...")
}

func (m *MainMenu) about() error {
	if err := m.app.Engine.Header("About The Seer"); err != nil {
		return err
	}
	for _, line := range aboutLines {
		if err := m.app.Narrator.SpeakWisdom(line); err != nil {
			return err
		}
	}
	if err := m.app.Narrator.Omen(); err != nil {
		return err
	}
	return m.app.Engine.PressAnyKey()
}
