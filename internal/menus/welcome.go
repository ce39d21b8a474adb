package menus

import (
	"fmt"
	"strings"

	"github.com/johnconnor-sec/seer-go/internal/ui"
)

const (
	welcomeTitle  = "Welcome to The Seer"
	welcomePrompt = "Greetings, traveler. Who approaches my chamber?"
)

// WelcomeMenu is the first screen: log in, register or leave.
type WelcomeMenu struct {
	app *App
}

func NewWelcomeMenu(app *App) *WelcomeMenu {
	return &WelcomeMenu{app: app}
}

// Show loops until the user exits and always reports true when it returns
// without error.
func (m *WelcomeMenu) Show() (bool, error) {
	for {
		r, err := m.app.Engine.Run(welcomeTitle, welcomePrompt, m.app.options("Login", "Register", "Exit"))
		if err != nil {
			return false, err
		}

		exit, err := m.dispatch(r)
		if err != nil || exit {
			return exit, err
		}
	}
}

func (m *WelcomeMenu) dispatch(r ui.Result) (bool, error) {
	if r.IsCancelled() {
		return m.leave()
	}

	switch idx, _ := r.Index(); idx {
	case 1:
		return false, m.login()
	case 2:
		return false, m.register()
	case 3:
		return true, m.app.Narrator.SpeakWisdom("Until we meet again, traveler...")
	default:
		return false, m.app.unexpected(welcomeTitle, r)
	}
}

func (m *WelcomeMenu) leave() (bool, error) {
	if m.app.ConfirmOnEscape {
		yes, err := farewellMenu(m.app).Show()
		if err != nil || !yes {
			return false, err
		}
	}
	return true, m.app.Narrator.SpeakWisdom("Until we meet again, traveler...")
}

func (m *WelcomeMenu) login() error {
	if err := m.app.Engine.Header("Login"); err != nil {
		return err
	}

	name, ok, err := m.app.Engine.ReadLine("Username: ", false)
	if err != nil || !ok {
		return err
	}
	secret, ok, err := m.app.Engine.ReadLine("Password: ", true)
	if err != nil || !ok {
		return err
	}

	user, err := m.app.Accounts.Login(strings.TrimSpace(name), secret)
	if err != nil {
		return m.app.Engine.ShowError(describe(err))
	}

	if err := m.app.Narrator.SpeakWisdom(fmt.Sprintf("Welcome back, %s. The cards have been waiting.", user.Username)); err != nil {
		return err
	}
	return m.enter()
}

func (m *WelcomeMenu) register() error {
	if err := m.app.Engine.Header("Register"); err != nil {
		return err
	}

	name, ok, err := m.app.Engine.ReadLine("Choose a username: ", false)
	if err != nil || !ok {
		return err
	}
	secret, ok, err := m.app.readSecretTwice("Choose a password: ")
	if err != nil || !ok {
		return err
	}

	user, err := m.app.Accounts.Register(strings.TrimSpace(name), secret)
	if err != nil {
		return m.app.Engine.ShowError(describe(err))
	}

	if err := m.app.Narrator.SpeakWisdom(fmt.Sprintf("Your name is written in the stars, %s.", user.Username)); err != nil {
		return err
	}
	return m.enter()
}

// enter runs the main menu for the logged-in user.
func (m *WelcomeMenu) enter() error {
	_, err := NewMainMenu(m.app).Show()
	m.app.Accounts.Logout()
	return err
}
