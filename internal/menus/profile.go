package menus

import (
	"fmt"
)

const profileTitle = "Profile Settings"

// ProfileMenu shows account details and changes the password.
type ProfileMenu struct {
	app *App
}

func NewProfileMenu(app *App) *ProfileMenu {
	return &ProfileMenu{app: app}
}

func (m *ProfileMenu) Show() (bool, error) {
	for {
		user, ok := m.app.Accounts.Current()
		if !ok {
			return false, m.app.Engine.ShowError("No traveler is logged in.")
		}

		prompt := fmt.Sprintf("%s, known to me since %s. Last seen %s.",
			user.Username,
			user.CreatedAt.Local().Format("2 January 2006"),
			user.LastLogin.Local().Format("2 January 2006 15:04"))

		r, err := m.app.Engine.Run(profileTitle, prompt, m.app.options("Change Password", "Back"))
		if err != nil {
			return false, err
		}
		if r.IsCancelled() {
			return false, nil
		}

		switch idx, _ := r.Index(); idx {
		case 1:
			if err := m.changePassword(); err != nil {
				return false, err
			}
		case 2:
			return false, nil
		default:
			if err := m.app.unexpected("profile", r); err != nil {
				return false, err
			}
		}
	}
}

func (m *ProfileMenu) changePassword() error {
	if err := m.app.Engine.Header("Change Password"); err != nil {
		return err
	}

	current, ok, err := m.app.Engine.ReadLine("Current password: ", true)
	if err != nil || !ok {
		return err
	}
	next, ok, err := m.app.readSecretTwice("New password: ")
	if err != nil || !ok {
		return err
	}

	if err := m.app.Accounts.ChangePassword(current, next); err != nil {
		return m.app.Engine.ShowError(describe(err))
	}
	if err := m.app.Narrator.SpeakWisdom("Your new secret is sealed."); err != nil {
		return err
	}
	return m.app.Engine.PressAnyKey()
}
