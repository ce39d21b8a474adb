package menus

// ConfirmationMenu asks a yes/no question. Escape counts as no.
type ConfirmationMenu struct {
	app    *App
	title  string
	prompt string
	yes    string
	no     string
}

// NewConfirmationMenu creates a two-option menu; yes is listed first.
func NewConfirmationMenu(app *App, title, prompt, yes, no string) *ConfirmationMenu {
	return &ConfirmationMenu{app: app, title: title, prompt: prompt, yes: yes, no: no}
}

// Show reports whether the first option was chosen.
func (m *ConfirmationMenu) Show() (bool, error) {
	for {
		r, err := m.app.Engine.Run(m.title, m.prompt, m.app.options(m.yes, m.no))
		if err != nil {
			return false, err
		}
		if r.IsCancelled() {
			return false, nil
		}

		switch idx, _ := r.Index(); idx {
		case 1:
			return true, nil
		case 2:
			return false, nil
		default:
			if err := m.app.unexpected(m.title, r); err != nil {
				return false, err
			}
		}
	}
}

func farewellMenu(app *App) *ConfirmationMenu {
	return NewConfirmationMenu(app, "Farewell", "Do you truly wish to depart from my chamber?",
		"Yes, I must go", "No, I shall stay")
}
