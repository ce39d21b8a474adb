// Package menus holds the screens of The Seer. Each controller owns one menu,
// runs it on the shared engine and dispatches the result.
package menus

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/seer-go/internal/account"
	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/narrator"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
	"github.com/johnconnor-sec/seer-go/internal/ui"
)

const msgUnexpectedChoice = "An unexpected choice... try again."

// Controller shows a menu until the user leaves it. Show reports whether the
// user asked to leave the enclosing screen as well (logout or exit).
type Controller interface {
	Show() (bool, error)
}

// ReadingStore is the slice of the data service readings need.
type ReadingStore interface {
	SaveReading(reading tarot.Reading) error
	UserReadings(userID uuid.UUID) []tarot.Reading
}

// App bundles what every controller shares.
type App struct {
	Engine   *ui.Engine
	Narrator *narrator.Narrator
	Accounts *account.Manager
	Readings ReadingStore
	Spreads  *tarot.SpreadService
	Deck     *tarot.Deck
	Rand     *rand.Rand
	Logger   *output.Logger

	// Prefix marks the hovered option; empty uses ui.DefaultPrefix.
	Prefix string
	// Speed is the typewriter delay for menu rows.
	Speed time.Duration
	// ConfirmOnEscape asks before Escape logs out or exits.
	ConfirmOnEscape bool

	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) logger() *output.Logger {
	if a.Logger == nil {
		return output.GetGlobalLogger().Component("menus")
	}
	return a.Logger.Component("menus")
}

// options builds the option source for one menu.
func (a *App) options(items ...string) ui.Options {
	return ui.Options{Items: items, Marker: a.Prefix, Speed: a.Speed}
}

func (a *App) unexpected(menu string, r ui.Result) error {
	a.logger().Warn("unexpected menu result", map[string]any{"menu": menu, "result": r.String()})
	return a.Engine.ShowError(msgUnexpectedChoice)
}

// describe turns an error into one line fit for the player.
func describe(err error) string {
	if se, ok := err.(*errors.SeerError); ok {
		if se.Details != "" {
			return se.Message + ": " + se.Details
		}
		return se.Message
	}
	return err.Error()
}

// readSecretTwice asks for a password and its confirmation. ok is false when
// either prompt is abandoned or the two do not match.
func (a *App) readSecretTwice(label string) (string, bool, error) {
	first, ok, err := a.Engine.ReadLine(label, true)
	if err != nil || !ok {
		return "", false, err
	}
	second, ok, err := a.Engine.ReadLine("Confirm: ", true)
	if err != nil || !ok {
		return "", false, err
	}
	if first != second {
		return "", false, a.Engine.ShowError("The two secrets do not match.")
	}
	return first, true, nil
}
