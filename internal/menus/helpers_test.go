package menus

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/johnconnor-sec/seer-go/internal/account"
	"github.com/johnconnor-sec/seer-go/internal/narrator"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/store"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
	"github.com/johnconnor-sec/seer-go/internal/ui"
)

var testNow = time.Date(2026, 10, 19, 20, 0, 0, 0, time.Local)

// scriptTerminal replays keys and keeps the text written since the start.
// maxRow is the lowest row the cursor has reached.
type scriptTerminal struct {
	keys   []ui.KeyEvent
	row    int
	height int
	maxRow int
	out    strings.Builder
}

func (s *scriptTerminal) Clear() error { s.row = 0; s.out.WriteString("\f"); return nil }
func (s *scriptTerminal) Row() int     { return s.row }
func (s *scriptTerminal) Height() int  { return s.height }
func (s *scriptTerminal) MoveTo(r int) error {
	s.row = r
	s.maxRow = max(s.maxRow, r)
	return nil
}
func (s *scriptTerminal) Write(text string, _ ui.Style) error {
	s.out.WriteString(text)
	return nil
}
func (s *scriptTerminal) NewLine() error {
	s.row++
	s.maxRow = max(s.maxRow, s.row)
	s.out.WriteString("\n")
	return nil
}
func (s *scriptTerminal) SetCursorVisible(bool) error { return nil }

func (s *scriptTerminal) ReadKey() (ui.KeyEvent, error) {
	if len(s.keys) == 0 {
		return ui.KeyEvent{}, io.EOF
	}
	ev := s.keys[0]
	s.keys = s.keys[1:]
	return ev, nil
}

func (s *scriptTerminal) output() string { return s.out.String() }

// script builds a key sequence.
type script []ui.KeyEvent

func (s script) press(codes ...ui.KeyCode) script {
	for _, c := range codes {
		s = append(s, ui.KeyEvent{Code: c})
	}
	return s
}

// line types text and presses Enter.
func (s script) line(text string) script {
	for _, r := range text {
		s = append(s, ui.KeyEvent{Code: ui.KeyChar, Char: r})
	}
	return s.press(ui.KeyEnter)
}

// anyKey dismisses a pause.
func (s script) anyKey() script {
	return append(s, ui.KeyEvent{Code: ui.KeyChar, Char: ' '})
}

type testEnv struct {
	app  *App
	term *scriptTerminal
	data *store.DataService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := output.NewNopLogger()
	data, err := store.NewDataService(t.TempDir(), logger)
	if err != nil {
		t.Fatalf("NewDataService failed: %v", err)
	}

	term := &scriptTerminal{}
	engine := ui.NewEngine(term, ui.WithSleep(func(time.Duration) {}), ui.WithLogger(logger))
	rng := rand.New(rand.NewPCG(7, 11))

	app := &App{
		Engine:   engine,
		Narrator: narrator.New(engine, 0, rng),
		Accounts: account.NewManager(data, logger).WithCost(bcrypt.MinCost),
		Readings: data,
		Spreads:  tarot.NewSpreadService(),
		Deck:     tarot.NewDeck(),
		Rand:     rng,
		Logger:   logger,
		Now:      func() time.Time { return testNow },
	}
	return &testEnv{app: app, term: term, data: data}
}

func (e *testEnv) play(keys script) {
	e.term.keys = keys
}

// login registers ada and leaves her logged in.
func (e *testEnv) login(t *testing.T) store.User {
	t.Helper()
	user, err := e.app.Accounts.Register("ada", "secret1")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return user
}
