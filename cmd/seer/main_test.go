package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/johnconnor-sec/seer-go/internal/config"
	"github.com/johnconnor-sec/seer-go/internal/errors"
	"github.com/johnconnor-sec/seer-go/internal/output"
	"github.com/johnconnor-sec/seer-go/internal/store"
	"github.com/johnconnor-sec/seer-go/internal/tarot"
)

// execute runs the CLI with a private config path and data directory.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func setupEnv(t *testing.T) (configPath, dataDir string) {
	t.Helper()
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config", "config.yml")
	dataDir = filepath.Join(dir, "data")
	t.Setenv("SEER_CONFIG", configPath)
	t.Setenv("SEER_DATA_DIR", dataDir)
	t.Setenv("NO_COLOR", "1")
	return configPath, dataDir
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"The Seer dev", "Git commit", "Go version"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestConfigInit(t *testing.T) {
	configPath, _ := setupEnv(t)

	if _, err := execute(t, "", "config", "init"); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := config.Load(configPath); err != nil {
		t.Fatalf("Written config does not load: %v", err)
	}

	_, err := execute(t, "", "config", "init")
	if err == nil {
		t.Fatal("Expected error for an existing file")
	}
	if !errors.IsType(err, errors.ValidationFailed) {
		t.Errorf("Expected validation error, got %v", err)
	}

	if _, err := execute(t, "", "config", "init", "--force"); err != nil {
		t.Errorf("init --force failed: %v", err)
	}
}

func TestConfigInitInteractive(t *testing.T) {
	configPath, _ := setupEnv(t)

	out, err := execute(t, "\nstream\n\nn\ny\n", "config", "init", "--interactive")
	if err != nil {
		t.Fatalf("Unexpected error: %v\n%s", err, out)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Display.Backend != config.BackendStream {
		t.Errorf("Expected stream backend, got %q", cfg.Display.Backend)
	}
	if cfg.Menus.ConfirmOnEscape {
		t.Error("Expected confirm_on_escape to be off")
	}
}

func TestConfigShowAndValidate(t *testing.T) {
	_, dataDir := setupEnv(t)

	out, err := execute(t, "", "config", "show")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"Seer Configuration", dataDir, "screen", "esc, ctrl+c"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	out, err = execute(t, "", "config", "show", "--backend", "stream", "--log-level", "debug")
	if err != nil {
		t.Fatalf("show with overrides failed: %v", err)
	}
	if !strings.Contains(out, "stream") {
		t.Error("Expected backend override to be shown")
	}

	if _, err := execute(t, "", "config", "show", "--backend", "crt"); !errors.IsType(err, errors.ConfigInvalid) {
		t.Errorf("Expected ConfigInvalid for an unknown backend, got %v", err)
	}

	if _, err := execute(t, "", "config", "validate"); !errors.IsType(err, errors.ConfigNotFound) {
		t.Errorf("Expected ConfigNotFound before init, got %v", err)
	}
	execute(t, "", "config", "init")
	if out, err := execute(t, "", "config", "validate"); err != nil || !strings.Contains(out, "is valid") {
		t.Errorf("Expected valid config, got %v\n%s", err, out)
	}
}

func TestConfigSchema(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "config", "schema")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var schema map[string]any
	if err := json.Unmarshal([]byte(out), &schema); err != nil {
		t.Fatalf("Schema is not JSON: %v", err)
	}
	if schema["title"] != "Seer Configuration" {
		t.Errorf("Unexpected title %v", schema["title"])
	}

	path := filepath.Join(t.TempDir(), "schema.json")
	if out, err := execute(t, "", "config", "schema", path); err != nil || !strings.Contains(out, path) {
		t.Errorf("Expected schema file to be written, got %v\n%s", err, out)
	}
}

func TestHistoryCommand(t *testing.T) {
	_, dataDir := setupEnv(t)

	data, err := store.NewDataService(dataDir, output.NewNopLogger())
	if err != nil {
		t.Fatalf("NewDataService failed: %v", err)
	}
	user := store.User{ID: uuid.New(), Username: "ada", CreatedAt: time.Now()}
	if err := data.SaveUser(user); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	out, err := execute(t, "", "history", "ada")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "No readings recorded yet") {
		t.Errorf("Expected empty notice, got:\n%s", out)
	}

	sun, _ := tarot.NewDeck().Find("The Sun")
	reading, err := tarot.NewReading(user.ID, tarot.DailyReading, tarot.DeckStandard,
		[]tarot.DrawnCard{{Card: sun, Reversed: true}}, "what of tomorrow")
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	if err := data.SaveReading(reading); err != nil {
		t.Fatalf("SaveReading failed: %v", err)
	}

	out, err = execute(t, "", "history", "ADA")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Readings of ada", "Daily Reading", "The Sun (reversed)", "what of tomorrow"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	_, err = execute(t, "", "history", "nobody")
	if !errors.IsType(err, errors.UserNotFound) {
		t.Fatalf("Expected UserNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Known travelers: ada") {
		t.Errorf("Expected known travelers in the suggestion, got %v", err)
	}
}

func TestHistoryCommand_NoTravelers(t *testing.T) {
	setupEnv(t)

	_, err := execute(t, "", "history", "nobody")
	if err == nil || !strings.Contains(err.Error(), "No travelers have registered yet") {
		t.Errorf("Expected empty registry suggestion, got %v", err)
	}
}

func TestHistoryCommand_CompletesUsernames(t *testing.T) {
	_, dataDir := setupEnv(t)

	data, err := store.NewDataService(dataDir, output.NewNopLogger())
	if err != nil {
		t.Fatalf("NewDataService failed: %v", err)
	}
	for _, name := range []string{"ada", "Babbage", "alan"} {
		if err := data.SaveUser(store.User{ID: uuid.New(), Username: name}); err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}
	}

	out, err := execute(t, "", "__complete", "history", "a")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(out, "ada\nalan\n") {
		t.Errorf("Expected ada and alan in name order, got:\n%s", out)
	}
	if strings.Contains(out, "Babbage") {
		t.Errorf("Expected Babbage to be filtered out, got:\n%s", out)
	}
}

func TestCardsCommand(t *testing.T) {
	setupEnv(t)

	out, err := execute(t, "", "cards")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"78 cards", "The Fool", "Queen of Cups", "Pentacles"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in listing:\n%s", want, out)
		}
	}

	out, err = execute(t, "", "cards", "the tower")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tower, _ := tarot.NewDeck().Find("The Tower")
	for _, want := range []string{"The Tower", "Upright", tower.Upright, tower.Reversed} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in card detail:\n%s", want, out)
		}
	}

	if _, err := execute(t, "", "cards", "The Jester"); !errors.IsType(err, errors.CardNotFound) {
		t.Errorf("Expected CardNotFound, got %v", err)
	}
}

func TestHandleError(t *testing.T) {
	var out bytes.Buffer
	handleError(&out, errors.ConfigNotFoundError("/tmp/x.yml"))

	text := out.String()
	for _, want := range []string{"Configuration file not found", "/tmp/x.yml", "seer config init"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in output:\n%s", want, text)
		}
	}

	out.Reset()
	handleError(&out, bytes.ErrTooLarge)
	if !strings.Contains(out.String(), "Unexpected error") {
		t.Errorf("Expected generic error, got %q", out.String())
	}
}
