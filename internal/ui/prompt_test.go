package ui

import "testing"

func chars(s string) []KeyEvent {
	var evs []KeyEvent
	for _, r := range s {
		evs = append(evs, KeyEvent{Code: KeyChar, Char: r})
	}
	return evs
}

func TestEngine_ReadLine(t *testing.T) {
	script := append(chars("seer"), KeyEvent{Code: KeyEnter})
	term := newFakeTerminal(script...)

	line, ok, err := newTestEngine(term).ReadLine("Name: ", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !ok || line != "seer" {
		t.Errorf("Expected 'seer', got '%s' (ok=%v)", line, ok)
	}
	if term.lines[0] != "Name: seer" {
		t.Errorf("Expected echoed input, got '%s'", term.lines[0])
	}
}

func TestEngine_ReadLineHidden(t *testing.T) {
	script := append(chars("secret"), KeyEvent{Code: KeyEnter})
	term := newFakeTerminal(script...)

	line, ok, _ := newTestEngine(term).ReadLine("Password: ", true)
	if !ok || line != "secret" {
		t.Errorf("Expected 'secret', got '%s'", line)
	}
	if term.lines[0] != "Password: ******" {
		t.Errorf("Expected masked echo, got '%s'", term.lines[0])
	}
}

func TestEngine_ReadLineBackspace(t *testing.T) {
	script := append(chars("abc"), KeyEvent{Code: KeyBackspace}, KeyEvent{Code: KeyBackspace})
	script = append(script, chars("z")...)
	script = append(script, KeyEvent{Code: KeyEnter})
	term := newFakeTerminal(script...)

	line, _, _ := newTestEngine(term).ReadLine("> ", false)
	if line != "az" {
		t.Errorf("Expected 'az', got '%s'", line)
	}
	if term.lines[0] != "> az" {
		t.Errorf("Expected redrawn line '> az', got '%s'", term.lines[0])
	}
}

func TestEngine_ReadLineEscape(t *testing.T) {
	script := append(chars("ab"), KeyEvent{Code: KeyEscape})
	line, ok, err := newTestEngine(newFakeTerminal(script...)).ReadLine("> ", false)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ok || line != "" {
		t.Errorf("Expected abandoned line, got '%s' (ok=%v)", line, ok)
	}
}

func TestEngine_ReadLineEOF(t *testing.T) {
	_, ok, err := newTestEngine(newFakeTerminal(chars("ab")...)).ReadLine("> ", false)
	if err == nil || ok {
		t.Error("Expected an error when input ends before Enter")
	}
}
