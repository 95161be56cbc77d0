package msgcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chess-service-go/internal/errors"
)

func TestDefaultCatalogCoversErrorCodes(t *testing.T) {
	c := MustDefault()
	codes := []string{
		chesserrors.CodeInvalidNotation,
		chesserrors.CodeIllegalMove,
		chesserrors.CodeAmbiguousMove,
		chesserrors.CodeGameOver,
		chesserrors.CodeEmptyHistory,
		chesserrors.CodeInvalidFEN,
		chesserrors.CodeInternal,
	}
	for _, code := range codes {
		if !c.Has("error." + code) {
			t.Errorf("missing message for %s", code)
		}
	}
}

func TestRender(t *testing.T) {
	c := MustDefault()

	got, err := c.Render("error.illegal_move", map[string]string{"Move": "e2e5"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Illegal move: e2e5" {
		t.Errorf("Render() = %q", got)
	}

	if _, err := c.Render("error.illegal_move", map[string]string{}); err == nil {
		t.Error("Render() with missing data should fail")
	}
	if _, err := c.Render("error.nope", nil); err == nil {
		t.Error("Render() of unknown key should fail")
	}
}

func TestErrorTextFallback(t *testing.T) {
	c := MustDefault()
	if got := c.ErrorText("nope", nil, "fallback"); got != "fallback" {
		t.Errorf("ErrorText() = %q, want fallback", got)
	}
	if got := c.ErrorText(chesserrors.CodeGameOver, nil, "x"); got != "The game is over" {
		t.Errorf("ErrorText() = %q", got)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("a.yaml", "error:\n  game_over: \"Partie terminee\"\n")
	write("notes.txt", "ignored")

	c, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := c.Render("error.game_over", nil); got != "Partie terminee" {
		t.Errorf("override not applied: %q", got)
	}
	if got, _ := c.Render("error.empty_history", nil); got != "No moves to take back" {
		t.Errorf("default lost after override: %q", got)
	}

	write("b.yml", "error:\n  game_over: \"again\"\n")
	if _, err := New(dir); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("New() with duplicate keys error = %v", err)
	}
}

func TestNonStringLeafRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("error:\n  code: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir); err == nil {
		t.Error("New() accepted a non-string leaf")
	}
}
