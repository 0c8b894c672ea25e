package cli

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/aidanlsb/mnemo/internal/model"
)

type fakeCollection struct {
	cards []model.Card
	notes []model.Note
	decks []model.Deck
}

func (f *fakeCollection) FindCards(string) ([]model.Card, error) { return f.cards, nil }
func (f *fakeCollection) FindNotes(string) ([]model.Note, error) { return f.notes, nil }
func (f *fakeCollection) AllDecks() ([]model.Deck, error)        { return f.decks, nil }

// captureStdout runs fn with stdout redirected to a pipe and returns
// what it printed. Piped stdout also forces plain rendering.
func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := fn()
	w.Close()
	os.Stdout = old

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	return string(out)
}

func TestRunCardSearch(t *testing.T) {
	col := &fakeCollection{
		cards: []model.Card{
			{ID: 101, DeckID: 2, Queue: model.QueueNew, Due: 0},
			{ID: 102, DeckID: 3, Queue: model.QueueReview, Due: 15},
		},
		decks: []model.Deck{
			{ID: 2, Name: "Japanese"},
			{ID: 3, Name: "Japanese::Verbs"},
		},
	}

	out := captureStdout(t, func() error {
		return runCardSearch(col, "deck:japanese")
	})

	for _, want := range []string{"101", "102", "Japanese::Verbs", "new", "review", "2 card(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunNoteSearch(t *testing.T) {
	col := &fakeCollection{
		notes: []model.Note{
			{ID: 201, SortField: "dog", Tags: " vocab "},
		},
	}

	out := captureStdout(t, func() error {
		return runNoteSearch(col, "tag:vocab")
	})

	for _, want := range []string{"201", "dog", "vocab", "1 note(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
