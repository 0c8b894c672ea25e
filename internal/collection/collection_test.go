package collection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/search"
)

func newTestCollection(t *testing.T) *Collection {
	t.Helper()
	col, err := OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { col.Close() })
	return col
}

// seedBasic loads a small bilingual vocabulary collection.
func seedBasic(t *testing.T, col *Collection) (basic *model.NoteType, dogNote int64) {
	t.Helper()

	_, err := col.EnsureDeck("Japanese::Verbs")
	require.NoError(t, err)

	_, err = col.AddNoteType("Basic", []string{"Front", "Back"}, []string{"Card 1", "Card 2"})
	require.NoError(t, err)
	basic, err = col.NoteTypeByName("Basic")
	require.NoError(t, err)
	require.NotNil(t, basic)

	verbsID, err := col.EnsureDeck("Japanese::Verbs")
	require.NoError(t, err)
	defaultID, err := col.EnsureDeck("Default")
	require.NoError(t, err)

	dogNote, err = col.AddNote(basic, verbsID, []string{"dog", "犬"}, []string{"vocab"})
	require.NoError(t, err)
	_, err = col.AddNote(basic, defaultID, []string{"cat", "猫"}, nil)
	require.NoError(t, err)

	return basic, dogNote
}

func TestFindCardsUnqualifiedText(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	cards, err := col.FindCards("dog")
	require.NoError(t, err)
	require.Len(t, cards, 2, "both templates of the dog note should match")
}

func TestFindNotesByTag(t *testing.T) {
	col := newTestCollection(t)
	_, dogNote := seedBasic(t, col)

	notes, err := col.FindNotes("tag:vocab")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, dogNote, notes[0].ID)

	// Wildcard within the space-wrapped tag string.
	notes, err = col.FindNotes("tag:vo*")
	require.NoError(t, err)
	require.Len(t, notes, 1)

	// tag:none matches only the untagged note.
	notes, err = col.FindNotes("tag:none")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "cat", notes[0].Fields[0])
}

func TestFindCardsSingleField(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	cards, err := col.FindCards("front:dog")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// Matching is on the named field only.
	cards, err = col.FindCards("back:dog")
	require.NoError(t, err)
	require.Empty(t, cards)

	// Unknown field compiles to false, not an error.
	cards, err = col.FindCards("bogusfield:dog")
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestFindCardsDeckHierarchy(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	// Matching a parent deck pulls in descendant decks.
	cards, err := col.FindCards("deck:japanese")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	cards, err = col.FindCards("deck:*")
	require.NoError(t, err)
	require.Len(t, cards, 4)

	cards, err = col.FindCards("deck:nosuch")
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestFindCardsCurrentDeck(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	japaneseID, err := col.EnsureDeck("Japanese")
	require.NoError(t, err)

	require.NoError(t, col.SetCurrentDeck(japaneseID))
	cards, err := col.FindCards("deck:current")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	// A current deck id missing from the catalog is a fatal error.
	require.NoError(t, col.SetCurrentDeck(9999))
	_, err = col.FindCards("deck:current")
	require.Error(t, err)
	require.True(t, errors.Is(err, search.ErrInvalidCurrentDeck))
}

func TestFindCardsState(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	cards, err := col.FindCards("is:new")
	require.NoError(t, err)
	require.Len(t, cards, 4)

	_, err = col.DB().Exec("UPDATE cards SET queue = ? WHERE id = ?", int(model.QueueSuspended), cards[0].ID)
	require.NoError(t, err)

	suspended, err := col.FindCards("is:suspended")
	require.NoError(t, err)
	require.Len(t, suspended, 1)
	require.Equal(t, cards[0].ID, suspended[0].ID)

	remaining, err := col.FindCards("is:new")
	require.NoError(t, err)
	require.Len(t, remaining, 3)
}

func TestFindCardsRated(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	cards, err := col.FindCards("is:new")
	require.NoError(t, err)
	require.NotEmpty(t, cards)

	require.NoError(t, col.RecordReview(cards[0].ID, 3))

	rated, err := col.FindCards("rated:1")
	require.NoError(t, err)
	require.Len(t, rated, 1)
	require.Equal(t, cards[0].ID, rated[0].ID)

	// Restricting by a different answer ease excludes the review.
	rated, err = col.FindCards("rated:1:2")
	require.NoError(t, err)
	require.Empty(t, rated)

	rated, err = col.FindCards("rated:1:3")
	require.NoError(t, err)
	require.Len(t, rated, 1)
}

func TestFindNotesDuplicates(t *testing.T) {
	col := newTestCollection(t)
	basic, dogNote := seedBasic(t, col)

	notes, err := col.FindNotes(fmt.Sprintf("dupe:%d,dog", basic.ID))
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, dogNote, notes[0].ID)

	notes, err = col.FindNotes(fmt.Sprintf("dupe:%d,horse", basic.ID))
	require.NoError(t, err)
	require.Empty(t, notes)
}

func TestFindCardsEmptyNoteTypeMatch(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	// Unmatched note type name yields zero results, not a failure.
	cards, err := col.FindCards("note:nosuch")
	require.NoError(t, err)
	require.Empty(t, cards)
}

func TestFindCardsBooleanCombinations(t *testing.T) {
	col := newTestCollection(t)
	seedBasic(t, col)

	cards, err := col.FindCards("dog or cat")
	require.NoError(t, err)
	require.Len(t, cards, 4)

	cards, err = col.FindCards("deck:japanese -card:2")
	require.NoError(t, err)
	require.Len(t, cards, 1)

	cards, err = col.FindCards("(dog or cat) tag:vocab")
	require.NoError(t, err)
	require.Len(t, cards, 2)
}

func TestTiming(t *testing.T) {
	col := newTestCollection(t)

	var crt int64
	require.NoError(t, col.DB().QueryRow("SELECT crt FROM col WHERE id = 1").Scan(&crt))

	// Ten days and change after creation.
	col.now = func() time.Time {
		return time.Unix(crt+10*secsPerDay+3600, 0)
	}

	timing, err := col.Timing()
	require.NoError(t, err)
	require.Equal(t, 10, timing.DaysElapsed)
	require.Equal(t, crt+11*secsPerDay, timing.NextDayAt)
}

func TestImportSeedFile(t *testing.T) {
	col := newTestCollection(t)

	seedYAML := `
decks:
  - Japanese::Verbs
current_deck: Japanese
notetypes:
  - name: Basic
    fields: [Front, Back]
    templates: [Card 1]
notes:
  - type: Basic
    deck: Japanese::Verbs
    tags: [vocab]
    fields: [run, 走る]
  - type: Basic
    fields: [walk, 歩く]
`
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0644))

	stats, err := col.ImportSeedFile(path)
	require.NoError(t, err)
	require.Equal(t, ImportStats{Decks: 1, NoteTypes: 1, Notes: 2}, stats)

	cards, err := col.FindCards("deck:current")
	require.NoError(t, err)
	require.Len(t, cards, 1, "current deck should cover its descendants")

	notes, err := col.FindNotes("front:walk")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	require.Equal(t, "歩く", notes[0].Fields[1])
}
