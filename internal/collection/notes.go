package collection

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/text"
)

// AddNote stores a note and generates one card per template of its
// note type, all in the given deck. Returns the new note id.
func (c *Collection) AddNote(nt *model.NoteType, deckID int64, fields []string, tags []string) (int64, error) {
	if len(fields) != len(nt.Fields) {
		return 0, fmt.Errorf("note type %q expects %d fields, got %d", nt.Name, len(nt.Fields), len(fields))
	}

	sortField := text.StripHTMLPreservingMediaFilenames(fields[0])
	csum := text.FieldChecksum(sortField)

	noteID, err := c.nextTimestampID("notes")
	if err != nil {
		return 0, err
	}
	_, err = c.db.Exec(
		"INSERT INTO notes (id, mid, tags, flds, sfld, csum) VALUES (?, ?, ?, ?, ?, ?)",
		noteID, nt.ID, joinTags(tags), strings.Join(fields, FieldSeparator), sortField, csum)
	if err != nil {
		return 0, fmt.Errorf("failed to insert note: %w", err)
	}

	for _, tmpl := range nt.Templates {
		cardID, err := c.nextTimestampID("cards")
		if err != nil {
			return 0, err
		}
		_, err = c.db.Exec(
			"INSERT INTO cards (id, nid, did, ord, queue) VALUES (?, ?, ?, ?, ?)",
			cardID, noteID, deckID, tmpl.Ord, int(model.QueueNew))
		if err != nil {
			return 0, fmt.Errorf("failed to insert card: %w", err)
		}
	}
	return noteID, nil
}

// RecordReview appends a review log entry for a card. The log id is
// the review's epoch second, which is what rated: cutoffs compare
// against.
func (c *Collection) RecordReview(cardID int64, ease int) error {
	id := c.now().Unix()
	var maxID int64
	if err := c.db.QueryRow("SELECT COALESCE(MAX(id), 0) FROM revlog").Scan(&maxID); err != nil {
		return fmt.Errorf("failed to read review log: %w", err)
	}
	if id <= maxID {
		id = maxID + 1
	}

	if _, err := c.db.Exec(
		"INSERT INTO revlog (id, cid, ease) VALUES (?, ?, ?)", id, cardID, ease); err != nil {
		return fmt.Errorf("failed to record review: %w", err)
	}
	return nil
}

// nextTimestampID picks an id for a new row: the current epoch
// millisecond, bumped past the table's max id so ids stay unique and
// creation-ordered.
func (c *Collection) nextTimestampID(table string) (int64, error) {
	id := c.now().UnixMilli()
	var maxID int64
	if err := c.db.QueryRow("SELECT COALESCE(MAX(id), 0) FROM " + table).Scan(&maxID); err != nil {
		return 0, fmt.Errorf("failed to read max id from %s: %w", table, err)
	}
	if id <= maxID {
		id = maxID + 1
	}
	return id, nil
}

// joinTags renders the stored tag string: space-delimited and
// space-wrapped (" a b "), or "" for no tags.
func joinTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return " " + strings.Join(tags, " ") + " "
}
