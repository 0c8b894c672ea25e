package collection

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/search"
	"github.com/aidanlsb/mnemo/internal/sqlutil"
)

// FindCards parses and compiles a search, then returns the matching
// cards ordered by id.
func (c *Collection) FindCards(query string) ([]model.Card, error) {
	cq, err := c.CompileSearch(query)
	if err != nil {
		return nil, err
	}

	sqlStr := `
		SELECT c.id, c.nid, c.did, c.odid, c.ord, c.queue, c.due, c.ivl, c.reps, c.lapses, c.ease, c.flags
		FROM cards c, notes n
		WHERE c.nid = n.id AND ` + cq.SQL + `
		ORDER BY c.id`

	rows, err := c.db.Query(sqlStr, cq.Args...)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w (SQL: %s)", err, sqlStr)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.Card, error) {
		var card model.Card
		err := rows.Scan(&card.ID, &card.NoteID, &card.DeckID, &card.OrigDeckID, &card.Ord,
			&card.Queue, &card.Due, &card.Interval, &card.Reps, &card.Lapses, &card.Ease, &card.Flags)
		return card, err
	})
}

// FindNotes is like FindCards but collapses matches to distinct notes.
func (c *Collection) FindNotes(query string) ([]model.Note, error) {
	cq, err := c.CompileSearch(query)
	if err != nil {
		return nil, err
	}

	sqlStr := `
		SELECT DISTINCT n.id, n.mid, n.tags, n.flds, n.sfld, n.csum
		FROM cards c, notes n
		WHERE c.nid = n.id AND ` + cq.SQL + `
		ORDER BY n.id`

	rows, err := c.db.Query(sqlStr, cq.Args...)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w (SQL: %s)", err, sqlStr)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.Note, error) {
		var (
			note model.Note
			flds string
		)
		if err := rows.Scan(&note.ID, &note.NoteTypeID, &note.Tags, &flds, &note.SortField, &note.Checksum); err != nil {
			return model.Note{}, err
		}
		note.Fields = strings.Split(flds, FieldSeparator)
		return note, nil
	})
}

// CompileSearch parses and compiles a search without running it.
func (c *Collection) CompileSearch(query string) (*search.CompiledQuery, error) {
	root, err := search.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid search %q: %w", query, err)
	}
	cq, err := search.Compile(c, root)
	if err != nil {
		return nil, fmt.Errorf("failed to compile search %q: %w", query, err)
	}
	return cq, nil
}
