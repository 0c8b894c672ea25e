package collection

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/sqlutil"
)

// AllDecks returns every deck ordered by name, so compiled deck
// predicates resolve ids in a stable order.
func (c *Collection) AllDecks() ([]model.Deck, error) {
	rows, err := c.db.Query("SELECT id, name FROM decks ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (model.Deck, error) {
		var d model.Deck
		err := rows.Scan(&d.ID, &d.Name)
		return d, err
	})
}

// EnsureDeck returns the id of the named deck, creating it and any
// missing ancestors ("A::B::C" implies "A" and "A::B").
func (c *Collection) EnsureDeck(name string) (int64, error) {
	parts := strings.Split(name, model.DeckSeparator)
	var id int64
	for i := range parts {
		path := strings.Join(parts[:i+1], model.DeckSeparator)
		var err error
		id, err = c.ensureDeckRow(path)
		if err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (c *Collection) ensureDeckRow(name string) (int64, error) {
	var id int64
	err := c.db.QueryRow("SELECT id FROM decks WHERE name = ?", name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up deck %q: %w", name, err)
	}

	res, err := c.db.Exec("INSERT INTO decks (name) VALUES (?)", name)
	if err != nil {
		return 0, fmt.Errorf("failed to create deck %q: %w", name, err)
	}
	return res.LastInsertId()
}
