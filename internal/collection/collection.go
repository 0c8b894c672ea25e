// Package collection handles SQLite storage for a spaced-repetition
// collection: cards, notes, decks, note types, the review log, and the
// scheduling clock derived from the collection's creation time.
package collection

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/mnemo/internal/model"
)

// FieldSeparator joins note field values in the flds column.
const FieldSeparator = "\x1f"

// secsPerDay is the length of a scheduling day.
const secsPerDay = 86_400

// Collection is the SQLite collection handle. It satisfies
// search.Session, so compiled searches can resolve decks, note types
// and the clock against live data.
type Collection struct {
	db  *sql.DB
	now func() time.Time
}

// DB returns the underlying sql.DB for advanced queries.
func (c *Collection) DB() *sql.DB {
	return c.db
}

// Open opens or creates a collection file.
func Open(path string) (*Collection, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create collection directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open collection: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	c := &Collection{db: db, now: time.Now}
	if err := c.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// OpenMemory opens a throwaway in-memory collection.
func OpenMemory() (*Collection, error) {
	return Open(":memory:")
}

// Close closes the collection file.
func (c *Collection) Close() error {
	return c.db.Close()
}

// initialize creates the collection schema.
func (c *Collection) initialize() error {
	schema := `
		PRAGMA journal_mode = WAL;
		PRAGMA synchronous = NORMAL;

		-- Singleton row holding collection-level state.
		CREATE TABLE IF NOT EXISTS col (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			crt INTEGER NOT NULL,
			current_deck INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS decks (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		);

		-- Field and template definitions live in a JSON config blob.
		CREATE TABLE IF NOT EXISTS notetypes (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			config TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			mid INTEGER NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			flds TEXT NOT NULL,
			sfld TEXT NOT NULL,
			csum INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS cards (
			id INTEGER PRIMARY KEY,
			nid INTEGER NOT NULL,
			did INTEGER NOT NULL,
			odid INTEGER NOT NULL DEFAULT 0,
			ord INTEGER NOT NULL,
			queue INTEGER NOT NULL DEFAULT 0,
			due INTEGER NOT NULL DEFAULT 0,
			ivl INTEGER NOT NULL DEFAULT 0,
			reps INTEGER NOT NULL DEFAULT 0,
			lapses INTEGER NOT NULL DEFAULT 0,
			ease INTEGER NOT NULL DEFAULT 2500,
			flags INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS revlog (
			id INTEGER PRIMARY KEY,
			cid INTEGER NOT NULL,
			ease INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_cards_nid ON cards(nid);
		CREATE INDEX IF NOT EXISTS idx_cards_did ON cards(did);
		CREATE INDEX IF NOT EXISTS idx_notes_csum ON notes(csum);
		CREATE INDEX IF NOT EXISTS idx_revlog_cid ON revlog(cid);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize collection schema: %w", err)
	}

	// Seed the singleton row and the default deck on first open. The
	// creation timestamp anchors all day arithmetic, so it is set to
	// the most recent day boundary rather than the raw clock.
	crt := dayStart(c.now())
	if _, err := c.db.Exec(
		"INSERT OR IGNORE INTO col (id, crt, current_deck) VALUES (1, ?, 1)", crt); err != nil {
		return fmt.Errorf("failed to seed collection row: %w", err)
	}
	if _, err := c.db.Exec(
		"INSERT OR IGNORE INTO decks (id, name) VALUES (1, 'Default')"); err != nil {
		return fmt.Errorf("failed to seed default deck: %w", err)
	}
	return nil
}

// dayStart returns the epoch second of the most recent local midnight.
func dayStart(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).Unix()
}

// Timing returns the scheduling clock snapshot: whole days elapsed
// since the collection was created, and the epoch second at which the
// next day starts.
func (c *Collection) Timing() (model.Timing, error) {
	var crt int64
	if err := c.db.QueryRow("SELECT crt FROM col WHERE id = 1").Scan(&crt); err != nil {
		return model.Timing{}, fmt.Errorf("failed to read collection creation time: %w", err)
	}

	now := c.now().Unix()
	elapsed := (now - crt) / secsPerDay
	if elapsed < 0 {
		elapsed = 0
	}
	return model.Timing{
		DaysElapsed: int(elapsed),
		NextDayAt:   crt + (elapsed+1)*secsPerDay,
	}, nil
}

// CurrentDeckID returns the deck id recorded as current.
func (c *Collection) CurrentDeckID() (int64, error) {
	var id int64
	if err := c.db.QueryRow("SELECT current_deck FROM col WHERE id = 1").Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to read current deck: %w", err)
	}
	return id, nil
}

// SetCurrentDeck records the deck id as current.
func (c *Collection) SetCurrentDeck(id int64) error {
	if _, err := c.db.Exec("UPDATE col SET current_deck = ? WHERE id = 1", id); err != nil {
		return fmt.Errorf("failed to set current deck: %w", err)
	}
	return nil
}
