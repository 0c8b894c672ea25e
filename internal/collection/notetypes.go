package collection

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/sqlutil"
)

// noteTypeConfig is the JSON blob stored in notetypes.config.
type noteTypeConfig struct {
	Fields    []model.NoteField    `json:"fields"`
	Templates []model.CardTemplate `json:"templates"`
}

// AllNoteTypes returns every note type ordered by id.
func (c *Collection) AllNoteTypes() ([]*model.NoteType, error) {
	rows, err := c.db.Query("SELECT id, name, config FROM notetypes ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list note types: %w", err)
	}
	return sqlutil.ScanRows(rows, func(rows *sql.Rows) (*model.NoteType, error) {
		var (
			nt      model.NoteType
			rawConf string
		)
		if err := rows.Scan(&nt.ID, &nt.Name, &rawConf); err != nil {
			return nil, err
		}
		var conf noteTypeConfig
		if err := json.Unmarshal([]byte(rawConf), &conf); err != nil {
			return nil, fmt.Errorf("corrupt note type config for %q: %w", nt.Name, err)
		}
		nt.Fields = conf.Fields
		nt.Templates = conf.Templates
		return &nt, nil
	})
}

// NoteTypeByName returns the note type with the given name, or nil.
func (c *Collection) NoteTypeByName(name string) (*model.NoteType, error) {
	noteTypes, err := c.AllNoteTypes()
	if err != nil {
		return nil, err
	}
	for _, nt := range noteTypes {
		if nt.Name == name {
			return nt, nil
		}
	}
	return nil, nil
}

// AddNoteType stores a note type definition and returns its id.
// Field and template ordinals are assigned from position.
func (c *Collection) AddNoteType(name string, fieldNames, templateNames []string) (int64, error) {
	if len(fieldNames) == 0 {
		return 0, fmt.Errorf("note type %q needs at least one field", name)
	}
	if len(templateNames) == 0 {
		return 0, fmt.Errorf("note type %q needs at least one template", name)
	}

	conf := noteTypeConfig{}
	for i, f := range fieldNames {
		conf.Fields = append(conf.Fields, model.NoteField{Name: f, Ord: i})
	}
	for i, tmpl := range templateNames {
		conf.Templates = append(conf.Templates, model.CardTemplate{Name: tmpl, Ord: i})
	}

	raw, err := json.Marshal(conf)
	if err != nil {
		return 0, fmt.Errorf("failed to encode note type config: %w", err)
	}

	res, err := c.db.Exec("INSERT INTO notetypes (name, config) VALUES (?, ?)", name, string(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to create note type %q: %w", name, err)
	}
	return res.LastInsertId()
}
