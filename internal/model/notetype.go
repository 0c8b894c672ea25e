package model

// NoteField describes one field slot of a note type.
type NoteField struct {
	Name string `yaml:"name"`
	Ord  int    `yaml:"ord"`
}

// CardTemplate describes one template of a note type; each template
// generates one card per note.
type CardTemplate struct {
	Name string `yaml:"name"`
	Ord  int    `yaml:"ord"`
}

// NoteType is the schema for a family of notes: its field slots and
// the templates that turn a note into cards.
type NoteType struct {
	ID        int64          `yaml:"id"`
	Name      string         `yaml:"name"`
	Fields    []NoteField    `yaml:"fields"`
	Templates []CardTemplate `yaml:"templates"`
}
