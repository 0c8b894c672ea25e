package collection

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedFile is the YAML layout accepted by ImportSeed.
type SeedFile struct {
	Decks       []string       `yaml:"decks"`
	CurrentDeck string         `yaml:"current_deck"`
	NoteTypes   []SeedNoteType `yaml:"notetypes"`
	Notes       []SeedNote     `yaml:"notes"`
}

// SeedNoteType declares a note type; ordinals come from position.
type SeedNoteType struct {
	Name      string   `yaml:"name"`
	Fields    []string `yaml:"fields"`
	Templates []string `yaml:"templates"`
}

// SeedNote declares a note; cards are generated per template.
type SeedNote struct {
	Type   string   `yaml:"type"`
	Deck   string   `yaml:"deck"`
	Tags   []string `yaml:"tags"`
	Fields []string `yaml:"fields"`
}

// ImportStats reports what an import created.
type ImportStats struct {
	Decks     int
	NoteTypes int
	Notes     int
}

// ImportSeedFile reads a YAML seed file and loads it into the
// collection. Note types and decks referenced by notes must either
// pre-exist or be declared in the same file.
func (c *Collection) ImportSeedFile(path string) (ImportStats, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ImportStats{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return ImportStats{}, fmt.Errorf("invalid seed file %s: %w", path, err)
	}
	return c.ImportSeed(&seed)
}

// ImportSeed loads a parsed seed into the collection.
func (c *Collection) ImportSeed(seed *SeedFile) (ImportStats, error) {
	var stats ImportStats

	for _, name := range seed.Decks {
		if _, err := c.EnsureDeck(name); err != nil {
			return stats, err
		}
		stats.Decks++
	}

	for _, nt := range seed.NoteTypes {
		if _, err := c.AddNoteType(nt.Name, nt.Fields, nt.Templates); err != nil {
			return stats, err
		}
		stats.NoteTypes++
	}

	for _, note := range seed.Notes {
		nt, err := c.NoteTypeByName(note.Type)
		if err != nil {
			return stats, err
		}
		if nt == nil {
			return stats, fmt.Errorf("seed note references unknown note type %q", note.Type)
		}

		deckName := note.Deck
		if deckName == "" {
			deckName = "Default"
		}
		deckID, err := c.EnsureDeck(deckName)
		if err != nil {
			return stats, err
		}

		if _, err := c.AddNote(nt, deckID, note.Fields, note.Tags); err != nil {
			return stats, err
		}
		stats.Notes++
	}

	if seed.CurrentDeck != "" {
		id, err := c.EnsureDeck(seed.CurrentDeck)
		if err != nil {
			return stats, err
		}
		if err := c.SetCurrentDeck(id); err != nil {
			return stats, err
		}
	}

	return stats, nil
}
