package model

import "strings"

// DeckSeparator joins the components of a nested deck name.
const DeckSeparator = "::"

// Deck is a named, hierarchically nestable grouping of cards.
// Hierarchy is encoded in the name: "Japanese::Verbs" is a child of
// "Japanese".
type Deck struct {
	ID   int64
	Name string
}

// DeckByID returns the deck with the given id, or nil.
func DeckByID(decks []Deck, id int64) *Deck {
	for i := range decks {
		if decks[i].ID == id {
			return &decks[i]
		}
	}
	return nil
}

// ChildDeckIDs returns the ids of every deck whose name path sits
// strictly below parentName.
func ChildDeckIDs(decks []Deck, parentName string) []int64 {
	prefix := parentName + DeckSeparator
	var ids []int64
	for _, d := range decks {
		if strings.HasPrefix(d.Name, prefix) {
			ids = append(ids, d.ID)
		}
	}
	return ids
}
