// Package model defines the collection records shared by search,
// storage and the CLI: cards, notes, decks, note types, and the
// scheduling clock snapshot.
package model

// CardQueue is the scheduling bucket a card currently sits in.
type CardQueue int

const (
	QueueNew         CardQueue = 0
	QueueLearn       CardQueue = 1
	QueueReview      CardQueue = 2
	QueueDayLearn    CardQueue = 3
	QueueSuspended   CardQueue = -1
	QueueSchedBuried CardQueue = -2
	QueueUserBuried  CardQueue = -3
)

// String returns the human-readable queue name.
func (q CardQueue) String() string {
	switch q {
	case QueueNew:
		return "new"
	case QueueLearn:
		return "learn"
	case QueueReview:
		return "review"
	case QueueDayLearn:
		return "day-learn"
	case QueueSuspended:
		return "suspended"
	case QueueSchedBuried, QueueUserBuried:
		return "buried"
	default:
		return "unknown"
	}
}

// Card is a schedulable unit generated from a note by one of its
// note type's templates.
type Card struct {
	// ID is the card's unique identifier (epoch milliseconds at creation).
	ID int64

	// NoteID is the owning note.
	NoteID int64

	// DeckID is the deck the card belongs to.
	DeckID int64

	// OrigDeckID is the home deck when the card sits in a filtered
	// deck, and zero otherwise.
	OrigDeckID int64

	// Ord is the template ordinal this card was generated from.
	Ord int

	// Queue is the current scheduling bucket.
	Queue CardQueue

	// Due is interpreted per queue: a day number for review cards,
	// an epoch timestamp for learning cards.
	Due int64

	// Interval is the current spacing interval in days.
	Interval int

	// Reps counts reviews; Lapses counts review failures.
	Reps   int
	Lapses int

	// Ease is the scheduling multiplier as a fixed-point integer
	// scaled by 1000 (2.5 is stored as 2500).
	Ease int

	// Flags holds the user flag in its low three bits.
	Flags int
}
