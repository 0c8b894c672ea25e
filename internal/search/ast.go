// Package search implements the collection search language: a lexer
// and parser that turn user query text into an expression tree, and a
// compiler that turns the tree into a parameterized SQL predicate over
// cards and notes.
package search

// Node is one element of a search expression tree.
//
// A group's child list interleaves operand nodes with And/Or connector
// nodes ("a b" parses to [leaf, And, leaf]). The parser guarantees the
// alternation; the compiler emits the list verbatim and never infers
// precedence.
type Node interface {
	searchNode()
}

// AndNode is the "and" connector between two operands in a group.
type AndNode struct{}

func (AndNode) searchNode() {}

// OrNode is the "or" connector between two operands in a group.
type OrNode struct{}

func (OrNode) searchNode() {}

// NotNode negates exactly the next operand. Broader negation requires
// an explicit group.
type NotNode struct {
	Child Node
}

func (NotNode) searchNode() {}

// GroupNode is an explicit parenthesization; the root of every parsed
// query is a group.
type GroupNode struct {
	Children []Node
}

func (GroupNode) searchNode() {}

// TextNode matches unqualified text as a substring of the sort field
// or any field.
type TextNode struct {
	Text string
}

func (TextNode) searchNode() {}

// SingleFieldNode matches text in one named field, across every note
// type that has a field of that name.
type SingleFieldNode struct {
	Field string
	Text  string
}

func (SingleFieldNode) searchNode() {}

// AddedInDaysNode matches cards added within the last N days.
type AddedInDaysNode struct {
	Days int
}

func (AddedInDaysNode) searchNode() {}

// TemplateOrdinalNode matches cards generated from a template ordinal.
type TemplateOrdinalNode struct {
	Ord int
}

func (TemplateOrdinalNode) searchNode() {}

// TemplateNameNode matches cards whose template name matches a
// wildcard pattern, across every note type.
type TemplateNameNode struct {
	Name string
}

func (TemplateNameNode) searchNode() {}

// DeckNode matches cards by deck-name pattern. Besides wildcards the
// pattern may be one of the sentinels "*", "filtered" or "current".
type DeckNode struct {
	Pattern string
}

func (DeckNode) searchNode() {}

// NoteTypeIDNode matches notes of a specific note type id.
type NoteTypeIDNode struct {
	ID int64
}

func (NoteTypeIDNode) searchNode() {}

// NoteTypeNode matches notes whose note type name matches a wildcard
// pattern.
type NoteTypeNode struct {
	Name string
}

func (NoteTypeNode) searchNode() {}

// RatedNode matches cards reviewed within the last N days, optionally
// restricted to one answer ease button.
type RatedNode struct {
	Days int
	Ease *int
}

func (RatedNode) searchNode() {}

// TagNode matches notes carrying a tag; "*" wildcards are allowed and
// the sentinel "none" matches untagged notes.
type TagNode struct {
	Tag string
}

func (TagNode) searchNode() {}

// DupesNode matches notes of a note type whose first field duplicates
// the given raw text after markup stripping.
type DupesNode struct {
	NoteTypeID int64
	Text       string
}

func (DupesNode) searchNode() {}

// StateKind selects a scheduling state for StateNode.
type StateKind int

const (
	StateNew StateKind = iota
	StateReview
	StateLearning
	StateBuried
	StateSuspended
	StateDue
)

// StateNode matches cards in a scheduling state.
type StateNode struct {
	Kind StateKind
}

func (StateNode) searchNode() {}

// FlagNode matches cards carrying flag 0-7.
type FlagNode struct {
	Flag int
}

func (FlagNode) searchNode() {}

// NoteIDsNode matches an explicit note id list.
//
// IDs is a pre-formatted comma-separated literal inserted into the SQL
// as-is, not bound as parameters. The caller guarantees it came from
// validated identifiers, never raw user text; the parser only produces
// it from digit/comma runs.
type NoteIDsNode struct {
	IDs string
}

func (NoteIDsNode) searchNode() {}

// CardIDsNode matches an explicit card id list, under the same trust
// contract as NoteIDsNode.
type CardIDsNode struct {
	IDs string
}

func (CardIDsNode) searchNode() {}

// PropertyKind is the scheduling property a PropertyNode compares.
type PropertyKind interface {
	propertyKind()
}

// PropDue compares due dates as a day offset relative to today.
type PropDue struct{ Days int }

func (PropDue) propertyKind() {}

// PropInterval compares the review interval in days.
type PropInterval struct{ Interval int }

func (PropInterval) propertyKind() {}

// PropReps compares the review count.
type PropReps struct{ Reps int }

func (PropReps) propertyKind() {}

// PropLapses compares the lapse count.
type PropLapses struct{ Lapses int }

func (PropLapses) propertyKind() {}

// PropEase compares the ease factor; the float is matched against the
// stored fixed-point representation (x1000).
type PropEase struct{ Ease float64 }

func (PropEase) propertyKind() {}

// PropertyNode compares a scheduling property with one of the
// operators <, >, <=, >=, = or !=.
type PropertyNode struct {
	Op   string
	Kind PropertyKind
}

func (PropertyNode) searchNode() {}
