package search

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/aidanlsb/mnemo/internal/model"
	"github.com/aidanlsb/mnemo/internal/sqlutil"
	"github.com/aidanlsb/mnemo/internal/text"
)

// Session is the read-only view of the collection the compiler needs
// while visiting leaves: the deck and note type catalogs, the current
// deck, and the scheduling clock.
type Session interface {
	Timing() (model.Timing, error)
	AllDecks() ([]model.Deck, error)
	CurrentDeckID() (int64, error)
	AllNoteTypes() ([]*model.NoteType, error)
}

// ErrInvalidCurrentDeck is returned when the configured current deck
// id is missing from the deck catalog.
var ErrInvalidCurrentDeck = errors.New("current deck missing from deck catalog")

// CompiledQuery is a predicate over cards (alias c) joined to their
// notes (alias n), plus the values bound to its placeholders in
// left-to-right order.
type CompiledQuery struct {
	SQL  string
	Args []any
}

type sqlWriter struct {
	sess Session
	sql  strings.Builder
	args []any
}

// Compile walks the expression tree once, left to right, and returns
// the predicate text and its bound parameters. The tree structure is
// reproduced exactly: connectors, negation and grouping land in the
// output where they sat in the tree. Any collaborator failure aborts
// the whole compilation.
func Compile(sess Session, node Node) (*CompiledQuery, error) {
	w := &sqlWriter{sess: sess}
	if err := w.writeNode(node); err != nil {
		return nil, err
	}
	return &CompiledQuery{SQL: w.sql.String(), Args: w.args}, nil
}

func (w *sqlWriter) writeNode(node Node) error {
	switch n := node.(type) {
	case AndNode:
		w.sql.WriteString(" and ")
	case OrNode:
		w.sql.WriteString(" or ")
	case NotNode:
		w.sql.WriteString("not ")
		return w.writeNode(n.Child)
	case GroupNode:
		w.sql.WriteString("(")
		for _, child := range n.Children {
			if err := w.writeNode(child); err != nil {
				return err
			}
		}
		w.sql.WriteString(")")
	default:
		return w.writeLeaf(node)
	}
	return nil
}

func (w *sqlWriter) writeLeaf(node Node) error {
	switch n := node.(type) {
	case TextNode:
		w.writeUnqualified(n.Text)
	case SingleFieldNode:
		return w.writeSingleField(n.Field, n.Text)
	case AddedInDaysNode:
		fmt.Fprintf(&w.sql, "c.id > %d", n.Days)
	case TemplateOrdinalNode:
		fmt.Fprintf(&w.sql, "c.ord = %d", n.Ord)
	case TemplateNameNode:
		return w.writeTemplateName(n.Name)
	case DeckNode:
		return w.writeDeck(n.Pattern)
	case NoteTypeIDNode:
		fmt.Fprintf(&w.sql, "n.mid = %d", n.ID)
	case NoteTypeNode:
		return w.writeNoteType(n.Name)
	case RatedNode:
		return w.writeRated(n.Days, n.Ease)
	case TagNode:
		w.writeTag(n.Tag)
	case DupesNode:
		w.writeDupes(n.NoteTypeID, n.Text)
	case StateNode:
		return w.writeState(n.Kind)
	case FlagNode:
		fmt.Fprintf(&w.sql, "(c.flags & 7) = %d", n.Flag)
	case NoteIDsNode:
		// Trusted literal list; see NoteIDsNode.
		fmt.Fprintf(&w.sql, "n.id in (%s)", n.IDs)
	case CardIDsNode:
		fmt.Fprintf(&w.sql, "c.id in (%s)", n.IDs)
	case PropertyNode:
		return w.writeProp(n.Op, n.Kind)
	default:
		return fmt.Errorf("unsupported search node type: %T", node)
	}
	return nil
}

func (w *sqlWriter) writeUnqualified(txt string) {
	wrapped := "%" + txt + "%"
	w.sql.WriteString(`(n.sfld like ? escape '\' or n.flds like ? escape '\')`)
	w.args = append(w.args, wrapped, wrapped)
}

// writeSingleField binds the value once and references it from every
// matching (note type, field ordinal) branch via a numbered
// placeholder.
func (w *sqlWriter) writeSingleField(fieldName, val string) error {
	noteTypes, err := w.sess.AllNoteTypes()
	if err != nil {
		return err
	}

	type fieldRef struct {
		ntid int64
		ord  int
	}
	var refs []fieldRef
	for _, nt := range noteTypes {
		for _, f := range nt.Fields {
			if strings.EqualFold(f.Name, fieldName) {
				refs = append(refs, fieldRef{nt.ID, f.Ord})
			}
		}
	}

	if len(refs) == 0 {
		w.sql.WriteString("false")
		return nil
	}

	w.args = append(w.args, val)
	argIdx := len(w.args)

	branches := make([]string, len(refs))
	for i, r := range refs {
		branches[i] = fmt.Sprintf("(n.mid = %d and field_at_index(n.flds, %d) like ?%d)", r.ntid, r.ord, argIdx)
	}
	fmt.Fprintf(&w.sql, "(%s)", strings.Join(branches, " or "))
	return nil
}

func (w *sqlWriter) writeTemplateName(name string) error {
	noteTypes, err := w.sess.AllNoteTypes()
	if err != nil {
		return err
	}

	var branches []string
	for _, nt := range noteTypes {
		for _, tmpl := range nt.Templates {
			if text.MatchesWildcard(tmpl.Name, name) {
				branches = append(branches, fmt.Sprintf("(n.mid = %d and c.ord = %d)", nt.ID, tmpl.Ord))
			}
		}
	}

	if len(branches) == 0 {
		w.sql.WriteString("false")
		return nil
	}
	fmt.Fprintf(&w.sql, "(%s)", strings.Join(branches, " or "))
	return nil
}

func (w *sqlWriter) writeDeck(pattern string) error {
	switch pattern {
	case "*":
		w.sql.WriteString("true")
	case "filtered":
		w.sql.WriteString("c.odid > 0")
	default:
		decks, err := w.sess.AllDecks()
		if err != nil {
			return err
		}

		var ids []int64
		if pattern == "current" {
			currentID, err := w.sess.CurrentDeckID()
			if err != nil {
				return err
			}
			current := model.DeckByID(decks, currentID)
			if current == nil {
				return ErrInvalidCurrentDeck
			}
			ids = append([]int64{currentID}, model.ChildDeckIDs(decks, current.Name)...)
		} else {
			for _, d := range decks {
				if text.MatchesWildcard(d.Name, pattern) {
					ids = append(ids, d.ID)
					ids = append(ids, model.ChildDeckIDs(decks, d.Name)...)
				}
			}
		}

		w.sql.WriteString("c.did in ")
		w.sql.WriteString(sqlutil.IDsToString(ids))
	}
	return nil
}

func (w *sqlWriter) writeNoteType(name string) error {
	noteTypes, err := w.sess.AllNoteTypes()
	if err != nil {
		return err
	}

	var ids []int64
	for _, nt := range noteTypes {
		if text.MatchesWildcard(nt.Name, name) {
			ids = append(ids, nt.ID)
		}
	}

	w.sql.WriteString("n.mid in ")
	w.sql.WriteString(sqlutil.IDsToString(ids))
	return nil
}

func (w *sqlWriter) writeRated(days int, ease *int) error {
	timing, err := w.sess.Timing()
	if err != nil {
		return err
	}

	if days > 31 {
		days = 31
	}
	cutoff := timing.NextDayAt - 86_400*int64(days)

	fmt.Fprintf(&w.sql, "c.id in (select cid from revlog where id > %d", cutoff)
	if ease != nil {
		fmt.Fprintf(&w.sql, " and ease = %d", *ease)
	}
	w.sql.WriteString(")")
	return nil
}

func (w *sqlWriter) writeTag(tag string) {
	if tag == "none" {
		w.sql.WriteString("n.tags = ''")
		return
	}

	w.sql.WriteString("n.tags like ?")
	w.args = append(w.args, " "+strings.ReplaceAll(tag, "*", "%")+" ")
}

func (w *sqlWriter) writeDupes(ntid int64, raw string) {
	stripped := text.StripHTMLPreservingMediaFilenames(raw)
	csum := text.FieldChecksum(stripped)
	fmt.Fprintf(&w.sql, "(n.mid = %d and n.csum = %d and field_at_index(n.flds, 0) = ?)", ntid, csum)
	w.args = append(w.args, raw)
}

func (w *sqlWriter) writeState(kind StateKind) error {
	switch kind {
	case StateNew:
		fmt.Fprintf(&w.sql, "c.queue = %d", model.QueueNew)
	case StateReview:
		fmt.Fprintf(&w.sql, "c.queue = %d", model.QueueReview)
	case StateLearning:
		fmt.Fprintf(&w.sql, "c.queue in (%d,%d)", model.QueueLearn, model.QueueDayLearn)
	case StateBuried:
		fmt.Fprintf(&w.sql, "c.queue in (%d,%d)", model.QueueSchedBuried, model.QueueUserBuried)
	case StateSuspended:
		fmt.Fprintf(&w.sql, "c.queue = %d", model.QueueSuspended)
	case StateDue:
		timing, err := w.sess.Timing()
		if err != nil {
			return err
		}
		fmt.Fprintf(&w.sql,
			"(c.queue in (%d,%d) and c.due <= %d) or (c.queue = %d and c.due <= %d)",
			model.QueueReview, model.QueueDayLearn, timing.DaysElapsed,
			model.QueueLearn, timing.NextDayAt)
	default:
		return fmt.Errorf("unknown state kind: %d", kind)
	}
	return nil
}

func (w *sqlWriter) writeProp(op string, kind PropertyKind) error {
	timing, err := w.sess.Timing()
	if err != nil {
		return err
	}

	switch k := kind.(type) {
	case PropDue:
		day := k.Days + timing.DaysElapsed
		fmt.Fprintf(&w.sql, "(c.queue in (%d,%d) and c.due %s %d)",
			model.QueueReview, model.QueueDayLearn, op, day)
	case PropInterval:
		fmt.Fprintf(&w.sql, "c.ivl %s %d", op, k.Interval)
	case PropReps:
		fmt.Fprintf(&w.sql, "c.reps %s %d", op, k.Reps)
	case PropLapses:
		fmt.Fprintf(&w.sql, "c.lapses %s %d", op, k.Lapses)
	case PropEase:
		fmt.Fprintf(&w.sql, "c.ease %s %d", op, int(math.Round(k.Ease*1000)))
	default:
		return fmt.Errorf("unknown property kind: %T", kind)
	}
	return nil
}
