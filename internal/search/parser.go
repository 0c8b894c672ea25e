package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Parse turns user-entered search text into an expression tree rooted
// at a group. Adjacent terms get an implicit "and"; "or" must be
// written out; "-" negates the next operand; parentheses group.
//
// The returned group's children alternate operands and connectors,
// which is the contract the compiler relies on.
func Parse(input string) (GroupNode, error) {
	p := &parser{lexer: NewLexer(input)}
	p.advance()

	group, err := p.parseGroup(false)
	if err != nil {
		return GroupNode{}, err
	}
	if p.tok.Type != TokenEOF {
		return GroupNode{}, fmt.Errorf("unexpected %q at position %d", p.tok.Value, p.tok.Pos)
	}
	return group, nil
}

type parser struct {
	lexer *Lexer
	tok   Token
}

func (p *parser) advance() {
	p.tok = p.lexer.NextToken()
}

// parseGroup consumes nodes until EOF, or until a closing paren when
// nested is true. It inserts the implicit AndNode between adjacent
// operands so the child list always alternates.
func (p *parser) parseGroup(nested bool) (GroupNode, error) {
	var children []Node
	lastWasOperand := false

	appendOperand := func(n Node) {
		if lastWasOperand {
			children = append(children, AndNode{})
		}
		children = append(children, n)
		lastWasOperand = true
	}

loop:
	for {
		switch p.tok.Type {
		case TokenEOF:
			if nested {
				return GroupNode{}, fmt.Errorf("unclosed group")
			}
			break loop
		case TokenRParen:
			if !nested {
				return GroupNode{}, fmt.Errorf("unmatched ) at position %d", p.tok.Pos)
			}
			break loop
		case TokenAnd, TokenOr:
			if !lastWasOperand {
				return GroupNode{}, fmt.Errorf("%q needs a search term before it", p.tok.Value)
			}
			if p.tok.Type == TokenOr {
				children = append(children, OrNode{})
			} else {
				children = append(children, AndNode{})
			}
			lastWasOperand = false
			p.advance()
		default:
			node, err := p.parseOperand()
			if err != nil {
				return GroupNode{}, err
			}
			appendOperand(node)
		}
	}

	if len(children) == 0 {
		return GroupNode{}, fmt.Errorf("empty search")
	}
	if !lastWasOperand {
		return GroupNode{}, fmt.Errorf("search ends with a dangling connector")
	}

	return GroupNode{Children: children}, nil
}

// parseOperand handles negation, nested groups, and single terms.
func (p *parser) parseOperand() (Node, error) {
	if p.tok.Type == TokenNot {
		p.advance()
		child, err := p.parseOperand()
		if err != nil {
			return nil, err
		}
		return NotNode{Child: child}, nil
	}

	if p.tok.Type == TokenLParen {
		p.advance()
		group, err := p.parseGroup(true)
		if err != nil {
			return nil, err
		}
		// consume the )
		p.advance()
		return group, nil
	}

	if p.tok.Type != TokenTerm {
		return nil, fmt.Errorf("unexpected %q at position %d", p.tok.Value, p.tok.Pos)
	}
	node, err := parseTerm(p.tok.Value)
	if err != nil {
		return nil, err
	}
	p.advance()
	return node, nil
}

var idListRe = regexp.MustCompile(`^\d+(,\d+)*$`)

// parseTerm interprets a single term, splitting key:value qualifiers.
func parseTerm(term string) (Node, error) {
	colon := strings.Index(term, ":")
	if colon < 0 {
		return TextNode{Text: term}, nil
	}

	key := strings.ToLower(term[:colon])
	val := term[colon+1:]

	switch key {
	case "deck":
		if val == "" {
			return nil, fmt.Errorf("deck: needs a deck name")
		}
		return DeckNode{Pattern: val}, nil
	case "tag":
		if val == "" {
			return nil, fmt.Errorf("tag: needs a tag")
		}
		return TagNode{Tag: val}, nil
	case "card":
		return parseTemplate(val)
	case "note":
		if val == "" {
			return nil, fmt.Errorf("note: needs a note type name")
		}
		return NoteTypeNode{Name: val}, nil
	case "mid":
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("mid: needs a note type id: %q", val)
		}
		return NoteTypeIDNode{ID: id}, nil
	case "nid":
		if !idListRe.MatchString(val) {
			return nil, fmt.Errorf("nid: needs a comma-separated id list: %q", val)
		}
		return NoteIDsNode{IDs: val}, nil
	case "cid":
		if !idListRe.MatchString(val) {
			return nil, fmt.Errorf("cid: needs a comma-separated id list: %q", val)
		}
		return CardIDsNode{IDs: val}, nil
	case "added":
		days, err := strconv.Atoi(val)
		if err != nil || days < 0 {
			return nil, fmt.Errorf("added: needs a day count: %q", val)
		}
		return AddedInDaysNode{Days: days}, nil
	case "rated":
		return parseRated(val)
	case "is":
		return parseState(val)
	case "flag":
		flag, err := strconv.Atoi(val)
		if err != nil || flag < 0 || flag > 7 {
			return nil, fmt.Errorf("flag: needs a value between 0 and 7: %q", val)
		}
		return FlagNode{Flag: flag}, nil
	case "prop":
		return parseProp(val)
	case "dupe":
		return parseDupe(val)
	default:
		// Any other key is a field search on that field name.
		return SingleFieldNode{Field: term[:colon], Text: val}, nil
	}
}

// parseTemplate resolves card: values; digits are a 1-based template
// ordinal, anything else a wildcard template name.
func parseTemplate(val string) (Node, error) {
	if val == "" {
		return nil, fmt.Errorf("card: needs a template name or number")
	}
	if n, err := strconv.Atoi(val); err == nil {
		if n < 1 {
			return nil, fmt.Errorf("card: template numbers start at 1")
		}
		return TemplateOrdinalNode{Ord: n - 1}, nil
	}
	return TemplateNameNode{Name: val}, nil
}

// parseRated handles rated:N and rated:N:E.
func parseRated(val string) (Node, error) {
	daysStr, easeStr, hasEase := strings.Cut(val, ":")
	days, err := strconv.Atoi(daysStr)
	if err != nil || days < 1 {
		return nil, fmt.Errorf("rated: needs a day count: %q", val)
	}
	node := RatedNode{Days: days}
	if hasEase {
		ease, err := strconv.Atoi(easeStr)
		if err != nil || ease < 1 || ease > 4 {
			return nil, fmt.Errorf("rated: answer ease must be 1-4: %q", easeStr)
		}
		node.Ease = &ease
	}
	return node, nil
}

func parseState(val string) (Node, error) {
	switch strings.ToLower(val) {
	case "new":
		return StateNode{Kind: StateNew}, nil
	case "review":
		return StateNode{Kind: StateReview}, nil
	case "learn":
		return StateNode{Kind: StateLearning}, nil
	case "buried":
		return StateNode{Kind: StateBuried}, nil
	case "suspended":
		return StateNode{Kind: StateSuspended}, nil
	case "due":
		return StateNode{Kind: StateDue}, nil
	default:
		return nil, fmt.Errorf("is: unknown state %q", val)
	}
}

var propOps = []string{"<=", ">=", "!=", "=", "<", ">"}

// parseProp handles prop:NAME{OP}VALUE, e.g. prop:ivl>=10, prop:ease<2.5.
func parseProp(val string) (Node, error) {
	opIdx := -1
	op := ""
	for _, candidate := range propOps {
		if i := strings.Index(val, candidate); i > 0 && (opIdx == -1 || i < opIdx) {
			opIdx = i
			op = candidate
		}
	}
	if opIdx < 0 {
		return nil, fmt.Errorf("prop: needs a comparison like prop:ivl>=10: %q", val)
	}

	name := val[:opIdx]
	rhs := val[opIdx+len(op):]

	if name == "ease" {
		ease, err := strconv.ParseFloat(rhs, 64)
		if err != nil {
			return nil, fmt.Errorf("prop: ease needs a number: %q", rhs)
		}
		return PropertyNode{Op: op, Kind: PropEase{Ease: ease}}, nil
	}

	n, err := strconv.Atoi(rhs)
	if err != nil {
		return nil, fmt.Errorf("prop: %s needs an integer: %q", name, rhs)
	}
	switch name {
	case "due":
		return PropertyNode{Op: op, Kind: PropDue{Days: n}}, nil
	case "ivl":
		return PropertyNode{Op: op, Kind: PropInterval{Interval: n}}, nil
	case "reps":
		return PropertyNode{Op: op, Kind: PropReps{Reps: n}}, nil
	case "lapses":
		return PropertyNode{Op: op, Kind: PropLapses{Lapses: n}}, nil
	default:
		return nil, fmt.Errorf("prop: unknown property %q", name)
	}
}

// parseDupe handles dupe:NOTETYPEID,TEXT.
func parseDupe(val string) (Node, error) {
	idStr, txt, ok := strings.Cut(val, ",")
	if !ok {
		return nil, fmt.Errorf("dupe: needs a note type id and text: %q", val)
	}
	ntid, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("dupe: needs a note type id: %q", idStr)
	}
	return DupesNode{NoteTypeID: ntid, Text: txt}, nil
}
