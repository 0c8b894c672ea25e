package search

import "unicode"

// TokenType represents the type of a lexer token.
type TokenType int

const (
	TokenEOF    TokenType = iota
	TokenTerm             // a search term, possibly key:value, quotes resolved
	TokenAnd              // the word "and"
	TokenOr               // the word "or"
	TokenNot              // leading -
	TokenLParen           // (
	TokenRParen           // )
)

// Token represents a lexer token.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Lexer tokenizes a search string.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer for the given input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	start := l.pos
	switch l.input[l.pos] {
	case '(':
		l.pos++
		return Token{Type: TokenLParen, Value: "(", Pos: start}
	case ')':
		l.pos++
		return Token{Type: TokenRParen, Value: ")", Pos: start}
	case '-':
		l.pos++
		return Token{Type: TokenNot, Value: "-", Pos: start}
	}

	term := l.readTerm()
	switch term {
	case "and", "AND":
		return Token{Type: TokenAnd, Value: term, Pos: start}
	case "or", "OR":
		return Token{Type: TokenOr, Value: term, Pos: start}
	}
	return Token{Type: TokenTerm, Value: term, Pos: start}
}

// readTerm consumes a term, honoring double quotes: whitespace and
// parens inside a quoted section belong to the term, and the quote
// characters themselves are dropped (`deck:"My Deck"` yields
// `deck:My Deck`).
func (l *Lexer) readTerm() string {
	var out []byte
	inQuote := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '"' {
			inQuote = !inQuote
			l.pos++
			continue
		}
		if !inQuote && (isSpaceByte(ch) || ch == '(' || ch == ')') {
			break
		}
		out = append(out, ch)
		l.pos++
	}
	return string(out)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpaceByte(l.input[l.pos]) {
		l.pos++
	}
}

func isSpaceByte(ch byte) bool {
	return ch < 0x80 && unicode.IsSpace(rune(ch))
}
