package dice

import (
	"math"
	"unicode/utf8"
)

// Lexer scans dice notation into a lazy token stream terminated by a single
// TokenEOF. Whitespace (space, tab) between tokens carries no meaning.
type Lexer struct {
	input  string
	pos    int
	peeked *Token
}

// NewLexer returns a scanner positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked == nil {
		tok, err := l.scan()
		if err != nil {
			return Token{}, err
		}
		l.peeked = &tok
	}
	return *l.peeked, nil
}

// Next consumes and returns the next token.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

func (l *Lexer) scan() (Token, error) {
	for l.pos < len(l.input) && (l.input[l.pos] == ' ' || l.input[l.pos] == '\t') {
		l.pos++
	}

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Offset: l.pos}, nil
	}

	start := l.pos
	switch c := l.input[l.pos]; {
	case c == '+':
		l.pos++
		return Token{Kind: TokenPlus, Offset: start}, nil
	case c == '-':
		l.pos++
		return Token{Kind: TokenMinus, Offset: start}, nil
	case c == 'd' || c == 'D':
		l.pos++
		return Token{Kind: TokenDie, Offset: start}, nil
	case c == '0':
		// The grammar has no leading zeroes: <number> starts with 1..9.
		return Token{}, &InvalidNumberStartError{Offset: start}
	case c >= '1' && c <= '9':
		return l.scanNumber()
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, &UnexpectedCharacterError{Char: r, Offset: start}
	}
}

func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	value := 0
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		digit := int(l.input[l.pos] - '0')
		if value > (math.MaxInt-digit)/10 {
			return Token{}, &NumberOverflowError{Offset: start}
		}
		value = value*10 + digit
		l.pos++
	}
	return Token{Kind: TokenNumber, Value: value, Offset: start}, nil
}
