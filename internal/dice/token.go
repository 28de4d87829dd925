package dice

import "fmt"

// TokenKind discriminates the lexical token variants.
type TokenKind int

const (
	// TokenNumber is an unsigned decimal literal.
	TokenNumber TokenKind = iota
	// TokenPlus is the addition operator.
	TokenPlus
	// TokenMinus is the subtraction operator.
	TokenMinus
	// TokenDie is the die operator, written d or D.
	TokenDie
	// TokenEOF marks the end of the input.
	TokenEOF
)

// Token is one lexical unit of dice notation.
type Token struct {
	Kind   TokenKind
	Value  int // set for TokenNumber
	Offset int // byte offset in the input
}

func (k TokenKind) String() string {
	switch k {
	case TokenNumber:
		return "number"
	case TokenPlus:
		return "'+'"
	case TokenMinus:
		return "'-'"
	case TokenDie:
		return "'d'"
	case TokenEOF:
		return "end of input"
	}
	return "unknown token"
}

func (t Token) String() string {
	if t.Kind == TokenNumber {
		return fmt.Sprintf("number %d", t.Value)
	}
	return t.Kind.String()
}
