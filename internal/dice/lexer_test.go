package dice

import (
	"errors"
	"strings"
	"testing"
)

func collect(t *testing.T, input string) []Token {
	t.Helper()
	lx := NewLexer(input)
	var out []Token
	for {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error for %q: %v", input, err)
		}
		out = append(out, tok)
		if tok.Kind == TokenEOF {
			return out
		}
	}
}

func TestLexValid(t *testing.T) {
	tests := []struct {
		input string
		kinds []TokenKind
	}{
		{"+-1234567890d", []TokenKind{TokenPlus, TokenMinus, TokenNumber, TokenDie, TokenEOF}},
		{"d20", []TokenKind{TokenDie, TokenNumber, TokenEOF}},
		{"D20", []TokenKind{TokenDie, TokenNumber, TokenEOF}},
		{"2d20", []TokenKind{TokenNumber, TokenDie, TokenNumber, TokenEOF}},
		{"2d20+1d8", []TokenKind{TokenNumber, TokenDie, TokenNumber, TokenPlus, TokenNumber, TokenDie, TokenNumber, TokenEOF}},
		{" 2 d\t20 ", []TokenKind{TokenNumber, TokenDie, TokenNumber, TokenEOF}},
		{"", []TokenKind{TokenEOF}},
		{"10", []TokenKind{TokenNumber, TokenEOF}},
	}

	for _, tt := range tests {
		tokens := collect(t, tt.input)
		if len(tokens) != len(tt.kinds) {
			t.Fatalf("%q: expected %d tokens, got %d", tt.input, len(tt.kinds), len(tokens))
		}
		for i, k := range tt.kinds {
			if tokens[i].Kind != k {
				t.Errorf("%q: token %d is %s, expected %s", tt.input, i, tokens[i].Kind, k)
			}
		}
	}
}

func TestLexNumberValues(t *testing.T) {
	tokens := collect(t, "1234567890")
	if tokens[0].Value != 1234567890 {
		t.Errorf("expected 1234567890, got %d", tokens[0].Value)
	}

	tokens = collect(t, "2d20")
	if tokens[0].Value != 2 || tokens[2].Value != 20 {
		t.Errorf("expected values 2 and 20, got %d and %d", tokens[0].Value, tokens[2].Value)
	}
}

func TestLexLeadingZero(t *testing.T) {
	for _, input := range []string{"0", "01", "1d06", "0d6"} {
		lx := NewLexer(input)
		var lexErr error
		for lexErr == nil {
			var tok Token
			tok, lexErr = lx.Next()
			if lexErr == nil && tok.Kind == TokenEOF {
				t.Fatalf("%q lexed without error", input)
			}
		}
		var invalidStart *InvalidNumberStartError
		if !errors.As(lexErr, &invalidStart) {
			t.Errorf("%q: expected InvalidNumberStartError, got %v", input, lexErr)
		}
	}
}

func TestLexUnexpectedCharacter(t *testing.T) {
	lx := NewLexer("1d6x")
	var lexErr error
	for lexErr == nil {
		_, lexErr = lx.Next()
	}

	var unexpected *UnexpectedCharacterError
	if !errors.As(lexErr, &unexpected) {
		t.Fatalf("expected UnexpectedCharacterError, got %v", lexErr)
	}
	if unexpected.Char != 'x' || unexpected.Offset != 3 {
		t.Errorf("expected 'x' at offset 3, got %q at %d", unexpected.Char, unexpected.Offset)
	}
}

func TestLexNumberOverflow(t *testing.T) {
	lx := NewLexer(strings.Repeat("9", 25))
	_, err := lx.Next()

	var overflow *NumberOverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("expected NumberOverflowError, got %v", err)
	}
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	lx := NewLexer("2d6")

	first, err := lx.Peek()
	if err != nil {
		t.Fatal(err)
	}
	second, err := lx.Next()
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("peeked token %v differs from next token %v", first, second)
	}
}
