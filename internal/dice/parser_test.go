package dice

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1d20", "(d 1 20)"},
		{"-1d20", "(d (- 1) 20)"},
		{"d20", "(d 1 20)"},
		{"-d20", "(- (d 1 20))"},
		{"3d6+10", "(+ (d 3 6) 10)"},
		{"3-d6", "(- 3 (d 1 6))"},
		{"d3-2", "(- (d 1 3) 2)"},
		{"-2-d8", "(- (- 2) (d 1 8))"},
		{"+1--d3", "(- (+ 1) (- (d 1 3)))"},
		{"1d20+2d3", "(+ (d 1 20) (d 2 3))"},
		{"2d20+10-2", "(- (+ (d 2 20) 10) 2)"},
		{"2d6d4", "(d (d 2 6) 4)"},
		{"1+2-3", "(- (+ 1 2) 3)"},
		{"--5", "(- (- 5))"},
		{"++5", "(+ (+ 5))"},
		{"7", "7"},
		{" 2 d 6 + 3 ", "(+ (d 2 6) 3)"},
	}

	for _, tt := range tests {
		expr, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("%q: unexpected parse error: %v", tt.input, err)
		}
		if expr.String() != tt.expected {
			t.Errorf("%q: parsed as %s, expected %s", tt.input, expr, tt.expected)
		}
	}
}

func TestParseMissingOperand(t *testing.T) {
	for _, input := range []string{"", "1d", "1+", "-", "d", "2d6-", "1d20 d"} {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("%q parsed without error", input)
		}
		var endOfInput *UnexpectedEndOfInputError
		if !errors.As(err, &endOfInput) {
			t.Errorf("%q: expected UnexpectedEndOfInputError, got %v", input, err)
		}
	}
}

func TestParseTrailingInput(t *testing.T) {
	for _, input := range []string{"1 2", "2d6 7", "1 d20 5"} {
		_, err := Parse(input)
		if err == nil {
			t.Fatalf("%q parsed without error", input)
		}
		var trailing *TrailingInputError
		if !errors.As(err, &trailing) {
			t.Errorf("%q: expected TrailingInputError, got %v", input, err)
		}
	}
}

func TestParseLexicalErrorsPropagate(t *testing.T) {
	_, err := Parse("1d6x")
	var unexpected *UnexpectedCharacterError
	if !errors.As(err, &unexpected) {
		t.Fatalf("expected UnexpectedCharacterError, got %v", err)
	}

	_, err = Parse("01")
	var invalidStart *InvalidNumberStartError
	if !errors.As(err, &invalidStart) {
		t.Fatalf("expected InvalidNumberStartError, got %v", err)
	}
}
