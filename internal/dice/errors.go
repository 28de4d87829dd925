package dice

import "fmt"

// UnexpectedCharacterError reports a rune the tokenizer does not recognize.
type UnexpectedCharacterError struct {
	Char   rune
	Offset int
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Char, e.Offset)
}

// InvalidNumberStartError reports a numeric literal starting with a zero.
type InvalidNumberStartError struct {
	Offset int
}

func (e *InvalidNumberStartError) Error() string {
	return fmt.Sprintf("invalid number start at offset %d: literals must not begin with 0", e.Offset)
}

// NumberOverflowError reports a numeric literal too large to represent.
type NumberOverflowError struct {
	Offset int
}

func (e *NumberOverflowError) Error() string {
	return fmt.Sprintf("number at offset %d overflows the integer range", e.Offset)
}

// SyntaxError reports a token that does not fit the expected production.
type SyntaxError struct {
	Expected string
	Found    Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, found %s at offset %d", e.Expected, e.Found, e.Found.Offset)
}

// UnexpectedEndOfInputError reports input that ends where an operand is required.
type UnexpectedEndOfInputError struct {
	Expected string
}

func (e *UnexpectedEndOfInputError) Error() string {
	return fmt.Sprintf("unexpected end of input: expected %s", e.Expected)
}

// TrailingInputError reports leftover tokens after a complete expression.
type TrailingInputError struct {
	Found Token
}

func (e *TrailingInputError) Error() string {
	return fmt.Sprintf("trailing input: %s at offset %d", e.Found, e.Found.Offset)
}

// InvalidRollCountError reports a roll whose evaluated count is below 1.
type InvalidRollCountError struct {
	Count int
}

func (e *InvalidRollCountError) Error() string {
	return fmt.Sprintf("cannot roll %d dice: count must be at least 1", e.Count)
}

// InvalidSidesError reports a roll whose evaluated side count is below 1.
type InvalidSidesError struct {
	Sides int
}

func (e *InvalidSidesError) Error() string {
	return fmt.Sprintf("cannot roll a %d-sided die: sides must be at least 1", e.Sides)
}

// ArithmeticOverflowError reports an evaluation step that left the integer range.
type ArithmeticOverflowError struct {
	Op string
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("arithmetic overflow during %s", e.Op)
}
