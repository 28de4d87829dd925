package dice

// Binding powers for the precedence climb, lowest to highest. The left/right
// split makes '+', '-' and 'd' left-associative; prefix operators bind
// tighter than any infix, so "-2d6" reads as (-2) rolled d6.
const (
	powerAdditiveLeft  = 1
	powerAdditiveRight = 2
	powerRollLeft      = 3
	powerRollRight     = 4
	powerPrefixSign    = 5
	powerPrefixDie     = 7
)

type parser struct {
	lx *Lexer
}

// Parse tokenizes and parses notation into an expression tree. The whole
// input must form one expression: leftover tokens are a TrailingInputError.
func Parse(notation string) (Expr, error) {
	p := &parser{lx: NewLexer(notation)}

	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	tok, err := p.lx.Next()
	if err != nil {
		return nil, err
	}
	if tok.Kind != TokenEOF {
		return nil, &TrailingInputError{Found: tok}
	}
	return expr, nil
}

func (p *parser) parseExpr(minPower int) (Expr, error) {
	lhs, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.lx.Peek()
		if err != nil {
			return nil, err
		}

		var leftPower, rightPower int
		switch tok.Kind {
		case TokenPlus, TokenMinus:
			leftPower, rightPower = powerAdditiveLeft, powerAdditiveRight
		case TokenDie:
			leftPower, rightPower = powerRollLeft, powerRollRight
		default:
			// Not an infix operator; the caller decides whether the
			// leftover token is trailing input.
			return lhs, nil
		}

		if leftPower < minPower {
			return lhs, nil
		}
		if _, err := p.lx.Next(); err != nil {
			return nil, err
		}

		rhs, err := p.parseExpr(rightPower)
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenPlus:
			lhs = Add{Left: lhs, Right: rhs}
		case TokenMinus:
			lhs = Subtract{Left: lhs, Right: rhs}
		case TokenDie:
			lhs = RollExpr{Count: lhs, Sides: rhs}
		}
	}
}

func (p *parser) parseOperand() (Expr, error) {
	tok, err := p.lx.Next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenNumber:
		return Literal{Value: tok.Value}, nil
	case TokenPlus:
		operand, err := p.parseExpr(powerPrefixSign)
		if err != nil {
			return nil, err
		}
		return Identity{Operand: operand}, nil
	case TokenMinus:
		operand, err := p.parseExpr(powerPrefixSign)
		if err != nil {
			return nil, err
		}
		return Negate{Operand: operand}, nil
	case TokenDie:
		// Bare "dN" rolls one die.
		sides, err := p.parseExpr(powerPrefixDie)
		if err != nil {
			return nil, err
		}
		return RollExpr{Count: Literal{Value: 1}, Sides: sides}, nil
	case TokenEOF:
		return nil, &UnexpectedEndOfInputError{Expected: "an operand"}
	default:
		return nil, &SyntaxError{Expected: "an operand", Found: tok}
	}
}
