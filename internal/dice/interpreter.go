package dice

import (
	crand "crypto/rand"
	"fmt"
	"math"
	"math/big"
	mrand "math/rand"
)

// Source yields the random material for die rolls. Roll must return a
// uniformly distributed integer in [1, sides]; the evaluator calls it once
// per die, in draw order, making evaluation a pure function of the tree and
// the values the source yields.
type Source interface {
	Roll(sides int) int
}

type cryptoSource struct{}

func (cryptoSource) Roll(sides int) int {
	n, _ := crand.Int(crand.Reader, big.NewInt(int64(sides)))
	return int(n.Int64()) + 1
}

// CryptoSource returns the default source, backed by crypto/rand.
func CryptoSource() Source {
	return cryptoSource{}
}

type seededSource struct {
	rng *mrand.Rand
}

func (s *seededSource) Roll(sides int) int {
	return s.rng.Intn(sides) + 1
}

// SeededSource returns a deterministic source for reproducible runs.
func SeededSource(seed int64) Source {
	return &seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

// SequenceSource replays a fixed series of die results, then wraps around.
// It exists for tests that pin exact draws.
type SequenceSource struct {
	values []int
	pos    int
}

// NewSequenceSource returns a source replaying values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Roll(sides int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

type evaluator struct {
	src   Source
	draws []int
}

// Eval walks the tree and computes its value, drawing from src for each die.
// Operands evaluate left before right, so the order of draws consumed from
// src is fixed by the tree shape alone.
func Eval(expr Expr, src Source) (int, error) {
	ev := &evaluator{src: src}
	return ev.eval(expr)
}

func (ev *evaluator) eval(expr Expr) (int, error) {
	switch node := expr.(type) {
	case Literal:
		return node.Value, nil
	case Identity:
		return ev.eval(node.Operand)
	case Negate:
		v, err := ev.eval(node.Operand)
		if err != nil {
			return 0, err
		}
		if v == math.MinInt {
			return 0, &ArithmeticOverflowError{Op: "negation"}
		}
		return -v, nil
	case Add:
		l, err := ev.eval(node.Left)
		if err != nil {
			return 0, err
		}
		r, err := ev.eval(node.Right)
		if err != nil {
			return 0, err
		}
		return checkedAdd(l, r, "addition")
	case Subtract:
		l, err := ev.eval(node.Left)
		if err != nil {
			return 0, err
		}
		r, err := ev.eval(node.Right)
		if err != nil {
			return 0, err
		}
		return checkedSub(l, r)
	case RollExpr:
		return ev.evalRoll(node)
	}
	return 0, fmt.Errorf("unknown expression node %T", expr)
}

func (ev *evaluator) evalRoll(node RollExpr) (int, error) {
	count, err := ev.eval(node.Count)
	if err != nil {
		return 0, err
	}
	sides, err := ev.eval(node.Sides)
	if err != nil {
		return 0, err
	}

	if count < 1 {
		return 0, &InvalidRollCountError{Count: count}
	}
	if sides < 1 {
		return 0, &InvalidSidesError{Sides: sides}
	}

	// Sum incrementally so a huge count cannot allocate anything and the
	// overflow check runs per die.
	sum := 0
	for i := 0; i < count; i++ {
		v := ev.src.Roll(sides)
		ev.draws = append(ev.draws, v)
		sum, err = checkedAdd(sum, v, "roll")
		if err != nil {
			return 0, err
		}
	}
	return sum, nil
}

func checkedAdd(a, b int, op string) (int, error) {
	if (b > 0 && a > math.MaxInt-b) || (b < 0 && a < math.MinInt-b) {
		return 0, &ArithmeticOverflowError{Op: op}
	}
	return a + b, nil
}

func checkedSub(a, b int) (int, error) {
	if (b < 0 && a > math.MaxInt+b) || (b > 0 && a < math.MinInt+b) {
		return 0, &ArithmeticOverflowError{Op: "subtraction"}
	}
	return a - b, nil
}
