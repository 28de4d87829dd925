// Package dice evaluates dice-notation expressions such as "2d20+10-2" or
// "d6". Notation is tokenized, parsed under an operator-precedence grammar
// and interpreted against an injectable random source.
package dice

// Result carries the evaluated total along with the introspection data
// behind it: the parsed tree and every individual die value in draw order.
type Result struct {
	Total int
	Draws []int
	Tree  Expr
}

// Roll evaluates notation with the default crypto/rand source.
func Roll(notation string) (int, error) {
	return RollWith(notation, CryptoSource())
}

// RollWith evaluates notation drawing die results from src.
func RollWith(notation string, src Source) (int, error) {
	expr, err := Parse(notation)
	if err != nil {
		return 0, err
	}
	return Eval(expr, src)
}

// Detail evaluates notation and returns the structured result, preserving
// the parse tree and the per-die draws for inspection.
func Detail(notation string, src Source) (Result, error) {
	expr, err := Parse(notation)
	if err != nil {
		return Result{}, err
	}

	ev := &evaluator{src: src}
	total, err := ev.eval(expr)
	if err != nil {
		return Result{}, err
	}

	return Result{Total: total, Draws: ev.draws, Tree: expr}, nil
}
