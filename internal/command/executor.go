// Package command implements the small REPL language layered over the dice
// evaluator: roll, tree, seed, macros, help, quit.
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/erikjuhani/droll/internal/dice"
	"github.com/erikjuhani/droll/internal/macro"
)

// Executor parses REPL lines and runs them against a session-wide random
// source and macro table.
type Executor struct {
	parser *participle.Parser[Command]
	src    dice.Source
	macros *macro.Table
}

// NewExecutor creates an executor with the default crypto source. A nil
// table means no macros are loaded.
func NewExecutor(macros *macro.Table) *Executor {
	if macros == nil {
		macros = macro.Empty()
	}
	return &Executor{
		parser: Build(),
		src:    dice.CryptoSource(),
		macros: macros,
	}
}

// Execute runs one input line. It returns the rendered output and whether
// the session should end.
func (e *Executor) Execute(line string) (string, bool, error) {
	cmd, err := e.parser.ParseString("", line)
	if err != nil {
		return "", false, MapError(line, err)
	}

	switch {
	case cmd.Roll != nil:
		out, err := e.roll(notation(cmd.Roll.Parts))
		return out, false, err
	case cmd.Tree != nil:
		out, err := e.tree(notation(cmd.Tree.Parts))
		return out, false, err
	case cmd.Seed != nil:
		return e.seed(cmd.Seed.Value)
	case cmd.Macros != nil:
		return e.listMacros(), false, nil
	case cmd.Help != nil:
		return helpText(cmd.Help.Command), false, nil
	case cmd.Quit != nil:
		return "Goodbye!", true, nil
	}
	return "", false, MapError(line, nil)
}

// expand resolves a macro name to its notation; anything else passes
// through untouched.
func (e *Executor) expand(input string) string {
	if resolved, ok := e.macros.Resolve(input); ok {
		return resolved
	}
	return input
}

func (e *Executor) roll(input string) (string, error) {
	expanded := e.expand(input)
	res, err := dice.Detail(expanded, e.src)
	if err != nil {
		return "", err
	}

	out := fmt.Sprintf("%s = %d", expanded, res.Total)
	if len(res.Draws) > 0 {
		out += fmt.Sprintf("  (rolled %s)", joinInts(res.Draws))
	}
	return out, nil
}

func (e *Executor) tree(input string) (string, error) {
	expr, err := dice.Parse(e.expand(input))
	if err != nil {
		return "", err
	}
	return expr.String(), nil
}

func (e *Executor) seed(value string) (string, bool, error) {
	if value == "" {
		e.src = dice.CryptoSource()
		return "Using the default random source.", false, nil
	}

	seed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return "", false, fmt.Errorf("seed must be an integer, got %q", value)
	}
	e.src = dice.SeededSource(seed)
	return fmt.Sprintf("Using a deterministic source seeded with %d.", seed), false, nil
}

func (e *Executor) listMacros() string {
	names := e.macros.Names()
	if len(names) == 0 {
		return "No macros loaded."
	}

	var b strings.Builder
	for _, name := range names {
		resolved, _ := e.macros.Resolve(name)
		fmt.Fprintf(&b, "%s: %s\n", name, resolved)
	}
	return strings.TrimRight(b.String(), "\n")
}

func helpText(topic string) string {
	switch strings.ToLower(topic) {
	case "roll":
		return "roll <notation|macro> — evaluate dice notation, e.g. roll 2d20+10-2"
	case "tree":
		return "tree <notation|macro> — show the parse tree without rolling"
	case "seed":
		return "seed [number] — use a seeded source; no argument restores the default"
	case "macros":
		return "macros — list the loaded macros"
	}
	return strings.Join([]string{
		"Commands:",
		"  roll <notation|macro>   evaluate dice notation",
		"  tree <notation|macro>   show the parse tree",
		"  seed [number]           switch random sources",
		"  macros                  list loaded macros",
		"  help [command]          this message",
		"  quit                    leave",
	}, "\n")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
