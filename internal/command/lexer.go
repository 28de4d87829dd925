package command

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions. Notation
// greedily eats digit/d runs, so a macro name starting with 'd' splits into
// Notation+Ident tokens; joining the captured parts recovers it.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(?:roll|tree|seed|macros|help|quit|exit)\b`},
	{Name: "Notation", Pattern: `[0-9dD][0-9dD+\-]*`},
	{Name: "Op", Pattern: `[+-]`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
