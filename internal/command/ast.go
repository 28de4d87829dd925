package command

// Command represents one line of REPL input.
type Command struct {
	Roll   *RollCmd   `parser:"( @@"`
	Tree   *TreeCmd   `parser:"| @@"`
	Seed   *SeedCmd   `parser:"| @@"`
	Macros *MacrosCmd `parser:"| @@"`
	Help   *HelpCmd   `parser:"| @@"`
	Quit   *QuitCmd   `parser:"| @@ )"`
}

// RollCmd evaluates dice notation, or a macro name expanding to notation.
// The notation may be split across whitespace ("roll 2d6 + 3"); the parts
// are joined back together before parsing.
type RollCmd struct {
	Keyword string   `parser:"@(\"roll\"|\"Roll\"|\"ROLL\")"`
	Parts   []string `parser:"@(Notation|Op|Ident)+"`
}

// TreeCmd shows the parse tree of a notation without evaluating it.
type TreeCmd struct {
	Keyword string   `parser:"@(\"tree\"|\"Tree\"|\"TREE\")"`
	Parts   []string `parser:"@(Notation|Op|Ident)+"`
}

// SeedCmd switches the session to a seeded deterministic source, or back to
// the default when no seed is given.
type SeedCmd struct {
	Keyword string `parser:"@(\"seed\"|\"Seed\"|\"SEED\")"`
	Value   string `parser:"@Notation?"`
}

// MacrosCmd lists the loaded macro table.
type MacrosCmd struct {
	Keyword string `parser:"@(\"macros\"|\"Macros\"|\"MACROS\")"`
}

// HelpCmd prints usage guidance, optionally for one command.
type HelpCmd struct {
	Keyword string `parser:"@(\"help\"|\"Help\"|\"HELP\")"`
	Command string `parser:"(@Ident|@Keyword)?"`
}

// QuitCmd leaves the REPL.
type QuitCmd struct {
	Keyword string `parser:"@(\"quit\"|\"Quit\"|\"QUIT\"|\"exit\"|\"Exit\"|\"EXIT\")"`
}

// notation joins the captured notation parts back into one string.
func notation(parts []string) string {
	out := ""
	for _, p := range parts {
		out += p
	}
	return out
}
