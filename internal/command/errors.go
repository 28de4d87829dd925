package command

import (
	"fmt"
	"strings"
)

// MapError takes a raw input line and a parse error, and returns a
// human-friendly guidance message for the command the user seemed to want.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	parts := strings.Fields(strings.ToLower(input))
	cmd := parts[0]

	switch cmd {
	case "roll":
		return fmt.Errorf("The command roll must be: roll <notation|macro>, e.g. roll 2d20+10-2")
	case "tree":
		return fmt.Errorf("The command tree must be: tree <notation|macro>")
	case "seed":
		return fmt.Errorf("The command seed must be: seed [number]")
	case "macros":
		return fmt.Errorf("The command macros takes no arguments")
	case "help":
		return fmt.Errorf("The command help must be: help [command]")
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
