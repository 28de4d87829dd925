package command_test

import (
	"testing"

	"github.com/erikjuhani/droll/internal/command"
)

func TestParseRoll(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "roll 2d20+10-2")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Roll == nil {
		t.Fatalf("Expected RollCmd, got nil")
	}
}

func TestParseRollSplitNotation(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "roll 2d6 + 3")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Roll == nil {
		t.Fatalf("Expected RollCmd, got nil")
	}

	if len(cmd.Roll.Parts) != 3 {
		t.Errorf("Expected 3 notation parts, got %d: %v", len(cmd.Roll.Parts), cmd.Roll.Parts)
	}
}

func TestParseRollMacroName(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "roll attack")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Roll == nil {
		t.Fatalf("Expected RollCmd, got nil")
	}
}

func TestParseTree(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "tree d20")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Tree == nil {
		t.Fatalf("Expected TreeCmd, got nil")
	}
}

func TestParseSeed(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "seed 42")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Seed == nil {
		t.Fatalf("Expected SeedCmd, got nil")
	}

	if cmd.Seed.Value != "42" {
		t.Errorf("Expected seed value 42, got %s", cmd.Seed.Value)
	}
}

func TestParseSeedWithoutValue(t *testing.T) {
	p := command.Build()

	cmd, err := p.ParseString("", "seed")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if cmd.Seed == nil {
		t.Fatalf("Expected SeedCmd, got nil")
	}

	if cmd.Seed.Value != "" {
		t.Errorf("Expected empty seed value, got %s", cmd.Seed.Value)
	}
}

func TestParseQuitForms(t *testing.T) {
	p := command.Build()

	for _, input := range []string{"quit", "exit", "QUIT"} {
		cmd, err := p.ParseString("", input)
		if err != nil {
			t.Fatalf("Failed to parse %q: %v", input, err)
		}
		if cmd.Quit == nil {
			t.Errorf("Expected QuitCmd for %q", input)
		}
	}
}

func TestParseGarbage(t *testing.T) {
	p := command.Build()

	if _, err := p.ParseString("", "frobnicate everything"); err == nil {
		t.Error("Expected a parse error for an unknown command")
	}
}
