// Package macro maps short names to dice notation, loaded from a YAML file.
// Macros expand to plain notation before parsing; they add nothing to the
// grammar itself.
package macro

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/erikjuhani/droll/internal/dice"
)

// Table holds the named rolls of one macro file.
type Table struct {
	Macros map[string]string `yaml:"macros"`
}

// Load reads and validates a macro table. Every notation must parse under
// the dice grammar; a bad entry fails the whole load naming the macro.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open macro file %s: %w", path, err)
	}
	defer f.Close()

	var t Table
	if err := yaml.NewDecoder(f).Decode(&t); err != nil {
		return nil, fmt.Errorf("failed to decode macro file %s: %w", path, err)
	}

	for name, notation := range t.Macros {
		if _, err := dice.Parse(notation); err != nil {
			return nil, fmt.Errorf("macro %q has invalid notation %q: %w", name, notation, err)
		}
	}
	return &t, nil
}

// Empty returns a table with no macros.
func Empty() *Table {
	return &Table{Macros: map[string]string{}}
}

// Resolve looks a macro up by name, case-insensitively.
func (t *Table) Resolve(name string) (string, bool) {
	if notation, ok := t.Macros[name]; ok {
		return notation, true
	}
	lower := strings.ToLower(name)
	for k, v := range t.Macros {
		if strings.ToLower(k) == lower {
			return v, true
		}
	}
	return "", false
}

// Names returns the macro names in sorted order for display.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.Macros))
	for name := range t.Macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
