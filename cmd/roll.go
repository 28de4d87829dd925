/*
Copyright © 2026 Erik Juhani
*/
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erikjuhani/droll/internal/dice"
	"github.com/erikjuhani/droll/internal/macro"
)

var rollCmd = &cobra.Command{
	Use:   "roll <notation>...",
	Short: "Evaluate dice notation",
	Long: `Evaluates each notation argument and prints one result per line.

Examples:
	droll roll 2d20+10-2
	droll roll d6 3d6
	droll roll --seed 42 --verbose 2d6
	droll roll attack --macros rolls.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")

		src := dice.CryptoSource()
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			src = dice.SeededSource(seed)
		}

		table := loadMacroTable()

		for _, arg := range args {
			notation := arg
			if resolved, ok := table.Resolve(arg); ok {
				notation = resolved
			}

			res, err := dice.Detail(notation, src)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			if verbose {
				fmt.Printf("%s = %d\n", notation, res.Total)
				fmt.Printf("  tree:  %s\n", res.Tree)
				if len(res.Draws) > 0 {
					fmt.Printf("  rolls: %s\n", joinDraws(res.Draws))
				}
			} else {
				fmt.Println(res.Total)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(rollCmd)

	rollCmd.Flags().Int64("seed", 0, "Seed a deterministic random source instead of crypto/rand")
	rollCmd.Flags().BoolP("verbose", "v", false, "Print the parse tree and per-die rolls")
}

// loadMacroTable reads the macro file named by the --macros flag or config.
// No file configured means an empty table; a configured but broken file is a
// hard error.
func loadMacroTable() *macro.Table {
	path := viper.GetString("macros")
	if path == "" {
		return macro.Empty()
	}

	table, err := macro.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return table
}

func joinDraws(draws []int) string {
	parts := make([]string, len(draws))
	for i, v := range draws {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
