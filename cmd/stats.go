/*
Copyright © 2026 Erik Juhani
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/erikjuhani/droll/internal/dice"
)

const maxHistogramBuckets = 40

var (
	statsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(lipgloss.Color("#7D56F4")).
				Padding(0, 1)

	statsBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))
)

var statsCmd = &cobra.Command{
	Use:   "stats <notation>",
	Short: "Sample a notation and print its result distribution",
	Long: `Parses the notation once, evaluates it repeatedly and reports the
observed minimum, mean and maximum together with a histogram of totals.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		notation := args[0]
		if resolved, ok := loadMacroTable().Resolve(notation); ok {
			notation = resolved
		}

		expr, err := dice.Parse(notation)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		samples := viper.GetInt("samples")
		if cmd.Flags().Changed("samples") {
			samples, _ = cmd.Flags().GetInt("samples")
		}
		if samples < 1 {
			samples = 1
		}

		src := dice.CryptoSource()
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			src = dice.SeededSource(seed)
		}

		bar := progressbar.Default(int64(samples), "Sampling")

		counts := make(map[int]int, 64)
		min, max := 0, 0
		sum := 0.0
		for i := 0; i < samples; i++ {
			v, err := dice.Eval(expr, src)
			if err != nil {
				fmt.Fprintf(os.Stderr, "\n%v\n", err)
				os.Exit(1)
			}
			counts[v]++
			sum += float64(v)
			if i == 0 || v < min {
				min = v
			}
			if i == 0 || v > max {
				max = v
			}
			_ = bar.Add(1)
		}

		fmt.Println()
		fmt.Println(statsHeaderStyle.Render(fmt.Sprintf(" %s | %d samples ", notation, samples)))
		fmt.Printf("min %d  mean %.2f  max %d\n\n", min, sum/float64(samples), max)
		fmt.Print(renderHistogram(counts, samples))
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().IntP("samples", "n", 10000, "Number of evaluations to sample")
	statsCmd.Flags().Int64("seed", 0, "Seed a deterministic random source instead of crypto/rand")

	if err := viper.BindPFlag("samples", statsCmd.Flags().Lookup("samples")); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// renderHistogram draws one bar per observed total, widest bar capped at 50
// cells. Distributions spanning more totals than fit on screen collapse to a
// frequency summary instead.
func renderHistogram(counts map[int]int, samples int) string {
	totals := make([]int, 0, len(counts))
	for v := range counts {
		totals = append(totals, v)
	}
	sort.Ints(totals)

	if len(totals) > maxHistogramBuckets {
		var b strings.Builder
		fmt.Fprintf(&b, "%d distinct totals (too many to chart)\n", len(totals))
		return b.String()
	}

	peak := 0
	for _, v := range totals {
		if counts[v] > peak {
			peak = counts[v]
		}
	}

	var b strings.Builder
	for _, v := range totals {
		width := counts[v] * 50 / peak
		bar := statsBarStyle.Render(strings.Repeat("█", width))
		fmt.Fprintf(&b, "%6d │%s %.1f%%\n", v, bar, 100*float64(counts[v])/float64(samples))
	}
	return b.String()
}
