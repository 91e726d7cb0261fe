package main

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"lexid/internal/name"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "Generate valid names",
	Long: `Gen prints names that satisfy their category rules. With --seed 0 it
prints the fixed minimal values (v, T, and + / * for operators).`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("category", "all", "identifier|typename|operator|all")
	genCmd.Flags().Int("count", 10, "names per category")
	genCmd.Flags().Uint64("seed", 0, "random seed (0 = minimal values)")
	genCmd.Flags().Int("max-len", name.DefaultMaxLen, "maximum generated length")
	genCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func generateNames(category string, count int, seed uint64, maxLen int) ([]name.Name, error) {
	cats := name.Categories[:]
	if !strings.EqualFold(category, "all") {
		c, err := name.ParseCategory(category)
		if err != nil {
			return nil, err
		}
		cats = []name.Category{c}
	}
	if count < 0 {
		return nil, fmt.Errorf("count must be >= 0, got %d", count)
	}

	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	g := name.NewGenerator(rnd).WithMaxLen(maxLen)

	out := make([]name.Name, 0, count*len(cats))
	for _, c := range cats {
		for range count {
			out = append(out, g.Name(c))
		}
	}
	return out, nil
}

func runGen(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	category, err := flags.GetString("category")
	if err != nil {
		return fmt.Errorf("failed to get category flag: %w", err)
	}
	count, err := flags.GetInt("count")
	if err != nil {
		return fmt.Errorf("failed to get count flag: %w", err)
	}
	seed, err := flags.GetUint64("seed")
	if err != nil {
		return fmt.Errorf("failed to get seed flag: %w", err)
	}
	maxLen, err := flags.GetInt("max-len")
	if err != nil {
		return fmt.Errorf("failed to get max-len flag: %w", err)
	}
	format, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	names, err := generateNames(category, count, seed, maxLen)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		tagged := make([]name.Tagged, len(names))
		for i, n := range names {
			tagged[i] = name.Tag(n)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(tagged)
	case "pretty":
		for _, n := range names {
			fmt.Fprintf(cmd.OutOrStdout(), "%#v\n", n)
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
