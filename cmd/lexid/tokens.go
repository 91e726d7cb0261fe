package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lexid/internal/diag"
	"lexid/internal/diagfmt"
	"lexid/internal/lexer"
	"lexid/internal/source"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] file",
	Short: "Print the token stream of a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return err
	}
	bag := diag.NewBag(cfg.Check.MaxDiagnostics)
	lx := lexer.New(fs.Get(id), lexer.Options{
		Reporter:         diag.BagReporter{Bag: bag},
		MaxTokenLen:      cfg.Check.MaxTokenLen,
		Reserved:         cfg.ReservedSet(),
		ReservedSeverity: cfg.Names.Severity,
	})
	toks := lx.All()

	// Выводим диагностику в stderr, если есть
	if bag.Len() > 0 {
		bag.Sort()
		opts := diagfmt.PrettyOpts{Color: useColor(cfg.Check.Color, os.Stderr), ShowNotes: true}
		if err := diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, opts); err != nil {
			return err
		}
	}

	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), toks, fs)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), toks)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
