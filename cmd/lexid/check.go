package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"lexid/internal/diag"
	"lexid/internal/diagfmt"
	"lexid/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] path...",
	Short: "Check files or directories of names",
	Long: `Check scans every *.lx file under the given directories (and any file
given explicitly) and reports candidates that are not valid names.
Use - to read from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|short|json|msgpack); default from config")
	checkCmd.Flags().Int("jobs", 0, "max parallel files (0=GOMAXPROCS)")
	checkCmd.Flags().Bool("names", false, "list the collected names")
	checkCmd.Flags().String("snapshot", "", "write the name table as msgpack to this file")
}

type checkOutput struct {
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
	Names       []diagfmt.NameOutput      `json:"names,omitempty"`
	Files       int                       `json:"files"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		return err
	}
	defer cleanup()
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	if cmd.Flags().Changed("format") {
		if cfg.Check.Format, err = cmd.Flags().GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if cmd.Flags().Changed("jobs") {
		if cfg.Check.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	listNames, err := cmd.Flags().GetBool("names")
	if err != nil {
		return fmt.Errorf("failed to get names flag: %w", err)
	}
	snapshotPath, err := cmd.Flags().GetString("snapshot")
	if err != nil {
		return fmt.Errorf("failed to get snapshot flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	opts := driver.OptionsFromConfig(cfg)
	opts.Timings = timings

	var res *driver.Result
	if len(args) == 1 && args[0] == "-" {
		content, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		res, err = driver.CheckSource(cmd.Context(), "<stdin>", content, opts)
	} else {
		paths, expandErr := driver.ExpandPaths(args)
		if expandErr != nil {
			return expandErr
		}
		res, err = driver.CheckFiles(cmd.Context(), paths, opts)
	}
	if err != nil {
		return err
	}

	if snapshotPath != "" {
		data, snapErr := res.Names.Snapshot()
		if snapErr != nil {
			return fmt.Errorf("failed to encode snapshot: %w", snapErr)
		}
		if err := os.WriteFile(snapshotPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write snapshot: %w", err)
		}
	}

	if err := renderCheck(cmd, cfg.Check.Format, cfg.Check.Color, res, listNames); err != nil {
		return err
	}
	if res.HasErrors() {
		return errReported
	}
	return nil
}

func renderCheck(cmd *cobra.Command, format, colorMode string, res *driver.Result, listNames bool) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	mode, base := displayPaths(os.Getwd)
	names := func() []diagfmt.NameOutput {
		return diagfmt.BuildNames(res.Names, res.FileSet, mode, base)
	}

	switch format {
	case "json":
		out := checkOutput{
			Diagnostics: diagfmt.BuildDiagnosticsOutput(res.Bag, res.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				PathMode:         mode,
				BaseDir:          base,
			}),
			Files: len(res.Files),
		}
		if listNames {
			out.Names = names()
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "msgpack":
		if _, err := io.WriteString(stderr, diag.FormatShort(res.Bag.Items(), res.FileSet, false)); err != nil {
			return err
		}
		return diagfmt.FormatNamesMsgpack(stdout, names())

	case "short":
		if _, err := io.WriteString(stderr, diag.FormatShort(res.Bag.Items(), res.FileSet, true)); err != nil {
			return err
		}

	default:
		opts := diagfmt.PrettyOpts{
			Color:     useColor(colorMode, fileOf(stderr)),
			PathMode:  mode,
			BaseDir:   base,
			ShowNotes: true,
		}
		if err := diagfmt.Pretty(stderr, res.Bag, res.FileSet, opts); err != nil {
			return err
		}
		counts := res.Counts()
		fmt.Fprintf(stderr, "checked %d file(s): %d error(s), %d warning(s), %d name(s)\n",
			len(res.Files), counts[diag.SevError], counts[diag.SevWarning], res.Names.Len())
	}

	if listNames {
		return diagfmt.FormatNamesPretty(stdout, names())
	}
	return nil
}

// displayPaths shows paths relative to the working directory, or absolute when
// it cannot be determined.
func displayPaths(getwd func() (string, error)) (diagfmt.PathMode, string) {
	base, err := getwd()
	if err != nil || base == "" {
		return diagfmt.PathModeAbsolute, ""
	}
	return diagfmt.PathModeAuto, base
}

func fileOf(w io.Writer) *os.File {
	f, _ := w.(*os.File)
	return f
}
