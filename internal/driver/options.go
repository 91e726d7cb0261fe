package driver

import (
	"lexid/internal/config"
	"lexid/internal/diag"
	"lexid/internal/lexer"
)

// SourceExt is the extension picked up when a directory is checked.
const SourceExt = ".lx"

type Options struct {
	MaxDiagnostics   int // per file; 0 - без ограничения
	Jobs             int // 0 - GOMAXPROCS
	MaxTokenLen      int
	Reserved         map[string]struct{}
	ReservedSeverity diag.Severity
	Timings          bool // attach an ObsTimings diagnostic per file
}

// OptionsFromConfig maps the loaded configuration onto driver options.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		MaxDiagnostics:   cfg.Check.MaxDiagnostics,
		Jobs:             cfg.Check.Jobs,
		MaxTokenLen:      cfg.Check.MaxTokenLen,
		Reserved:         cfg.ReservedSet(),
		ReservedSeverity: cfg.Names.Severity,
	}
}

func (o Options) lexerOptions(r diag.Reporter) lexer.Options {
	return lexer.Options{
		Reporter:         r,
		MaxTokenLen:      o.MaxTokenLen,
		Reserved:         o.Reserved,
		ReservedSeverity: o.ReservedSeverity,
	}
}
