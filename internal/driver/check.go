package driver

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"lexid/internal/diag"
	"lexid/internal/lexer"
	"lexid/internal/observ"
	"lexid/internal/source"
	"lexid/internal/symtab"
	"lexid/internal/trace"
)

// Check expands path (a file or a directory) and checks the result.
func Check(ctx context.Context, path string, opts Options) (*Result, error) {
	files, err := ExpandPaths([]string{path})
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckSource checks in-memory content registered under path.
func CheckSource(ctx context.Context, path string, content []byte, opts Options) (*Result, error) {
	fileSet := source.NewFileSet()
	id := fileSet.AddVirtual(path, content)
	return run(ctx, fileSet, []input{{path: path, id: id}}, opts)
}

type input struct {
	path    string
	id      source.FileID
	loadErr error
	load    time.Duration
}

// CheckFiles loads every path into one FileSet and scans the files in
// parallel, at most opts.Jobs at a time. A file that cannot be read becomes
// an IOLoadFileError diagnostic, not an error. The returned error is only
// set when ctx is cancelled.
func CheckFiles(ctx context.Context, paths []string, opts Options) (*Result, error) {
	fileSet := source.NewFileSet()
	inputs := make([]input, len(paths))

	// Предзагрузка последовательно: FileID совпадают с порядком путей
	for i, p := range paths {
		started := time.Now()
		id, err := fileSet.Load(p)
		if err != nil {
			// пустой виртуальный файл, чтобы диагностика имела путь
			id = fileSet.AddVirtual(p, nil)
		}
		inputs[i] = input{path: p, id: id, loadErr: err, load: time.Since(started)}
	}
	return run(ctx, fileSet, inputs, opts)
}

func run(ctx context.Context, fileSet *source.FileSet, inputs []input, opts Options) (*Result, error) {
	ctx, span := trace.Begin(ctx, trace.ScopeDriver, "check")
	defer span.End("")
	span.WithExtra("files", fmt.Sprint(len(inputs)))

	res := &Result{
		FileSet: fileSet,
		Files:   make([]FileResult, len(inputs)),
		Names:   symtab.NewSet(),
		Bag:     diag.NewBag(0),
	}
	if len(inputs) == 0 {
		return res, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res.Files[i] = scanFile(gctx, fileSet, in, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		trace.Point(ctx, trace.ScopeError, "check", err.Error())
		return nil, err
	}

	// Имена собираются в порядке файлов, чтобы First был детерминирован
	_, collect := trace.Begin(ctx, trace.ScopeDriver, "collect")
	for _, f := range res.Files {
		for _, tok := range f.Tokens {
			if tok.IsName() {
				res.Names.Add(tok.Name, tok.Span)
			}
		}
		res.Bag.Merge(f.Bag)
	}
	res.Bag.Sort()
	collect.WithExtra("names", fmt.Sprint(res.Names.Len())).End("")
	return res, nil
}

func scanFile(ctx context.Context, fileSet *source.FileSet, in input, opts Options) FileResult {
	ctx, span := trace.Begin(ctx, trace.ScopeFile, "scan")
	bag := diag.NewBag(opts.MaxDiagnostics)
	counter := &diag.CountingReporter{Next: diag.NewDedupReporter(diag.BagReporter{Bag: bag})}
	out := FileResult{Path: in.path, FileID: in.id, Bag: bag}

	timer := observ.NewTimer()
	timer.Add("load", in.load, "")

	if in.loadErr != nil {
		diag.ReportError(counter, diag.IOLoadFileError, source.Span{File: in.id},
			"failed to load file: "+in.loadErr.Error()).Emit()
		out.Counts = counter.Counts
		span.End(in.path + ": load failed")
		return out
	}

	idx := timer.Begin("scan")
	lx := lexer.New(fileSet.Get(in.id), opts.lexerOptions(counter))
	out.Tokens = lx.All()
	names := 0
	debug := trace.FromContext(ctx).Level().ShouldEmit(trace.ScopeName)
	for _, tok := range out.Tokens {
		if !tok.IsName() {
			continue
		}
		names++
		if debug {
			trace.Point(ctx, trace.ScopeName, "name", fmt.Sprintf("%#v", tok.Name))
		}
	}
	timer.End(idx, fmt.Sprintf("%d tokens", len(out.Tokens)))

	out.Counts = counter.Counts
	if opts.Timings {
		report := timer.Report()
		out.Timing = &report
		appendTimingDiagnostic(bag, source.Span{File: in.id}, timingPayload{
			Path:    in.path,
			TotalMS: report.TotalMS,
			Phases:  report.Phases,
		})
	}

	span.WithExtra("tokens", fmt.Sprint(len(out.Tokens))).
		WithExtra("names", fmt.Sprint(names)).
		End(in.path)
	return out
}
