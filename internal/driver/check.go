package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"sable/internal/diag"
	"sable/internal/emit"
	"sable/internal/symbols"
)

// Options configures the pre-emission name check.
type Options struct {
	// DebugInfo mirrors the compilation's debug-data setting; without it
	// locals and constants are not checked at all.
	DebugInfo bool
	// Jobs bounds worker parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// MaxDiagnostics caps the reported bag; 0 means no extra cap beyond the
	// violation count. Violations themselves are always fully collected.
	MaxDiagnostics int
}

// Result carries the outcome of the name check.
type Result struct {
	Bag        *diag.Bag
	Violations []emit.Violation
	// EmitAllowed is false iff at least one error-class violation exists.
	// Warning-class violations never block: the writer simply omits the
	// offending local names from debug data.
	EmitAllowed bool
}

// CheckNames runs the emission-name validation pass over an immutable bound
// table plus the resource list.
//
// Independent top-level types share no mutable state, so their subtrees are
// validated concurrently; sequential declaration order is restored by
// merging per-root results by root index before anything is reported, since
// diagnostic order is part of the observable contract. Reference sites and
// resources follow in their own declaration order, as in a sequential run.
func CheckNames(ctx context.Context, tab *symbols.Table, resources []symbols.ResourceDescriptor, opts Options) (*Result, error) {
	// Структурные инварианты ломает только binder — это не user error.
	if err := tab.Validate(); err != nil {
		return nil, fmt.Errorf("bound table failed invariants: %w", err)
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	validator := emit.Validator{Tab: tab, DebugInfo: opts.DebugInfo}
	roots := tab.Roots()

	// Per-root результаты: индексы уникальны для каждой горутины, мьютекс не нужен.
	perRoot := make([][]emit.Violation, len(roots))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(roots), 1)))
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			v := validator // value copy; the table is read-only
			perRoot[i] = v.ValidateSubtree(root, nil)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var violations []emit.Violation
	for _, vs := range perRoot {
		violations = append(violations, vs...)
	}
	for _, use := range tab.Uses() {
		if viol := validator.CheckUse(use); viol != nil {
			violations = append(violations, *viol)
		}
	}
	for i, res := range resources {
		violations = append(violations, validator.CheckResource(res, i)...)
	}

	capacity := len(violations)
	if opts.MaxDiagnostics > 0 && opts.MaxDiagnostics < capacity {
		capacity = opts.MaxDiagnostics
	}
	bag := diag.NewBag(capacity)
	emit.ReportAll(diag.BagReporter{Bag: bag}, violations)

	allowed := true
	for _, v := range violations {
		if v.Blocks() {
			allowed = false
			break
		}
	}
	return &Result{Bag: bag, Violations: violations, EmitAllowed: allowed}, nil
}
