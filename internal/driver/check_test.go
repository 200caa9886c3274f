package driver

import (
	"context"
	"strings"
	"testing"

	"sable/internal/diag"
	"sable/internal/emit"
	"sable/internal/symbols"
)

func longName(n int) string { return strings.Repeat("A", n) }

// buildManyRoots creates count top-level types, every third one over the
// metadata name limit, each with a few members.
func buildManyRoots(count int) *symbols.Table {
	tab := symbols.NewTable(0)
	for i := 0; i < count; i++ {
		name := "T" + strings.Repeat("x", i%7)
		if i%3 == 0 {
			name = longName(emit.MetadataNameLengthLimit + 1 + i)
		}
		typ := tab.New(symbols.Symbol{
			Name: tab.Strings.Intern(name),
			Kind: symbols.SymbolType,
		})
		tab.New(symbols.Symbol{
			Name:      tab.Strings.Intern("Run"),
			Kind:      symbols.SymbolMethod,
			Container: typ,
		})
	}
	return tab
}

func TestCheckNames_ParallelMatchesSequential(t *testing.T) {
	tab := buildManyRoots(20)

	seq, err := CheckNames(context.Background(), tab, nil, Options{Jobs: 1})
	if err != nil {
		t.Fatalf("sequential CheckNames() = %v", err)
	}
	par, err := CheckNames(context.Background(), tab, nil, Options{Jobs: 8})
	if err != nil {
		t.Fatalf("parallel CheckNames() = %v", err)
	}

	if len(seq.Violations) == 0 {
		t.Fatal("fixture produced no violations")
	}
	if len(par.Violations) != len(seq.Violations) {
		t.Fatalf("parallel found %d violations, sequential %d", len(par.Violations), len(seq.Violations))
	}
	// Diagnostic order is part of the contract: the parallel run must
	// restore sequential declaration order exactly.
	seqItems, parItems := seq.Bag.Items(), par.Bag.Items()
	for i := range seqItems {
		s, p := seqItems[i], parItems[i]
		if s.Code != p.Code || s.Severity != p.Severity || s.Message != p.Message || s.Primary != p.Primary {
			t.Fatalf("diagnostic %d differs between runs:\n seq: %v\n par: %v", i, s, p)
		}
	}
}

func TestCheckNames_EmitGate(t *testing.T) {
	tests := []struct {
		name        string
		build       func() (*symbols.Table, []symbols.ResourceDescriptor)
		debugInfo   bool
		wantAllowed bool
	}{
		{
			name: "clean tree allows emission",
			build: func() (*symbols.Table, []symbols.ResourceDescriptor) {
				tab := symbols.NewTable(0)
				tab.New(symbols.Symbol{Name: tab.Strings.Intern("C"), Kind: symbols.SymbolType})
				return tab, nil
			},
			wantAllowed: true,
		},
		{
			name: "over-long type name blocks emission",
			build: func() (*symbols.Table, []symbols.ResourceDescriptor) {
				tab := symbols.NewTable(0)
				tab.New(symbols.Symbol{
					Name: tab.Strings.Intern(longName(emit.MetadataNameLengthLimit + 1)),
					Kind: symbols.SymbolType,
				})
				return tab, nil
			},
			wantAllowed: false,
		},
		{
			name: "over-long resource path blocks emission",
			build: func() (*symbols.Table, []symbols.ResourceDescriptor) {
				return symbols.NewTable(0), []symbols.ResourceDescriptor{
					{Name: "ok", Path: longName(emit.MetadataPathLengthLimit + 1)},
				}
			},
			wantAllowed: false,
		},
		{
			name: "over-long local is a warning and never blocks",
			build: func() (*symbols.Table, []symbols.ResourceDescriptor) {
				tab := symbols.NewTable(0)
				typ := tab.New(symbols.Symbol{Name: tab.Strings.Intern("C"), Kind: symbols.SymbolType})
				method := tab.New(symbols.Symbol{
					Name: tab.Strings.Intern("Run"), Kind: symbols.SymbolMethod, Container: typ,
				})
				tab.New(symbols.Symbol{
					Name:      tab.Strings.Intern(longName(emit.PdbLocalNameLengthLimit + 1)),
					Kind:      symbols.SymbolLocal,
					Container: method,
				})
				return tab, nil
			},
			debugInfo:   true,
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, resources := tt.build()
			res, err := CheckNames(context.Background(), tab, resources, Options{DebugInfo: tt.debugInfo})
			if err != nil {
				t.Fatalf("CheckNames() = %v", err)
			}
			if res.EmitAllowed != tt.wantAllowed {
				t.Errorf("EmitAllowed = %v, want %v", res.EmitAllowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && !res.Bag.HasErrors() {
				t.Error("blocked emission must come with error diagnostics")
			}
		})
	}
}

func TestCheckNames_DebugInfoToggle(t *testing.T) {
	tab := symbols.NewTable(0)
	typ := tab.New(symbols.Symbol{Name: tab.Strings.Intern("C"), Kind: symbols.SymbolType})
	method := tab.New(symbols.Symbol{
		Name: tab.Strings.Intern("Run"), Kind: symbols.SymbolMethod, Container: typ,
	})
	tab.New(symbols.Symbol{
		Name:      tab.Strings.Intern(longName(emit.PdbLocalNameLengthLimit + 1)),
		Kind:      symbols.SymbolLocal,
		Container: method,
	})

	with, err := CheckNames(context.Background(), tab, nil, Options{DebugInfo: true})
	if err != nil {
		t.Fatalf("CheckNames() = %v", err)
	}
	if with.Bag.Len() != 1 || with.Bag.Items()[0].Code != diag.EmitLocalNameTooLong {
		t.Fatalf("with debug info got %d diagnostics, want 1 local-name warning", with.Bag.Len())
	}

	// The identical tree compiled without debug info yields zero warnings.
	without, err := CheckNames(context.Background(), tab, nil, Options{DebugInfo: false})
	if err != nil {
		t.Fatalf("CheckNames() = %v", err)
	}
	if without.Bag.Len() != 0 {
		t.Fatalf("without debug info got %d diagnostics, want 0", without.Bag.Len())
	}
}

func TestCheckNames_RejectsBrokenTable(t *testing.T) {
	tab := symbols.NewTable(0)
	typ := tab.New(symbols.Symbol{Name: tab.Strings.Intern("C"), Kind: symbols.SymbolType})
	for i := 0; i < 2; i++ {
		tab.New(symbols.Symbol{
			Name:      tab.Strings.Intern("<Run>b__0"),
			Kind:      symbols.SymbolMethod,
			Container: typ,
			Generated: symbols.GeneratedLambda,
			Ordinal:   0,
		})
	}

	if _, err := CheckNames(context.Background(), tab, nil, Options{}); err == nil {
		t.Fatal("CheckNames() accepted a table with duplicate ordinals")
	}
}
