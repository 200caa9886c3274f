package emit

import (
	"testing"

	"sable/internal/symbols"
)

func TestSynthesizeName_Patterns(t *testing.T) {
	tests := []struct {
		name    string
		kind    symbols.GeneratedKind
		owner   string
		ordinal uint32
		want    string
	}{
		{
			name:  "auto-property backing field",
			kind:  symbols.GeneratedBackingField,
			owner: "Prop",
			want:  "<Prop>k__BackingField",
		},
		{
			name:  "get accessor",
			kind:  symbols.GeneratedGetAccessor,
			owner: "Prop",
			want:  "get_Prop",
		},
		{
			name:  "set accessor",
			kind:  symbols.GeneratedSetAccessor,
			owner: "Prop",
			want:  "set_Prop",
		},
		{
			name:  "add accessor",
			kind:  symbols.GeneratedAddAccessor,
			owner: "Changed",
			want:  "add_Changed",
		},
		{
			name:  "remove accessor",
			kind:  symbols.GeneratedRemoveAccessor,
			owner: "Changed",
			want:  "remove_Changed",
		},
		{
			name:    "lambda method",
			kind:    symbols.GeneratedLambda,
			owner:   "Run",
			ordinal: 3,
			want:    "<Run>b__3",
		},
		{
			name:    "iterator state machine",
			kind:    symbols.GeneratedIteratorStateMachine,
			owner:   "Walk",
			ordinal: 0,
			want:    "<Walk>d__0",
		},
		{
			name:    "async state machine",
			kind:    symbols.GeneratedAsyncStateMachine,
			owner:   "FetchAsync",
			ordinal: 12,
			want:    "<FetchAsync>d__12",
		},
		{
			name:  "anonymous type field",
			kind:  symbols.GeneratedAnonymousTypeField,
			owner: "Total",
			want:  "<Total>i__Field",
		},
		{
			name:  "fixed buffer backing",
			kind:  symbols.GeneratedFixedBufferField,
			owner: "buf",
			want:  "<buf>e__FixedBuffer",
		},
		{
			name:  "none passes owner through",
			kind:  symbols.GeneratedNone,
			owner: "AsIs",
			want:  "AsIs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SynthesizeName(tt.kind, tt.owner, tt.ordinal)
			if got != tt.want {
				t.Errorf("SynthesizeName() = %q, want %q", got, tt.want)
			}
			// Pure: a second evaluation must be byte-identical.
			if again := SynthesizeName(tt.kind, tt.owner, tt.ordinal); again != got {
				t.Errorf("SynthesizeName() not deterministic: %q vs %q", got, again)
			}
		})
	}
}

func TestOrdinalAllocator_PerBucketCounters(t *testing.T) {
	a := NewOrdinalAllocator()

	typeA := symbols.SymbolID(1)
	typeB := symbols.SymbolID(2)

	// Same bucket counts up monotonically.
	for want := uint32(0); want < 4; want++ {
		if got := a.Next(typeA, symbols.GeneratedLambda); got != want {
			t.Fatalf("Next(A, lambda) = %d, want %d", got, want)
		}
	}
	// A different kind in the same container is an independent bucket.
	if got := a.Next(typeA, symbols.GeneratedAsyncStateMachine); got != 0 {
		t.Errorf("Next(A, async) = %d, want 0", got)
	}
	// A different container is an independent bucket.
	if got := a.Next(typeB, symbols.GeneratedLambda); got != 0 {
		t.Errorf("Next(B, lambda) = %d, want 0", got)
	}
}

func TestSynthesizer_NoCollisions(t *testing.T) {
	b := newTree()
	typ := b.typ("C", symbols.NoSymbolID)
	run := b.sym(symbols.SymbolMethod, "Run", typ)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		id := b.synth.Add(symbols.SymbolMethod, symbols.GeneratedLambda, typ, run, b.span(0, 0, 0))
		name := b.tab.Name(id)
		if seen[name] {
			t.Fatalf("synthesized name %q collides", name)
		}
		seen[name] = true
	}

	if err := b.tab.Validate(); err != nil {
		t.Fatalf("table invariants broken after synthesis: %v", err)
	}
}
