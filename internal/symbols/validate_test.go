package symbols

import (
	"strings"
	"testing"

	"sable/internal/source"
)

func TestValidate_CleanTable(t *testing.T) {
	tab := NewTable(0)
	typ := newSym(tab, SymbolType, "C", NoSymbolID)
	prop := newSym(tab, SymbolProperty, "P", typ)
	tab.New(Symbol{
		Name:      tab.Strings.Intern("<P>k__BackingField"),
		Kind:      SymbolField,
		Container: typ,
		Generated: GeneratedBackingField,
		Ordinal:   0,
	})
	_ = prop

	if err := tab.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_DuplicateOrdinal(t *testing.T) {
	tab := NewTable(0)
	typ := newSym(tab, SymbolType, "C", NoSymbolID)
	for i := 0; i < 2; i++ {
		tab.New(Symbol{
			Name:      tab.Strings.Intern("<Run>b__0"),
			Kind:      SymbolMethod,
			Container: typ,
			Generated: GeneratedLambda,
			Ordinal:   0, // same bucket, same ordinal: names collide
		})
	}

	err := tab.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want duplicate-ordinal error")
	}
	if !strings.Contains(err.Error(), "ordinal") {
		t.Errorf("Validate() error %q does not mention ordinals", err)
	}
}

func TestValidate_DistinctBucketsShareOrdinals(t *testing.T) {
	// Ordinal 0 in different (container, kind) buckets is fine.
	tab := NewTable(0)
	typA := newSym(tab, SymbolType, "A", NoSymbolID)
	typB := newSym(tab, SymbolType, "B", NoSymbolID)
	tab.New(Symbol{
		Name: tab.Strings.Intern("<Run>b__0"), Kind: SymbolMethod,
		Container: typA, Generated: GeneratedLambda, Ordinal: 0,
	})
	tab.New(Symbol{
		Name: tab.Strings.Intern("<Run>b__0"), Kind: SymbolMethod,
		Container: typB, Generated: GeneratedLambda, Ordinal: 0,
	})
	tab.New(Symbol{
		Name: tab.Strings.Intern("<Run>d__0"), Kind: SymbolType,
		Container: typA, Generated: GeneratedAsyncStateMachine, Ordinal: 0,
	})

	if err := tab.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_BadUseTarget(t *testing.T) {
	tab := NewTable(0)
	newSym(tab, SymbolType, "C", NoSymbolID)
	tab.AddUse(SymbolID(42), source.NoSpan)

	if err := tab.Validate(); err == nil {
		t.Fatal("Validate() = nil, want missing-symbol error for use target")
	}
}
