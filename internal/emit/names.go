package emit

import (
	"strconv"

	"sable/internal/source"
	"sable/internal/symbols"
)

// SynthesizeName maps a generated-symbol description to its metadata name.
// Total and pure: every GeneratedKind has a canonical pattern, owner is the
// name of the property/event/method/field the construct belongs to, and
// ordinal disambiguates buckets that can hold several members. Oversized
// results are caught downstream by the length validator, never here.
func SynthesizeName(kind symbols.GeneratedKind, owner string, ordinal uint32) string {
	switch kind {
	case symbols.GeneratedNone:
		return owner
	case symbols.GeneratedBackingField:
		return "<" + owner + ">k__BackingField"
	case symbols.GeneratedGetAccessor:
		return "get_" + owner
	case symbols.GeneratedSetAccessor:
		return "set_" + owner
	case symbols.GeneratedAddAccessor:
		return "add_" + owner
	case symbols.GeneratedRemoveAccessor:
		return "remove_" + owner
	case symbols.GeneratedLambda:
		return "<" + owner + ">b__" + strconv.FormatUint(uint64(ordinal), 10)
	case symbols.GeneratedIteratorStateMachine, symbols.GeneratedAsyncStateMachine:
		return "<" + owner + ">d__" + strconv.FormatUint(uint64(ordinal), 10)
	case symbols.GeneratedAnonymousTypeField:
		return "<" + owner + ">i__Field"
	case symbols.GeneratedFixedBufferField:
		return "<" + owner + ">e__FixedBuffer"
	}
	panic("unreachable: unhandled GeneratedKind " + kind.String())
}

type ordinalKey struct {
	container symbols.SymbolID
	kind      symbols.GeneratedKind
}

// OrdinalAllocator hands out ordinals for synthesized symbols: 0,1,2,… per
// (container, generated-kind) bucket, in synthesis order. The allocator is
// owned by the synthesis context that drives binding — state is explicit,
// never process-global — which keeps the sequence deterministic for a given
// declaration order.
type OrdinalAllocator struct {
	next map[ordinalKey]uint32
}

func NewOrdinalAllocator() *OrdinalAllocator {
	return &OrdinalAllocator{next: make(map[ordinalKey]uint32)}
}

// Next returns the next free ordinal in the bucket and advances the counter.
func (a *OrdinalAllocator) Next(container symbols.SymbolID, kind symbols.GeneratedKind) uint32 {
	key := ordinalKey{container: container, kind: kind}
	ord := a.next[key]
	a.next[key] = ord + 1
	return ord
}

// Synthesizer threads ordinal state through per-container synthesis and
// allocates the resulting symbols. It is the binder-facing entry point: the
// binder knows the owner (the member the construct belongs to) and the
// container the synthesized symbol lands in; the synthesizer fills in the
// name and the ordinal.
type Synthesizer struct {
	tab  *symbols.Table
	ords *OrdinalAllocator
}

func NewSynthesizer(tab *symbols.Table) *Synthesizer {
	return &Synthesizer{tab: tab, ords: NewOrdinalAllocator()}
}

// Add synthesizes one generated member: kind of the resulting symbol,
// generated tag, the container it belongs to, and the owner whose name seeds
// the pattern. Returns the new symbol's ID.
func (s *Synthesizer) Add(kind symbols.SymbolKind, gen symbols.GeneratedKind, container, owner symbols.SymbolID, span source.Span) symbols.SymbolID {
	ord := s.ords.Next(container, gen)
	name := SynthesizeName(gen, s.tab.Name(owner), ord)
	return s.tab.New(symbols.Symbol{
		Name:      s.tab.Strings.Intern(name),
		Kind:      kind,
		Container: container,
		Span:      span,
		Generated: gen,
		Ordinal:   ord,
	})
}
