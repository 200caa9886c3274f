package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"sable/internal/source"
)

// Table stores the bound symbol tree in a compact slice arena. Index 0 is
// reserved for NoSymbolID. Arena order is declaration order: the binder
// allocates a symbol's owned synthesized members immediately after the owner,
// so a child walk in arena order reproduces the declaration/synthesis order
// the emission pass must report in.
type Table struct {
	Strings *source.Interner

	data []Symbol
	kids [][]SymbolID // children per symbol, parallel to data
	uses []Use
}

// NewTable creates a table with an optional capacity hint.
func NewTable(capacity uint32) *Table {
	if capacity == 0 {
		capacity = 64
	}
	return &Table{
		Strings: source.NewInterner(),
		data:    make([]Symbol, 1, capacity+1), // index 0 reserved for NoSymbolID
		kids:    make([][]SymbolID, 1, capacity+1),
	}
}

// New allocates a symbol and returns its ID, registering it with its
// container's children list in declaration order.
func (t *Table) New(sym Symbol) SymbolID {
	value, err := safecast.Conv[uint32](len(t.data))
	if err != nil {
		panic(fmt.Errorf("symbol arena overflow: %w", err))
	}
	id := SymbolID(value)
	t.data = append(t.data, sym)
	t.kids = append(t.kids, nil)
	if sym.Container.IsValid() && int(sym.Container) < len(t.kids) {
		t.kids[sym.Container] = append(t.kids[sym.Container], id)
	}
	return id
}

// Get returns the symbol pointer or nil if the ID is invalid.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Name returns the symbol's name string. Symbols without a name resolve to "".
func (t *Table) Name(id SymbolID) string {
	sym := t.Get(id)
	if sym == nil {
		return ""
	}
	s, _ := t.Strings.Lookup(sym.Name)
	return s
}

// Children returns the declaration-ordered children of a symbol.
func (t *Table) Children(id SymbolID) []SymbolID {
	if !id.IsValid() || int(id) >= len(t.kids) {
		return nil
	}
	return t.kids[id]
}

// Len reports the total number of symbols excluding the sentinel.
func (t *Table) Len() int { return len(t.data) - 1 }

// Data exposes the underlying slice without the sentinel.
func (t *Table) Data() []Symbol {
	if len(t.data) <= 1 {
		return nil
	}
	return t.data[1:]
}

// AddUse records an emission-time reference site for a symbol.
func (t *Table) AddUse(target SymbolID, span source.Span) {
	t.uses = append(t.uses, Use{Target: target, Span: span})
}

// Uses returns recorded reference sites in declaration order.
func (t *Table) Uses() []Use { return t.uses }

// Roots returns, in declaration order, the top-level types: types whose
// container is the global namespace (no container) or a namespace chain.
// Subtrees under distinct roots share no mutable state, so they may be
// validated concurrently; results must be merged back in Roots order.
func (t *Table) Roots() []SymbolID {
	var roots []SymbolID
	for idx := 1; idx < len(t.data); idx++ {
		sym := &t.data[idx]
		if sym.Kind != SymbolType {
			continue
		}
		container := t.Get(sym.Container)
		if container == nil || container.Kind == SymbolNamespace {
			roots = append(roots, SymbolID(uint32(idx)))
		}
	}
	return roots
}
