package emit

import (
	"strings"

	"sable/internal/source"
	"sable/internal/symbols"
)

// treeBuilder assembles small bound trees the way the binder would:
// declaration order, synthesized members allocated right after their owner.
type treeBuilder struct {
	tab   *symbols.Table
	synth *Synthesizer
}

func newTree() *treeBuilder {
	tab := symbols.NewTable(0)
	return &treeBuilder{tab: tab, synth: NewSynthesizer(tab)}
}

func (b *treeBuilder) sym(kind symbols.SymbolKind, name string, container symbols.SymbolID) symbols.SymbolID {
	return b.tab.New(symbols.Symbol{
		Name:      b.tab.Strings.Intern(name),
		Kind:      kind,
		Container: container,
	})
}

func (b *treeBuilder) namespace(name string, parent symbols.SymbolID) symbols.SymbolID {
	return b.sym(symbols.SymbolNamespace, name, parent)
}

func (b *treeBuilder) typ(name string, container symbols.SymbolID) symbols.SymbolID {
	return b.sym(symbols.SymbolType, name, container)
}

func (b *treeBuilder) genericType(name string, container symbols.SymbolID, arity uint16) symbols.SymbolID {
	return b.tab.New(symbols.Symbol{
		Name:      b.tab.Strings.Intern(name),
		Kind:      symbols.SymbolType,
		Container: container,
		Arity:     arity,
	})
}

func (b *treeBuilder) span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

// longName returns a name of exactly n bytes.
func longName(n int) string {
	return strings.Repeat("A", n)
}
