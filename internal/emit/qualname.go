package emit

import (
	"strconv"
	"strings"

	"sable/internal/source"
	"sable/internal/symbols"
)

// QualifiedName composes the exact string the metadata format stores for a
// symbol. Pure over the symbol's immutable fields and its container chain:
// two evaluations of the same logical entity, from any traversal roots,
// return byte-identical strings. It never fails and never compares against a
// limit.
//
// Composition, mirroring how the format decorates names:
//  1. the symbol's own name (declared or synthesized);
//  2. generic types/methods append `N (arity) to the own segment only;
//  3. explicit interface implementations prepend the interface's
//     fully-instantiated display form plus a dot, e.g. "N.J<C>.";
//  4. types directly nested in a namespace prepend the dotted namespace
//     chain. A type nested inside another type gets no outer-type prefix:
//     the limit applies to the bare (or namespace-qualified) name only.
func QualifiedName(tab *symbols.Table, id symbols.SymbolID) string {
	sym := tab.Get(id)
	if sym == nil {
		return ""
	}

	own := ownSegment(tab, sym)

	if sym.ExplicitIface.IsValid() {
		var sb strings.Builder
		writeInterfaceDisplay(&sb, tab, sym.ExplicitIface, sym.ExplicitTypeArgs)
		sb.WriteByte('.')
		sb.WriteString(own)
		return sb.String()
	}

	if sym.Kind == symbols.SymbolType {
		if ns := namespaceChain(tab, sym.Container); ns != "" {
			return ns + "." + own
		}
	}

	return own
}

// BareName returns the undecorated name used for entities that are not
// independently addressable metadata paths (params, type params, locals).
func BareName(tab *symbols.Table, id symbols.SymbolID) string {
	return tab.Name(id)
}

// ownSegment is the symbol's name with the generic-arity suffix applied.
func ownSegment(tab *symbols.Table, sym *symbols.Symbol) string {
	name, _ := tab.Strings.Lookup(sym.Name)
	if sym.Arity == 0 {
		return name
	}
	switch sym.Kind {
	case symbols.SymbolType, symbols.SymbolMethod:
		return name + "`" + strconv.FormatUint(uint64(sym.Arity), 10)
	default:
		return name
	}
}

// namespaceChain walks up while containers are namespaces and joins their
// names with dots. The global namespace is the absent container and
// contributes nothing.
func namespaceChain(tab *symbols.Table, id symbols.SymbolID) string {
	var parts []string
	for cur := id; cur.IsValid(); {
		sym := tab.Get(cur)
		if sym == nil || sym.Kind != symbols.SymbolNamespace {
			break
		}
		if name, _ := tab.Strings.Lookup(sym.Name); name != "" {
			parts = append(parts, name)
		}
		cur = sym.Container
	}
	if len(parts) == 0 {
		return ""
	}
	// parts collected innermost-first
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		sb.WriteString(parts[i])
		if i > 0 {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// writeInterfaceDisplay renders the fully-instantiated display form of an
// interface reference: the container chain dotted in, and the type arguments
// applied to the interface's own segment, e.g. "N.Outer.J<C>".
func writeInterfaceDisplay(sb *strings.Builder, tab *symbols.Table, iface symbols.SymbolID, typeArgs []source.StringID) {
	sym := tab.Get(iface)
	if sym == nil {
		return
	}

	// Ancestors first: namespaces and outer types alike appear dotted.
	var chain []string
	for cur := sym.Container; cur.IsValid(); {
		parent := tab.Get(cur)
		if parent == nil {
			break
		}
		if name, _ := tab.Strings.Lookup(parent.Name); name != "" {
			chain = append(chain, name)
		}
		cur = parent.Container
	}
	for i := len(chain) - 1; i >= 0; i-- {
		sb.WriteString(chain[i])
		sb.WriteByte('.')
	}

	name, _ := tab.Strings.Lookup(sym.Name)
	sb.WriteString(name)

	if len(typeArgs) > 0 {
		sb.WriteByte('<')
		for i, arg := range typeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			display, _ := tab.Strings.Lookup(arg)
			sb.WriteString(display)
		}
		sb.WriteByte('>')
	}
}
