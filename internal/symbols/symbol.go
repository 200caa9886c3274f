package symbols

import (
	"sable/internal/source"
)

// SymbolKind classifies the metadata meaning of a symbol. The set is closed:
// name computation dispatches over it exhaustively.
type SymbolKind uint8

const (
	SymbolInvalid SymbolKind = iota
	SymbolNamespace
	SymbolType
	SymbolMethod
	SymbolField
	SymbolProperty
	SymbolEvent
	SymbolParam
	SymbolTypeParam
	SymbolLocal
	SymbolConst
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolNamespace:
		return "namespace"
	case SymbolType:
		return "type"
	case SymbolMethod:
		return "method"
	case SymbolField:
		return "field"
	case SymbolProperty:
		return "property"
	case SymbolEvent:
		return "event"
	case SymbolParam:
		return "param"
	case SymbolTypeParam:
		return "typeparam"
	case SymbolLocal:
		return "local"
	case SymbolConst:
		return "const"
	default:
		return "invalid"
	}
}

// GeneratedKind identifies the language feature a synthesized symbol
// implements. GeneratedNone marks user-written symbols.
type GeneratedKind uint8

const (
	GeneratedNone GeneratedKind = iota
	GeneratedBackingField
	GeneratedGetAccessor
	GeneratedSetAccessor
	GeneratedAddAccessor
	GeneratedRemoveAccessor
	GeneratedLambda
	GeneratedIteratorStateMachine
	GeneratedAsyncStateMachine
	GeneratedAnonymousTypeField
	GeneratedFixedBufferField
)

func (g GeneratedKind) String() string {
	switch g {
	case GeneratedNone:
		return "none"
	case GeneratedBackingField:
		return "backing-field"
	case GeneratedGetAccessor:
		return "get-accessor"
	case GeneratedSetAccessor:
		return "set-accessor"
	case GeneratedAddAccessor:
		return "add-accessor"
	case GeneratedRemoveAccessor:
		return "remove-accessor"
	case GeneratedLambda:
		return "lambda"
	case GeneratedIteratorStateMachine:
		return "iterator-state-machine"
	case GeneratedAsyncStateMachine:
		return "async-state-machine"
	case GeneratedAnonymousTypeField:
		return "anonymous-type-field"
	case GeneratedFixedBufferField:
		return "fixed-buffer-field"
	default:
		return "unknown"
	}
}

// Symbol describes one bound entity. Symbols are created once by the binder
// (or by name synthesis right after binding) and never mutated afterwards:
// every name the emission pass computes depends only on these fields and the
// container chain, so re-deriving a name from any traversal root is
// byte-identical.
type Symbol struct {
	// Name is the declared or synthesized metadata name.
	Name source.StringID
	Kind SymbolKind
	// Container is a non-owning back reference to the enclosing symbol.
	// Storage is owned by the Table arena.
	Container SymbolID
	// Span is the declared source location; NoSpan for synthesized symbols
	// without a syntactic anchor.
	Span source.Span
	// Generated tags compiler-synthesized symbols with the feature they
	// implement.
	Generated GeneratedKind
	// Ordinal is unique within the (Container, Generated) bucket. Assigned
	// once at synthesis time; keeps synthesized names collision-free.
	Ordinal uint32
	// Arity is the type-parameter count for generic types and methods.
	Arity uint16
	// ExplicitIface references the interface whose member this symbol
	// explicitly implements, when it does.
	ExplicitIface SymbolID
	// ExplicitTypeArgs instantiate the interface's own segment in the
	// explicit-implementation prefix (display names).
	ExplicitTypeArgs []source.StringID
}

// IsSynthesized reports whether the symbol was produced by name synthesis.
func (s *Symbol) IsSynthesized() bool { return s.Generated != GeneratedNone }

// Use records an emission-time reference site that re-derives a symbol's
// name. The same synthesized entity may be validated both at its definition
// and at each recorded use; the resulting duplicate diagnostics are intended.
type Use struct {
	Target SymbolID
	Span   source.Span
}
