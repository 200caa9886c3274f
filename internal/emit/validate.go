package emit

import (
	"sable/internal/source"
	"sable/internal/symbols"
)

// Violation records one over-long name found by the pre-emission pass.
// Exactly one of Symbol / Resource identifies the offender: Resource is -1
// for symbol violations.
type Violation struct {
	Symbol   symbols.SymbolID
	Resource int
	// FullName is the exact checked string — qualified and synthesized as the
	// format would store it, not the user's originally typed name.
	FullName string
	Kind     LimitKind
	// Span is the declared location when one exists; NoSpan otherwise.
	Span source.Span
}

// Validator runs the per-entity length checks. Every check is total: it
// yields violations, never errors. Validators are cheap value types; the
// table is read-only, so any number of validators may run concurrently over
// disjoint subtrees.
type Validator struct {
	Tab *symbols.Table
	// DebugInfo gates local/constant checks: without debug data there is no
	// slot the name could overflow.
	DebugInfo bool
}

// CheckSymbol validates one symbol's checked name against the metadata name
// limit. Type/method/field/property/event symbols are checked fully
// qualified; params and type params by bare name (they are not independently
// addressable metadata paths). Namespaces, locals and constants yield
// nothing here.
func (v *Validator) CheckSymbol(id symbols.SymbolID) *Violation {
	sym := v.Tab.Get(id)
	if sym == nil {
		return nil
	}

	var checked string
	switch sym.Kind {
	case symbols.SymbolType, symbols.SymbolMethod, symbols.SymbolField,
		symbols.SymbolProperty, symbols.SymbolEvent:
		checked = QualifiedName(v.Tab, id)
	case symbols.SymbolParam, symbols.SymbolTypeParam:
		checked = BareName(v.Tab, id)
	case symbols.SymbolNamespace, symbols.SymbolLocal, symbols.SymbolConst, symbols.SymbolInvalid:
		return nil
	default:
		return nil
	}

	if len(checked) <= MetadataNameLengthLimit {
		return nil
	}
	return &Violation{
		Symbol:   id,
		Resource: -1,
		FullName: checked,
		Kind:     LimitName,
		Span:     sym.Span,
	}
}

// CheckLocal validates a local or constant name against the debug-info
// limit. Only meaningful when debug info is requested; the caller gates on
// Validator.DebugInfo.
func (v *Validator) CheckLocal(id symbols.SymbolID) *Violation {
	sym := v.Tab.Get(id)
	if sym == nil {
		return nil
	}
	if sym.Kind != symbols.SymbolLocal && sym.Kind != symbols.SymbolConst {
		return nil
	}
	checked := BareName(v.Tab, id)
	if len(checked) <= PdbLocalNameLengthLimit {
		return nil
	}
	return &Violation{
		Symbol:   id,
		Resource: -1,
		FullName: checked,
		Kind:     LimitPdbLocal,
		Span:     sym.Span,
	}
}

// CheckResource validates a resource's name and path independently: either,
// both, or neither may produce a violation. Resources have no source
// location.
func (v *Validator) CheckResource(res symbols.ResourceDescriptor, index int) []Violation {
	var out []Violation
	if len(res.Name) > MetadataNameLengthLimit {
		out = append(out, Violation{
			Symbol:   symbols.NoSymbolID,
			Resource: index,
			FullName: res.Name,
			Kind:     LimitName,
		})
	}
	if len(res.Path) > MetadataPathLengthLimit {
		out = append(out, Violation{
			Symbol:   symbols.NoSymbolID,
			Resource: index,
			FullName: res.Path,
			Kind:     LimitPath,
		})
	}
	return out
}

// CheckUse re-validates a symbol from an emission-time reference site. The
// computed name is re-derived from scratch and matches the definition-site
// check byte for byte; the duplicate report this produces is intentional and
// must not be collapsed.
func (v *Validator) CheckUse(use symbols.Use) *Violation {
	viol := v.CheckSymbol(use.Target)
	if viol == nil {
		return nil
	}
	viol.Span = use.Span
	return viol
}

// ValidateSubtree walks one symbol's subtree depth-first in declaration
// order — each symbol before its children, an owner before the synthesized
// members allocated after it — appending every violation. It never
// short-circuits.
func (v *Validator) ValidateSubtree(root symbols.SymbolID, out []Violation) []Violation {
	if viol := v.CheckSymbol(root); viol != nil {
		out = append(out, *viol)
	}
	if v.DebugInfo {
		if viol := v.CheckLocal(root); viol != nil {
			out = append(out, *viol)
		}
	}
	for _, child := range v.Tab.Children(root) {
		out = v.ValidateSubtree(child, out)
	}
	return out
}

// Run is the sequential whole-compilation pass: every top-level type's
// subtree in declaration order, then recorded reference sites, then
// resources. The full violation set is accumulated before any reporting
// happens.
func (v *Validator) Run(resources []symbols.ResourceDescriptor) []Violation {
	var out []Violation
	for _, root := range v.Tab.Roots() {
		out = v.ValidateSubtree(root, out)
	}
	for _, use := range v.Tab.Uses() {
		if viol := v.CheckUse(use); viol != nil {
			out = append(out, *viol)
		}
	}
	for i, res := range resources {
		out = append(out, v.CheckResource(res, i)...)
	}
	return out
}
