package emit

import (
	"fmt"

	"sable/internal/diag"
)

// ReportViolation turns one violation into exactly one diagnostic — no
// merging, no suppression. The message's single argument is always the
// computed full name that was too long. Location is the declared span when
// one exists; synthesized entities and resources without a syntactic anchor
// report with no location rather than a best guess.
func ReportViolation(r diag.Reporter, v Violation) {
	switch v.Kind {
	case LimitName:
		diag.ReportError(r, diag.EmitNameTooLong, v.Span,
			fmt.Sprintf("name '%s' exceeds the maximum length allowed in metadata", v.FullName)).Emit()
	case LimitPath:
		diag.ReportError(r, diag.EmitPathTooLong, v.Span,
			fmt.Sprintf("resource path '%s' exceeds the maximum length allowed in metadata", v.FullName)).Emit()
	case LimitPdbLocal:
		diag.ReportWarning(r, diag.EmitLocalNameTooLong, v.Span,
			fmt.Sprintf("local name '%s' is too long for debug information; the name will be omitted from debug output", v.FullName)).Emit()
	default:
		panic("unreachable: unhandled LimitKind " + v.Kind.String())
	}
}

// ReportAll reports violations in the given order, one diagnostic each.
func ReportAll(r diag.Reporter, violations []Violation) {
	for _, v := range violations {
		ReportViolation(r, v)
	}
}

// Blocks reports whether the violation is error-class, i.e. whether it must
// block successful emission.
func (v Violation) Blocks() bool {
	return v.Kind == LimitName || v.Kind == LimitPath
}
