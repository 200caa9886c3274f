package symbols

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Validate walks the arena checking structural invariants the emission pass
// relies on. Returns nil if everything is consistent; otherwise aggregates
// all detected issues. A failure here is a binder defect, not a user error.
func (t *Table) Validate() error {
	var errs []error

	// Check container references and children backlinks.
	for idx := 1; idx < len(t.data); idx++ {
		symbolID, err := toSymbolID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sym := t.data[idx]
		if sym.Kind == SymbolInvalid {
			errs = append(errs, fmt.Errorf("symbol %d has invalid kind", symbolID))
		}
		if !sym.Container.IsValid() {
			continue
		}
		if int(sym.Container) >= len(t.data) || sym.Container == symbolID {
			errs = append(errs, fmt.Errorf("symbol %d has invalid container %d", symbolID, sym.Container))
			continue
		}
		found := false
		for _, child := range t.kids[sym.Container] {
			if child == symbolID {
				found = true
				break
			}
		}
		if !found {
			errs = append(errs, fmt.Errorf("symbol %d container %d missing backlink", symbolID, sym.Container))
		}
	}

	// Check container chains are acyclic. Containers always have smaller IDs
	// when the binder allocates top-down; a chain that does not strictly
	// decrease will loop.
	for idx := 1; idx < len(t.data); idx++ {
		symbolID, err := toSymbolID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		seen := map[SymbolID]struct{}{symbolID: {}}
		for cur := t.data[idx].Container; cur.IsValid(); {
			if _, dup := seen[cur]; dup {
				errs = append(errs, fmt.Errorf("symbol %d has cyclic container chain at %d", symbolID, cur))
				break
			}
			seen[cur] = struct{}{}
			next := t.Get(cur)
			if next == nil {
				break
			}
			cur = next.Container
		}
	}

	// Check ordinal uniqueness per (container, generated-kind) bucket. This
	// is what guarantees synthesized names never collide.
	type bucketKey struct {
		container SymbolID
		kind      GeneratedKind
	}
	buckets := make(map[bucketKey]map[uint32]SymbolID)
	for idx := 1; idx < len(t.data); idx++ {
		symbolID, err := toSymbolID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sym := t.data[idx]
		if sym.Generated == GeneratedNone {
			continue
		}
		key := bucketKey{container: sym.Container, kind: sym.Generated}
		bucket := buckets[key]
		if bucket == nil {
			bucket = make(map[uint32]SymbolID)
			buckets[key] = bucket
		}
		if prev, dup := bucket[sym.Ordinal]; dup {
			errs = append(errs, fmt.Errorf(
				"symbols %d and %d share ordinal %d in bucket (container %d, %s)",
				prev, symbolID, sym.Ordinal, sym.Container, sym.Generated))
			continue
		}
		bucket[sym.Ordinal] = symbolID
	}

	// Check uses reference allocated symbols.
	for i, use := range t.uses {
		if !use.Target.IsValid() || int(use.Target) >= len(t.data) {
			errs = append(errs, fmt.Errorf("use %d references missing symbol %d", i, use.Target))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func toSymbolID(idx int) (SymbolID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoSymbolID, fmt.Errorf("symbol index %d overflow: %w", idx, err)
	}
	return SymbolID(value), nil
}
