package symbols

import (
	"crypto/sha256"
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/source"
)

// Current schema version - increment when the snapshot format changes.
const snapshotSchemaVersion uint16 = 1

// Snapshot is the serialisable form of a bound symbol table, the debug dump
// the front end writes and the CLI consumes. Resources are not part of it;
// they come from the project manifest.
type Snapshot struct {
	Schema  uint16
	Strings []string
	Symbols []SymbolRecord
	Uses    []UseRecord
}

// SymbolRecord mirrors Symbol with plain integers for stable serialisation.
type SymbolRecord struct {
	Name             uint32
	Kind             uint8
	Container        uint32
	File             uint32
	Start            uint32
	End              uint32
	Generated        uint8
	Ordinal          uint32
	Arity            uint16
	ExplicitIface    uint32
	ExplicitTypeArgs []uint32
}

// UseRecord mirrors Use.
type UseRecord struct {
	Target uint32
	File   uint32
	Start  uint32
	End    uint32
}

// Export captures the table into a snapshot.
func Export(t *Table) *Snapshot {
	snap := &Snapshot{
		Schema:  snapshotSchemaVersion,
		Strings: t.Strings.Snapshot(),
	}
	for _, sym := range t.Data() {
		rec := SymbolRecord{
			Name:          uint32(sym.Name),
			Kind:          uint8(sym.Kind),
			Container:     uint32(sym.Container),
			File:          uint32(sym.Span.File),
			Start:         sym.Span.Start,
			End:           sym.Span.End,
			Generated:     uint8(sym.Generated),
			Ordinal:       sym.Ordinal,
			Arity:         sym.Arity,
			ExplicitIface: uint32(sym.ExplicitIface),
		}
		for _, arg := range sym.ExplicitTypeArgs {
			rec.ExplicitTypeArgs = append(rec.ExplicitTypeArgs, uint32(arg))
		}
		snap.Symbols = append(snap.Symbols, rec)
	}
	for _, use := range t.Uses() {
		snap.Uses = append(snap.Uses, UseRecord{
			Target: uint32(use.Target),
			File:   uint32(use.Span.File),
			Start:  use.Span.Start,
			End:    use.Span.End,
		})
	}
	return snap
}

// Table rebuilds a symbol table from the snapshot.
func (s *Snapshot) Table() (*Table, error) {
	if s.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("snapshot schema %d, want %d", s.Schema, snapshotSchemaVersion)
	}
	count, err := safecast.Conv[uint32](len(s.Symbols))
	if err != nil {
		return nil, fmt.Errorf("snapshot symbol count overflow: %w", err)
	}
	t := NewTable(count)
	t.Strings = source.Restore(s.Strings)
	for _, rec := range s.Symbols {
		sym := Symbol{
			Name:      source.StringID(rec.Name),
			Kind:      SymbolKind(rec.Kind),
			Container: SymbolID(rec.Container),
			Span: source.Span{
				File:  source.FileID(rec.File),
				Start: rec.Start,
				End:   rec.End,
			},
			Generated:     GeneratedKind(rec.Generated),
			Ordinal:       rec.Ordinal,
			Arity:         rec.Arity,
			ExplicitIface: SymbolID(rec.ExplicitIface),
		}
		for _, arg := range rec.ExplicitTypeArgs {
			sym.ExplicitTypeArgs = append(sym.ExplicitTypeArgs, source.StringID(arg))
		}
		t.New(sym)
	}
	for _, rec := range s.Uses {
		t.AddUse(SymbolID(rec.Target), source.Span{
			File:  source.FileID(rec.File),
			Start: rec.Start,
			End:   rec.End,
		})
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("snapshot failed table invariants: %w", err)
	}
	return t, nil
}

// WriteTo serialises the snapshot with msgpack.
func (s *Snapshot) WriteTo(w io.Writer) error {
	return msgpack.NewEncoder(w).Encode(s)
}

// ReadSnapshot deserialises a snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Digest returns a stable content hash of the snapshot, used as a cache key.
func (s *Snapshot) Digest() ([32]byte, error) {
	h := sha256.New()
	if err := msgpack.NewEncoder(h).Encode(s); err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out, nil
}

