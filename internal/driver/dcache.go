package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sable/internal/diag"
	"sable/internal/source"
)

// Current schema version - increment when CheckPayload format changes.
const diskCacheSchemaVersion uint16 = 1

// DiskCache stores name-check results keyed by bound-table snapshot digest,
// so unchanged front-end output skips re-validation on recompilation.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachedDiagnostic is the flat serialisable form of one diagnostic.
type CachedDiagnostic struct {
	Code     uint16
	Severity uint8
	Message  string
	File     uint32
	Start    uint32
	End      uint32
}

// CheckPayload stores one cached check outcome.
type CheckPayload struct {
	Schema      uint16
	DebugInfo   bool
	EmitAllowed bool
	Diagnostics []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt returns a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	hexKey := hex.EncodeToString(key[:])
	// Подкаталог "checks" — для удобства читаемости/очистки.
	return filepath.Join(c.dir, "checks", hexKey+".mp")
}

// Key mixes the snapshot digest with the options that affect the outcome.
func Key(snapshotDigest [32]byte, debugInfo bool) [32]byte {
	h := sha256.New()
	h.Write(snapshotDigest[:])
	if debugInfo {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Put serializes and atomically writes a payload to the disk cache.
func (c *DiskCache) Put(key [32]byte, payload *CheckPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена.
	return os.Rename(tmp, p)
}

// Get reads a payload from the disk cache. Returns (false, nil) on a miss or
// schema mismatch.
func (c *DiskCache) Get(key [32]byte, out *CheckPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer func() { _ = f.Close() }()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// ToPayload flattens a check result for caching.
func ToPayload(res *Result, debugInfo bool) *CheckPayload {
	payload := &CheckPayload{
		Schema:      diskCacheSchemaVersion,
		DebugInfo:   debugInfo,
		EmitAllowed: res.EmitAllowed,
	}
	for _, d := range res.Bag.Items() {
		payload.Diagnostics = append(payload.Diagnostics, CachedDiagnostic{
			Code:     uint16(d.Code),
			Severity: uint8(d.Severity),
			Message:  d.Message,
			File:     uint32(d.Primary.File),
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		})
	}
	return payload
}

// FromPayload rebuilds a diagnostic bag from a cached payload.
func FromPayload(payload *CheckPayload) *diag.Bag {
	bag := diag.NewBag(len(payload.Diagnostics))
	for _, d := range payload.Diagnostics {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Severity),
			Code:     diag.Code(d.Code),
			Message:  d.Message,
			Primary: source.Span{
				File:  source.FileID(d.File),
				Start: d.Start,
				End:   d.End,
			},
		})
	}
	return bag
}
