package driver

import (
	"context"
	"testing"

	"sable/internal/emit"
	"sable/internal/symbols"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt() = %v", err)
	}

	tab := symbols.NewTable(0)
	tab.New(symbols.Symbol{
		Name: tab.Strings.Intern(longName(emit.MetadataNameLengthLimit + 1)),
		Kind: symbols.SymbolType,
	})
	res, err := CheckNames(context.Background(), tab, nil, Options{})
	if err != nil {
		t.Fatalf("CheckNames() = %v", err)
	}

	digest, err := symbols.Export(tab).Digest()
	if err != nil {
		t.Fatalf("Digest() = %v", err)
	}
	key := Key(digest, false)

	if err := cache.Put(key, ToPayload(res, false)); err != nil {
		t.Fatalf("Put() = %v", err)
	}

	var payload CheckPayload
	hit, err := cache.Get(key, &payload)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if !hit {
		t.Fatal("Get() missed a freshly written key")
	}
	if payload.EmitAllowed {
		t.Error("cached payload lost the emit gate")
	}
	if len(payload.Diagnostics) != res.Bag.Len() {
		t.Fatalf("cached %d diagnostics, want %d", len(payload.Diagnostics), res.Bag.Len())
	}

	bag := FromPayload(&payload)
	for i, d := range bag.Items() {
		orig := res.Bag.Items()[i]
		if d.Code != orig.Code || d.Severity != orig.Severity || d.Message != orig.Message || d.Primary != orig.Primary {
			t.Errorf("diagnostic %d mutated through the cache: %v vs %v", i, d, orig)
		}
	}
}

func TestDiskCache_Miss(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt() = %v", err)
	}
	var payload CheckPayload
	hit, err := cache.Get([32]byte{1, 2, 3}, &payload)
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	if hit {
		t.Fatal("Get() reported a hit for an absent key")
	}
}

func TestKey_DependsOnOptions(t *testing.T) {
	digest := [32]byte{42}
	if Key(digest, true) == Key(digest, false) {
		t.Error("cache key must separate debug-info and plain runs")
	}
}
