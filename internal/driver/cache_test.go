package driver

import (
	"path/filepath"
	"testing"

	"dlint/internal/lint"
	"dlint/internal/source"
)

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	var key Digest
	key[0] = 0x42
	payload := &CachePayload{
		Schema: cacheSchemaVersion,
		Diagnostics: []CachedDiagnostic{
			{Severity: 1, Code: 3001, Message: "m", Start: 10, End: 13},
		},
	}
	if err := cache.Put(key, payload); err != nil {
		t.Fatal(err)
	}

	var got CachePayload
	ok, err := cache.Get(key, &got)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if len(got.Diagnostics) != 1 || got.Diagnostics[0].Message != "m" {
		t.Errorf("payload mangled: %+v", got)
	}

	var missing Digest
	missing[0] = 0x43
	if ok, err := cache.Get(missing, &got); ok || err != nil {
		t.Errorf("missing key: ok=%v err=%v", ok, err)
	}
}

func TestCheckPathUsesCache(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.d": "class A { const int f() { return 0; } }\n",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := Options{Cache: cache}
	path := filepath.Join(dir, "a.d")

	first := CheckPath(source.NewFileSet(), path, opts)
	if first.FromCache {
		t.Fatal("first run must not be served from cache")
	}
	if first.Bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", first.Bag.Len())
	}

	second := CheckPath(source.NewFileSet(), path, opts)
	if !second.FromCache {
		t.Fatal("second run must be served from cache")
	}
	if second.Bag.Len() != 1 || second.Bag.Items()[0].Message != first.Bag.Items()[0].Message {
		t.Errorf("cached diagnostics differ: %v vs %v", second.Bag.Items(), first.Bag.Items())
	}
	// spans must be rebound to the new FileSet's FileID
	if second.Bag.Items()[0].Primary.Start != first.Bag.Items()[0].Primary.Start {
		t.Error("cached span offsets lost")
	}
}

func TestCacheKeyedByConfig(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.d": "class A { const int f() { return 0; } }\n",
	})
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "a.d")

	warm := Options{Cache: cache}
	CheckPath(source.NewFileSet(), path, warm)

	disabled := Options{Cache: cache}
	disabled.Config = lint.Config{Checks: map[string]bool{"function_attribute_check": false}}
	res := CheckPath(source.NewFileSet(), path, disabled)
	if res.FromCache {
		t.Fatal("different configuration must not hit the old entry")
	}
	if res.Bag.Len() != 0 {
		t.Errorf("disabled config produced %d diagnostics", res.Bag.Len())
	}
}
