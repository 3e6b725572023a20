package driver

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"rill/internal/diag"
	"rill/internal/source"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.rl", "#[inline]\nstruct S;\n")

	fs := source.NewFileSet()
	res, err := CheckFile(fs, path, Options{})
	if err != nil {
		t.Fatalf("CheckFile failed: %v", err)
	}
	if res.Bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", res.Bag.Items())
	}
	if res.Bag.Items()[0].Code != diag.SemaAttrWrongTarget {
		t.Fatalf("unexpected code %v", res.Bag.Items()[0].Code)
	}
	if res.File == nil || len(res.File.Decls) != 1 {
		t.Fatalf("expected parsed tree with one declaration")
	}
}

func TestCheckDirDeterministic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.rl", "#[repr(u8, u16)]\nenum E { A, B }\n")
	writeFile(t, dir, "a.rl", "#[inline]\nunion U { x: u32 }\n")
	writeFile(t, dir, "clean.rl", "#[inline]\nfn ok() {}\n")

	run := func(jobs int) []diag.Diagnostic {
		_, results, err := CheckDir(context.Background(), dir, Options{Jobs: jobs})
		if err != nil {
			t.Fatalf("CheckDir failed: %v", err)
		}
		if len(results) != 3 {
			t.Fatalf("expected 3 results, got %d", len(results))
		}
		// Results are in sorted path order regardless of scheduling.
		for i, want := range []string{"a.rl", "b.rl", "clean.rl"} {
			if filepath.Base(results[i].Path) != want {
				t.Fatalf("result %d: expected %s, got %s", i, want, results[i].Path)
			}
		}
		return MergeBags(results).Items()
	}

	sequential := run(1)
	parallel := run(4)

	if len(sequential) != 2 {
		t.Fatalf("expected 2 diagnostics total, got %v", sequential)
	}
	// FileIDs are assigned in sorted load order, so the streams must
	// match verbatim.
	if !reflect.DeepEqual(sequential, parallel) {
		t.Fatalf("diagnostics depend on job count:\n%v\nvs\n%v", sequential, parallel)
	}
}

func TestCheckDirEmpty(t *testing.T) {
	_, results, err := CheckDir(context.Background(), t.TempDir(), Options{})
	if err != nil {
		t.Fatalf("CheckDir on empty dir failed: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}

	bag := diag.NewBag(8)
	bag.Add(diag.NewError(diag.SemaAttrWrongTarget,
		source.Span{File: 7, Start: 0, End: 9},
		"attribute should be applied to function").
		WithNote(source.Span{File: 7, Start: 10, End: 19}, "not a function"))

	key := [32]byte{1, 2, 3}
	if _, ok := cache.Lookup(key, 0, 8); ok {
		t.Fatalf("lookup before store must miss")
	}
	if err := cache.Store(key, bag); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	got, ok := cache.Lookup(key, 42, 8)
	if !ok {
		t.Fatalf("lookup after store must hit")
	}
	if got.Len() != 1 {
		t.Fatalf("expected 1 cached diagnostic, got %d", got.Len())
	}
	d := got.Items()[0]
	if d.Primary.File != 42 {
		t.Fatalf("span must be rebased onto the new FileID, got %v", d.Primary.File)
	}
	if d.Code != diag.SemaAttrWrongTarget || d.Message != "attribute should be applied to function" {
		t.Fatalf("unexpected cached diagnostic %+v", d)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "not a function" || d.Notes[0].Span.File != 42 {
		t.Fatalf("unexpected cached notes %+v", d.Notes)
	}
}

func TestCheckDirWithCache(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.rl", "#[inline]\nenum E { A }\n")

	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenDiskCacheAt failed: %v", err)
	}
	opts := Options{Cache: cache}

	_, cold, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("cold run failed: %v", err)
	}
	_, warm, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatalf("warm run failed: %v", err)
	}

	if !reflect.DeepEqual(MergeBags(cold).Items(), MergeBags(warm).Items()) {
		t.Fatalf("cache changed the diagnostics:\ncold %v\nwarm %v",
			MergeBags(cold).Items(), MergeBags(warm).Items())
	}
	// The warm run served from cache and never parsed.
	if warm[0].File != nil {
		t.Fatalf("cache hit should not carry a parsed tree")
	}
}
