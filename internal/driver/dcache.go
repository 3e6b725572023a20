package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"rill/internal/diag"
	"rill/internal/source"
)

// Bump when the payload format changes; mismatched entries are ignored.
const diskCacheSchemaVersion uint16 = 1

// DiskCache memoizes per-file diagnostics keyed by content hash. A hit
// skips lexing, parsing and checking entirely. Safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache initializes a disk cache under the standard user cache
// location ($XDG_CACHE_HOME/<app> or ~/.cache/<app>).
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt initializes a disk cache rooted at dir.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(filepath.Join(dir, "diags"), 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// cachedNote and cachedDiag store spans file-relative; the FileID is
// rebased when the entry is loaded into a new FileSet.
type cachedNote struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
	Msg   string `msgpack:"m"`
}

type cachedDiag struct {
	Severity uint8        `msgpack:"v"`
	Code     uint16       `msgpack:"c"`
	Message  string       `msgpack:"m"`
	Start    uint32       `msgpack:"s"`
	End      uint32       `msgpack:"e"`
	Notes    []cachedNote `msgpack:"n,omitempty"`
}

type diagPayload struct {
	Schema uint16       `msgpack:"schema"`
	Diags  []cachedDiag `msgpack:"diags"`
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "diags", hex.EncodeToString(key[:])+".msgpack")
}

// Store persists the bag's diagnostics for the given content hash.
func (c *DiskCache) Store(key [32]byte, bag *diag.Bag) error {
	payload := diagPayload{Schema: diskCacheSchemaVersion}
	for _, d := range bag.Items() {
		entry := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			entry.Notes = append(entry.Notes, cachedNote{
				Start: n.Span.Start,
				End:   n.Span.End,
				Msg:   n.Msg,
			})
		}
		payload.Diags = append(payload.Diags, entry)
	}

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return fmt.Errorf("encode cache payload: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Write-then-rename keeps readers from seeing partial payloads.
	path := c.pathFor(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("commit cache entry: %w", err)
	}
	return nil
}

// Lookup returns the cached diagnostics for a content hash, rebased onto
// fileID. Missing, stale, or undecodable entries miss silently.
func (c *DiskCache) Lookup(key [32]byte, fileID source.FileID, maxDiagnostics int) (*diag.Bag, bool) {
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		return nil, false
	}

	var payload diagPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(maxDiagnostics)
	for _, entry := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(entry.Severity),
			Code:     diag.Code(entry.Code),
			Message:  entry.Message,
			Primary:  source.Span{File: fileID, Start: entry.Start, End: entry.End},
		}
		for _, n := range entry.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: fileID, Start: n.Start, End: n.End},
				Msg:  n.Msg,
			})
		}
		bag.Add(d)
	}
	return bag, true
}
