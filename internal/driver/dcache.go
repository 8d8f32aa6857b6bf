package driver

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"sigil/internal/diag"
	"sigil/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки по content hash на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// NewDiskCache creates the cache directory if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// CachedDiag is one diagnostic in serialized form. Spans are stored as
// offsets only; the FileID is re-bound on load.
type CachedDiag struct {
	Code  uint16
	Sev   uint8
	Msg   string
	Start uint32
	End   uint32
}

// DiskPayload stores a file's cached check result.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	Path     string
	Hash     [32]byte
	DefCount int
	Diags    []CachedDiag
}

func newPayload(file *source.File, defCount int, bag *diag.Bag) DiskPayload {
	payload := DiskPayload{
		Schema:   diskCacheSchemaVersion,
		Path:     file.Path,
		Hash:     file.Hash,
		DefCount: defCount,
	}
	for _, d := range bag.Items() {
		payload.Diags = append(payload.Diags, CachedDiag{
			Code:  uint16(d.Code),
			Sev:   uint8(d.Severity),
			Msg:   d.Message,
			Start: d.Primary.Start,
			End:   d.Primary.End,
		})
	}
	return payload
}

// toBag восстанавливает Bag, привязывая span'ы к новому FileID.
func (p *DiskPayload) toBag(id source.FileID, maxDiags int) *diag.Bag {
	bag := diag.NewBag(maxDiags)
	for _, d := range p.Diags {
		bag.Add(diag.Diagnostic{
			Severity: diag.Severity(d.Sev),
			Code:     diag.Code(d.Code),
			Message:  d.Msg,
			Primary:  source.Span{File: id, Start: d.Start, End: d.End},
		})
	}
	return bag
}

// Load returns the payload for a content hash, if present and valid.
func (c *DiskCache) Load(hash [32]byte) (*DiskPayload, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.entryPath(hash))
	if err != nil {
		return nil, false
	}
	var payload DiskPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, false
	}
	if payload.Schema != diskCacheSchemaVersion || payload.Hash != hash {
		return nil, false
	}
	return &payload, true
}

// Store writes a payload atomically (tmp + rename).
func (c *DiskCache) Store(payload DiskPayload) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := msgpack.Marshal(&payload)
	if err != nil {
		return err
	}
	final := c.entryPath(payload.Hash)
	tmp := final + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, final)
}

func (c *DiskCache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".msgpack")
}
