package catalog

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// DiskCache keeps one parsed Song per source content hash so unchanged
// files are not re-parsed on the next catalog build.
type DiskCache struct {
	dir string
}

type cachePayload struct {
	Schema uint16
	Song   Song
}

// OpenDiskCache initializes a disk cache at the standard XDG location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "songs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt initializes a disk cache rooted at an explicit directory.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// Put serializes a song under its source hash. Writes go through a temp
// file and an atomic rename.
func (c *DiskCache) Put(key [32]byte, song Song) error {
	if c == nil {
		return nil
	}
	p := c.pathFor(key)
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	enc := msgpack.NewEncoder(f)
	if err := enc.Encode(cachePayload{Schema: cacheSchemaVersion, Song: song}); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get looks a song up by its source hash. A schema mismatch is a miss.
func (c *DiskCache) Get(key [32]byte) (Song, bool, error) {
	if c == nil {
		return Song{}, false, nil
	}
	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Song{}, false, nil
		}
		return Song{}, false, err
	}
	defer f.Close()

	var payload cachePayload
	dec := msgpack.NewDecoder(f)
	if err := dec.Decode(&payload); err != nil {
		return Song{}, false, err
	}
	if payload.Schema != cacheSchemaVersion {
		return Song{}, false, nil
	}
	return payload.Song, true, nil
}
