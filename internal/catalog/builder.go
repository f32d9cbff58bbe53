package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"chordr/internal/diag"
	"chordr/internal/parser"
	"chordr/internal/source"
	"chordr/internal/tokenizer"
)

// songExtensions lists the file suffixes treated as chorddown sources.
var songExtensions = []string{".chorddown", ".chordown", ".cho"}

// BuildOptions configures one catalog build.
type BuildOptions struct {
	// Cache skips re-parsing files whose content hash is already known.
	// May be nil.
	Cache *DiskCache
	// Events receives per-file progress updates. May be nil. The channel
	// is closed when the build finishes.
	Events chan<- Event
	// Concurrency bounds the parse workers (0 = GOMAXPROCS).
	Concurrency int
	// MaxDiagnostics caps the merged diagnostic bag.
	MaxDiagnostics int
}

// BuildResult carries the catalog plus everything needed to report on the
// build: diagnostics, the file set they resolve against, and cache stats.
type BuildResult struct {
	Catalog   *Catalog
	Bag       *diag.Bag
	FileSet   *source.FileSet
	Files     []string
	CacheHits int
}

// ListSongFiles returns the chorddown files under dir, sorted by path.
func ListSongFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		for _, known := range songExtensions {
			if ext == known {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Build walks dir, parses every chorddown file and assembles the catalog.
// Files are loaded sequentially into one FileSet, then parsed concurrently;
// all diagnostics end up in one sorted bag. Unreadable files fail the build.
func Build(ctx context.Context, dir string, opts BuildOptions) (*BuildResult, error) {
	if opts.Events != nil {
		defer close(opts.Events)
	}

	files, err := ListSongFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("list songs in %s: %w", dir, err)
	}

	fileSet := source.NewFileSet()
	ids := make([]source.FileID, len(files))
	for i, path := range files {
		id, loadErr := fileSet.Load(path)
		if loadErr != nil {
			return nil, fmt.Errorf("load %s: %w", path, loadErr)
		}
		ids[i] = id
		emit(opts.Events, Event{File: path, Status: StatusQueued})
	}

	songs := make([]Song, len(files))
	bags := make([]*diag.Bag, len(files))
	cached := make([]bool, len(files))

	g, ctx := errgroup.WithContext(ctx)
	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(limit)

	for i := range files {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			emit(opts.Events, Event{File: files[i], Status: StatusParsing})
			song, bag, hit, buildErr := buildSong(fileSet.Get(ids[i]), files[i], opts)
			if buildErr != nil {
				emit(opts.Events, Event{File: files[i], Status: StatusError})
				return buildErr
			}
			songs[i] = song
			bags[i] = bag
			cached[i] = hit
			if hit {
				emit(opts.Events, Event{File: files[i], Status: StatusCached})
			} else {
				emit(opts.Events, Event{File: files[i], Status: StatusDone})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	bag := diag.NewBag(capOrDefault(opts.MaxDiagnostics))
	hits := 0
	for i := range files {
		if bags[i] != nil {
			bag.Merge(bags[i])
		}
		if cached[i] {
			hits++
		}
	}
	checkDuplicateIDs(songs, ids, bag)
	bag.Sort()

	return &BuildResult{
		Catalog: &Catalog{
			Revision: revision(fileSet, ids),
			Songs:    songs,
		},
		Bag:       bag,
		FileSet:   fileSet,
		Files:     files,
		CacheHits: hits,
	}, nil
}

func buildSong(file *source.File, path string, opts BuildOptions) (Song, *diag.Bag, bool, error) {
	if song, ok, err := opts.Cache.Get(file.Hash); err == nil && ok {
		return song, nil, true, nil
	}

	bag := diag.NewBag(capOrDefault(opts.MaxDiagnostics))
	tokens := tokenizer.Tokenize(file, tokenizer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	parsed := parser.Parse(tokens)

	if parsed.Meta.Title == "" {
		bag.Add(diag.NewWarning(
			diag.CatMissingTitle,
			source.Span{File: file.ID},
			"song has no level-1 headline to use as its title",
		))
	}

	song := songFromMeta(SongID(path), parsed.Meta, string(file.Content))
	if err := opts.Cache.Put(file.Hash, song); err != nil {
		return Song{}, nil, false, fmt.Errorf("cache %s: %w", path, err)
	}
	return song, bag, false, nil
}

func checkDuplicateIDs(songs []Song, ids []source.FileID, bag *diag.Bag) {
	seen := make(map[string]int, len(songs))
	for i, song := range songs {
		if first, dup := seen[song.ID]; dup {
			bag.Add(diag.NewWarning(
				diag.CatDuplicateID,
				source.Span{File: ids[i]},
				fmt.Sprintf("song ID %q already used by song #%d", song.ID, first+1),
			))
			continue
		}
		seen[song.ID] = i
	}
}

// revision hashes every file's content hash in path order.
func revision(fileSet *source.FileSet, ids []source.FileID) string {
	h := sha256.New()
	for _, id := range ids {
		hash := fileSet.Get(id).Hash
		h.Write(hash[:])
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func emit(events chan<- Event, ev Event) {
	if events != nil {
		events <- ev
	}
}

func capOrDefault(maxDiagnostics int) int {
	if maxDiagnostics <= 0 {
		return 100
	}
	return maxDiagnostics
}
