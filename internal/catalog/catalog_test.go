package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chordr/internal/diag"
)

func TestSongID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"swing-low.chorddown", "swing-low"},
		{"Swing Low Sweet Chariot.chorddown", "swing-low-sweet-chariot"},
		{"songs/Schöne Lieder.chorddown", "schone-lieder"},
		{"Über den Wolken.cho", "uber-den-wolken"},
		{"  spaced  .chorddown", "spaced"},
		{"123.chorddown", "123"},
	}
	for _, tt := range tests {
		if got := SongID(tt.path); got != tt.want {
			t.Errorf("SongID(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func writeSong(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestListSongFiles(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "b.chorddown", "# B\n")
	writeSong(t, dir, "a.cho", "# A\n")
	writeSong(t, dir, "notes.txt", "not a song")

	files, err := ListSongFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("got %d files, want 2: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.cho" || filepath.Base(files[1]) != "b.chorddown" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "swing-low.chorddown", "# Swing Low\nArtist: Leadbelly\n\nSwing [D]low\n")
	writeSong(t, dir, "chariot.chorddown", "# Chariot\n\n[Am]Coming for to carry\n")

	res, err := Build(context.Background(), dir, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Catalog.Len() != 2 {
		t.Fatalf("got %d songs, want 2", res.Catalog.Len())
	}
	// songs come back in sorted path order
	if res.Catalog.Songs[0].ID != "chariot" || res.Catalog.Songs[1].ID != "swing-low" {
		t.Errorf("song order: %q, %q", res.Catalog.Songs[0].ID, res.Catalog.Songs[1].ID)
	}
	if res.Catalog.Songs[1].Artist != "Leadbelly" {
		t.Errorf("artist = %q", res.Catalog.Songs[1].Artist)
	}
	if res.Catalog.Songs[1].Src == "" {
		t.Error("song source not stored")
	}
	if res.Catalog.Revision == "" {
		t.Error("revision not computed")
	}
}

func TestBuildMissingTitleWarning(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "untitled.chorddown", "just some lyrics\n")

	res, err := Build(context.Background(), dir, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !hasCode(res.Bag, diag.CatMissingTitle) {
		t.Errorf("expected a missing-title warning, got %v", res.Bag.Items())
	}
}

func TestBuildDuplicateIDWarning(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	writeSong(t, dir, "song.chorddown", "# One\n")
	writeSong(t, sub, "song.chorddown", "# Two\n")

	res, err := Build(context.Background(), dir, BuildOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if !hasCode(res.Bag, diag.CatDuplicateID) {
		t.Errorf("expected a duplicate-ID warning, got %v", res.Bag.Items())
	}
}

func TestBuildUsesCache(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "song.chorddown", "# Song\n")
	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatal(err)
	}

	first, err := Build(context.Background(), dir, BuildOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHits != 0 {
		t.Errorf("first build had %d cache hits", first.CacheHits)
	}

	second, err := Build(context.Background(), dir, BuildOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	if second.CacheHits != 1 {
		t.Errorf("second build had %d cache hits, want 1", second.CacheHits)
	}
	if second.Catalog.Songs[0].Title != "Song" {
		t.Errorf("cached song title = %q", second.Catalog.Songs[0].Title)
	}
}

func TestBuildEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	writeSong(t, dir, "song.chorddown", "# Song\n")

	events := make(chan Event, 16)
	_, err := Build(context.Background(), dir, BuildOptions{Events: events})
	if err != nil {
		t.Fatal(err)
	}

	var statuses []Status
	for ev := range events {
		statuses = append(statuses, ev.Status)
	}
	if len(statuses) < 3 {
		t.Fatalf("got %d events, want queued/parsing/done", len(statuses))
	}
	if statuses[0] != StatusQueued {
		t.Errorf("first status = %v, want queued", statuses[0])
	}
	if statuses[len(statuses)-1] != StatusDone {
		t.Errorf("last status = %v, want done", statuses[len(statuses)-1])
	}
}

func TestDiskCacheRoundTrip(t *testing.T) {
	cache, err := OpenDiskCacheAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	key := [32]byte{1, 2, 3}
	song := Song{ID: "song", Title: "Song", Src: "# Song\n"}
	if err := cache.Put(key, song); err != nil {
		t.Fatal(err)
	}

	got, ok, err := cache.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected a cache hit")
	}
	if got != song {
		t.Errorf("got %+v, want %+v", got, song)
	}

	if _, ok, _ := cache.Get([32]byte{9}); ok {
		t.Error("unexpected hit for an unknown key")
	}
}

func TestNilCacheIsNoop(t *testing.T) {
	var cache *DiskCache
	if err := cache.Put([32]byte{}, Song{}); err != nil {
		t.Errorf("nil Put returned %v", err)
	}
	if _, ok, err := cache.Get([32]byte{}); ok || err != nil {
		t.Errorf("nil Get = %v, %v", ok, err)
	}
}

func TestWriteJSON(t *testing.T) {
	c := &Catalog{Revision: "abc123", Songs: []Song{{ID: "song", Title: "Song", Src: "# Song\n"}}}
	var buf bytes.Buffer
	if err := c.WriteJSON(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"revision": "abc123"`) || !strings.Contains(out, `"id": "song"`) {
		t.Errorf("json = %s", out)
	}
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}
