package route

import "testing"

func TestAllBlocksHaveNames(t *testing.T) {
	for _, b := range AllBlocks() {
		if _, ok := blockNames[b]; !ok {
			t.Fatalf("expected name for block %d", int(b))
		}
	}
	if len(AllBlocks()) != len(blockNames)-1 {
		t.Fatalf("expected %d blocks, got %d", len(blockNames)-1, len(AllBlocks()))
	}
}

func TestBlockSetsAreDisjoint(t *testing.T) {
	sets := map[string]Set{
		"library":          LibraryBlocks,
		"media details":    MediaDetailsBlocks,
		"season details":   SeasonDetailsBlocks,
		"episode details":  EpisodeDetailsBlocks,
		"album details":    AlbumDetailsBlocks,
		"track details":    TrackDetailsBlocks,
		"delete album":     DeleteAlbumBlocks,
		"delete media":     DeleteMediaBlocks,
		"edit media":       EditMediaBlocks,
		"add media":        AddMediaBlocks,
		"downloads":        DownloadsBlocks,
		"blocklist":        BlocklistBlocks,
		"history":          HistoryBlocks,
		"root folders":     RootFolderBlocks,
		"indexers":         IndexersBlocks,
		"edit indexer":     EditIndexerBlocks,
		"indexer settings": IndexerSettingsBlocks,
		"test all":         TestAllIndexersBlocks,
		"system":           SystemBlocks,
		"system details":   SystemDetailsBlocks,
	}
	for _, b := range AllBlocks() {
		var owners []string
		for name, set := range sets {
			if set.Contains(b) {
				owners = append(owners, name)
			}
		}
		if len(owners) != 1 {
			t.Fatalf("expected exactly one owner for %s, got %v", b, owners)
		}
	}
}

func TestSelectionLayoutsOnlyReferenceOwnBlocks(t *testing.T) {
	layouts := []struct {
		name   string
		rows   [][]Block
		parent Set
	}{
		{"delete media", DeleteMediaSelectionBlocks, DeleteMediaBlocks},
		{"delete album", DeleteAlbumSelectionBlocks, DeleteAlbumBlocks},
		{"edit media", EditMediaSelectionBlocks, EditMediaBlocks},
		{"add media", AddMediaSelectionBlocks, AddMediaBlocks},
		{"edit indexer torrent", EditIndexerTorrentSelectionBlocks, EditIndexerBlocks},
		{"edit indexer nzb", EditIndexerNzbSelectionBlocks, EditIndexerBlocks},
		{"indexer settings", IndexerSettingsSelectionBlocks, IndexerSettingsBlocks},
	}
	for _, layout := range layouts {
		for _, row := range layout.rows {
			if len(row) == 0 {
				t.Fatalf("%s: expected non-empty rows", layout.name)
			}
			for _, b := range row {
				if !layout.parent.Contains(b) {
					t.Fatalf("%s: block %s not owned by its modal", layout.name, b)
				}
			}
		}
	}
}

func TestRouteEqualityIsStructural(t *testing.T) {
	a := New(Radarr, Indexers)
	b := Route{Backend: Radarr, Block: Indexers}
	if a != b {
		t.Fatalf("expected %v to equal %v", a, b)
	}
	if a == a.WithContext(Library) {
		t.Fatalf("expected context to take part in equality")
	}
	if New(Sonarr, Indexers) == a {
		t.Fatalf("expected backend to take part in equality")
	}
}

func TestParseBackend(t *testing.T) {
	for _, backend := range AllBackends() {
		got, err := ParseBackend(backend.Title())
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", backend, err)
		}
		if got != backend {
			t.Fatalf("expected %s, got %s", backend, got)
		}
	}
	if _, err := ParseBackend("readarr"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestRouteString(t *testing.T) {
	r := New(Lidarr, EditIndexerPrompt).WithContext(Indexers)
	if got, want := r.String(), "lidarr:EditIndexerPrompt(Indexers)"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
