package state

import (
	"slices"
	"strconv"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/models"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

// EditMediaModal stages an edit of a library item.
type EditMediaModal struct {
	Monitored       bool
	QualityProfiles *uistate.StatefulTable[models.QualityProfile]
	Path            *uistate.HorizontallyScrollableText
	Tags            *uistate.HorizontallyScrollableText
}

// NewEditMediaModal seeds the modal from the item being edited.
func NewEditMediaModal(item models.MediaItem, meta models.Metadata) *EditMediaModal {
	m := &EditMediaModal{
		Monitored:       item.Monitored,
		QualityProfiles: uistate.NewStatefulTable(meta.QualityProfiles),
		Path:            uistate.NewHorizontallyScrollableText(item.Path),
		Tags:            uistate.NewHorizontallyScrollableText(FormatTags(meta.TagLabels(item.Tags))),
	}
	idx := slices.IndexFunc(meta.QualityProfiles, func(p models.QualityProfile) bool {
		return p.ID == item.QualityProfileID
	})
	if idx >= 0 {
		m.QualityProfiles.SelectIndex(idx)
	}
	return m
}

// QualityProfileID returns the selected profile, or 0 when none exist.
func (m *EditMediaModal) QualityProfileID() int64 {
	p, ok := m.QualityProfiles.CurrentSelection()
	if !ok {
		return 0
	}
	return p.ID
}

// AddMediaModal stages adding a search result to the library.
type AddMediaModal struct {
	Monitored       bool
	RootFolders     *uistate.StatefulTable[models.RootFolder]
	QualityProfiles *uistate.StatefulTable[models.QualityProfile]
	Tags            *uistate.HorizontallyScrollableText
}

// NewAddMediaModal seeds the modal with the backend's reference data.
func NewAddMediaModal(meta models.Metadata) *AddMediaModal {
	return &AddMediaModal{
		Monitored:       true,
		RootFolders:     uistate.NewStatefulTable(meta.RootFolders),
		QualityProfiles: uistate.NewStatefulTable(meta.QualityProfiles),
		Tags:            uistate.NewHorizontallyScrollableText(""),
	}
}

// EditIndexerModal stages an edit of an indexer.
type EditIndexerModal struct {
	Name                    *uistate.HorizontallyScrollableText
	URL                     *uistate.HorizontallyScrollableText
	APIKey                  *uistate.HorizontallyScrollableText
	SeedRatio               *uistate.HorizontallyScrollableText
	Tags                    *uistate.HorizontallyScrollableText
	Priority                int64
	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
	Torrent                 bool
}

// NewEditIndexerModal seeds the modal from an indexer.
func NewEditIndexerModal(indexer models.Indexer, meta models.Metadata) *EditIndexerModal {
	return &EditIndexerModal{
		Name:                    uistate.NewHorizontallyScrollableText(indexer.Name),
		URL:                     uistate.NewHorizontallyScrollableText(indexer.Field("baseUrl")),
		APIKey:                  uistate.NewHorizontallyScrollableText(indexer.Field("apiKey")),
		SeedRatio:               uistate.NewHorizontallyScrollableText(indexer.Field("seedCriteria.seedRatio")),
		Tags:                    uistate.NewHorizontallyScrollableText(FormatTags(meta.TagLabels(indexer.Tags))),
		Priority:                indexer.Priority,
		EnableRss:               indexer.EnableRss,
		EnableAutomaticSearch:   indexer.EnableAutomaticSearch,
		EnableInteractiveSearch: indexer.EnableInteractiveSearch,
		Torrent:                 indexer.IsTorrent(),
	}
}

// RootFolderModal stages a new root folder path.
type RootFolderModal struct {
	Path *uistate.HorizontallyScrollableText
}

// FormatTags joins tag labels the way the edit inputs display them.
func FormatTags(labels []string) string {
	return strings.Join(labels, ", ")
}

// FormatSize renders a byte count in GB with one decimal place.
func FormatSize(bytes int64) string {
	return strconv.FormatFloat(float64(bytes)/(1<<30), 'f', 1, 64) + " GB"
}
