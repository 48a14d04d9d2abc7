package route

import (
	"fmt"
	"slices"
)

// Block is a screen address within a feature area.
type Block int

const (
	None Block = iota

	Library
	LibrarySortPrompt
	SearchLibrary
	SearchLibraryError
	FilterLibrary
	FilterLibraryError
	UpdateAllLibraryPrompt

	MediaDetails
	MediaHistory
	AutomaticSearchPrompt
	UpdateAndScanPrompt
	MediaSeasons
	MediaAlbums

	SeasonDetails
	SeasonSearchPrompt
	EpisodeDetails
	EpisodeSearchPrompt

	AlbumDetails
	AlbumSearchPrompt
	TrackDetails

	DeleteAlbumPrompt
	DeleteAlbumToggleDeleteFiles
	DeleteAlbumToggleAddListExclusion
	DeleteAlbumConfirmPrompt

	DeleteMediaPrompt
	DeleteMediaToggleDeleteFiles
	DeleteMediaToggleAddListExclusion
	DeleteMediaConfirmPrompt

	EditMediaPrompt
	EditMediaToggleMonitored
	EditMediaSelectQualityProfile
	EditMediaPathInput
	EditMediaTagsInput
	EditMediaConfirmPrompt

	AddMediaSearchInput
	AddMediaSearchResults
	AddMediaEmptySearchResults
	AddMediaAlreadyInLibrary
	AddMediaPrompt
	AddMediaSelectRootFolder
	AddMediaSelectQualityProfile
	AddMediaTagsInput
	AddMediaConfirmPrompt

	Downloads
	DeleteDownloadPrompt
	UpdateDownloadsPrompt

	Blocklist
	BlocklistSortPrompt
	BlocklistItemDetails
	DeleteBlocklistItemPrompt
	BlocklistClearAllItemsPrompt

	History
	HistorySortPrompt
	SearchHistory
	SearchHistoryError
	FilterHistory
	FilterHistoryError
	HistoryItemDetails

	RootFolders
	AddRootFolderPrompt
	DeleteRootFolderPrompt

	Indexers
	DeleteIndexerPrompt
	TestIndexer

	EditIndexerPrompt
	EditIndexerNameInput
	EditIndexerURLInput
	EditIndexerAPIKeyInput
	EditIndexerSeedRatioInput
	EditIndexerPriorityInput
	EditIndexerTagsInput
	EditIndexerToggleEnableRss
	EditIndexerToggleEnableAutomaticSearch
	EditIndexerToggleEnableInteractiveSearch
	EditIndexerConfirmPrompt

	IndexerSettingsPrompt
	IndexerSettingsMinimumAgeInput
	IndexerSettingsRetentionInput
	IndexerSettingsMaximumSizeInput
	IndexerSettingsRssSyncIntervalInput
	IndexerSettingsConfirmPrompt

	TestAllIndexers

	System
	SystemLogs
	SystemTasks
	SystemTaskStartConfirmPrompt
	SystemQueuedEvents
	SystemUpdates

	blockCount
)

var blockNames = map[Block]string{
	None:                                     "None",
	Library:                                  "Library",
	LibrarySortPrompt:                        "LibrarySortPrompt",
	SearchLibrary:                            "SearchLibrary",
	SearchLibraryError:                       "SearchLibraryError",
	FilterLibrary:                            "FilterLibrary",
	FilterLibraryError:                       "FilterLibraryError",
	UpdateAllLibraryPrompt:                   "UpdateAllLibraryPrompt",
	MediaDetails:                             "MediaDetails",
	MediaHistory:                             "MediaHistory",
	AutomaticSearchPrompt:                    "AutomaticSearchPrompt",
	UpdateAndScanPrompt:                      "UpdateAndScanPrompt",
	MediaSeasons:                             "MediaSeasons",
	MediaAlbums:                              "MediaAlbums",
	SeasonDetails:                            "SeasonDetails",
	SeasonSearchPrompt:                       "SeasonSearchPrompt",
	EpisodeDetails:                           "EpisodeDetails",
	EpisodeSearchPrompt:                      "EpisodeSearchPrompt",
	AlbumDetails:                             "AlbumDetails",
	AlbumSearchPrompt:                        "AlbumSearchPrompt",
	TrackDetails:                             "TrackDetails",
	DeleteAlbumPrompt:                        "DeleteAlbumPrompt",
	DeleteAlbumToggleDeleteFiles:             "DeleteAlbumToggleDeleteFiles",
	DeleteAlbumToggleAddListExclusion:        "DeleteAlbumToggleAddListExclusion",
	DeleteAlbumConfirmPrompt:                 "DeleteAlbumConfirmPrompt",
	DeleteMediaPrompt:                        "DeleteMediaPrompt",
	DeleteMediaToggleDeleteFiles:             "DeleteMediaToggleDeleteFiles",
	DeleteMediaToggleAddListExclusion:        "DeleteMediaToggleAddListExclusion",
	DeleteMediaConfirmPrompt:                 "DeleteMediaConfirmPrompt",
	EditMediaPrompt:                          "EditMediaPrompt",
	EditMediaToggleMonitored:                 "EditMediaToggleMonitored",
	EditMediaSelectQualityProfile:            "EditMediaSelectQualityProfile",
	EditMediaPathInput:                       "EditMediaPathInput",
	EditMediaTagsInput:                       "EditMediaTagsInput",
	EditMediaConfirmPrompt:                   "EditMediaConfirmPrompt",
	AddMediaSearchInput:                      "AddMediaSearchInput",
	AddMediaSearchResults:                    "AddMediaSearchResults",
	AddMediaEmptySearchResults:               "AddMediaEmptySearchResults",
	AddMediaAlreadyInLibrary:                 "AddMediaAlreadyInLibrary",
	AddMediaPrompt:                           "AddMediaPrompt",
	AddMediaSelectRootFolder:                 "AddMediaSelectRootFolder",
	AddMediaSelectQualityProfile:             "AddMediaSelectQualityProfile",
	AddMediaTagsInput:                        "AddMediaTagsInput",
	AddMediaConfirmPrompt:                    "AddMediaConfirmPrompt",
	Downloads:                                "Downloads",
	DeleteDownloadPrompt:                     "DeleteDownloadPrompt",
	UpdateDownloadsPrompt:                    "UpdateDownloadsPrompt",
	Blocklist:                                "Blocklist",
	BlocklistSortPrompt:                      "BlocklistSortPrompt",
	BlocklistItemDetails:                     "BlocklistItemDetails",
	DeleteBlocklistItemPrompt:                "DeleteBlocklistItemPrompt",
	BlocklistClearAllItemsPrompt:             "BlocklistClearAllItemsPrompt",
	History:                                  "History",
	HistorySortPrompt:                        "HistorySortPrompt",
	SearchHistory:                            "SearchHistory",
	SearchHistoryError:                       "SearchHistoryError",
	FilterHistory:                            "FilterHistory",
	FilterHistoryError:                       "FilterHistoryError",
	HistoryItemDetails:                       "HistoryItemDetails",
	RootFolders:                              "RootFolders",
	AddRootFolderPrompt:                      "AddRootFolderPrompt",
	DeleteRootFolderPrompt:                   "DeleteRootFolderPrompt",
	Indexers:                                 "Indexers",
	DeleteIndexerPrompt:                      "DeleteIndexerPrompt",
	TestIndexer:                              "TestIndexer",
	EditIndexerPrompt:                        "EditIndexerPrompt",
	EditIndexerNameInput:                     "EditIndexerNameInput",
	EditIndexerURLInput:                      "EditIndexerURLInput",
	EditIndexerAPIKeyInput:                   "EditIndexerAPIKeyInput",
	EditIndexerSeedRatioInput:                "EditIndexerSeedRatioInput",
	EditIndexerPriorityInput:                 "EditIndexerPriorityInput",
	EditIndexerTagsInput:                     "EditIndexerTagsInput",
	EditIndexerToggleEnableRss:               "EditIndexerToggleEnableRss",
	EditIndexerToggleEnableAutomaticSearch:   "EditIndexerToggleEnableAutomaticSearch",
	EditIndexerToggleEnableInteractiveSearch: "EditIndexerToggleEnableInteractiveSearch",
	EditIndexerConfirmPrompt:                 "EditIndexerConfirmPrompt",
	IndexerSettingsPrompt:                    "IndexerSettingsPrompt",
	IndexerSettingsMinimumAgeInput:           "IndexerSettingsMinimumAgeInput",
	IndexerSettingsRetentionInput:            "IndexerSettingsRetentionInput",
	IndexerSettingsMaximumSizeInput:          "IndexerSettingsMaximumSizeInput",
	IndexerSettingsRssSyncIntervalInput:      "IndexerSettingsRssSyncIntervalInput",
	IndexerSettingsConfirmPrompt:             "IndexerSettingsConfirmPrompt",
	TestAllIndexers:                          "TestAllIndexers",
	System:                                   "System",
	SystemLogs:                               "SystemLogs",
	SystemTasks:                              "SystemTasks",
	SystemTaskStartConfirmPrompt:             "SystemTaskStartConfirmPrompt",
	SystemQueuedEvents:                       "SystemQueuedEvents",
	SystemUpdates:                            "SystemUpdates",
}

func (b Block) String() string {
	if name, ok := blockNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Block(%d)", int(b))
}

// AllBlocks enumerates every addressable block, excluding None.
func AllBlocks() []Block {
	blocks := make([]Block, 0, int(blockCount)-1)
	for b := None + 1; b < blockCount; b++ {
		blocks = append(blocks, b)
	}
	return blocks
}

// Set is an ordered group of blocks owned by one feature area.
type Set []Block

// Contains reports whether b is a member of the set.
func (s Set) Contains(b Block) bool {
	return slices.Contains(s, b)
}

var (
	LibraryBlocks = Set{
		Library,
		LibrarySortPrompt,
		SearchLibrary,
		SearchLibraryError,
		FilterLibrary,
		FilterLibraryError,
		UpdateAllLibraryPrompt,
	}
	MediaDetailsBlocks = Set{
		MediaDetails,
		MediaHistory,
		AutomaticSearchPrompt,
		UpdateAndScanPrompt,
		MediaSeasons,
		MediaAlbums,
	}
	SeasonDetailsBlocks = Set{
		SeasonDetails,
		SeasonSearchPrompt,
	}
	EpisodeDetailsBlocks = Set{
		EpisodeDetails,
		EpisodeSearchPrompt,
	}
	AlbumDetailsBlocks = Set{
		AlbumDetails,
		AlbumSearchPrompt,
	}
	TrackDetailsBlocks = Set{
		TrackDetails,
	}
	DeleteAlbumBlocks = Set{
		DeleteAlbumPrompt,
		DeleteAlbumToggleDeleteFiles,
		DeleteAlbumToggleAddListExclusion,
		DeleteAlbumConfirmPrompt,
	}
	DeleteMediaBlocks = Set{
		DeleteMediaPrompt,
		DeleteMediaToggleDeleteFiles,
		DeleteMediaToggleAddListExclusion,
		DeleteMediaConfirmPrompt,
	}
	EditMediaBlocks = Set{
		EditMediaPrompt,
		EditMediaToggleMonitored,
		EditMediaSelectQualityProfile,
		EditMediaPathInput,
		EditMediaTagsInput,
		EditMediaConfirmPrompt,
	}
	AddMediaBlocks = Set{
		AddMediaSearchInput,
		AddMediaSearchResults,
		AddMediaEmptySearchResults,
		AddMediaAlreadyInLibrary,
		AddMediaPrompt,
		AddMediaSelectRootFolder,
		AddMediaSelectQualityProfile,
		AddMediaTagsInput,
		AddMediaConfirmPrompt,
	}
	DownloadsBlocks = Set{
		Downloads,
		DeleteDownloadPrompt,
		UpdateDownloadsPrompt,
	}
	BlocklistBlocks = Set{
		Blocklist,
		BlocklistSortPrompt,
		BlocklistItemDetails,
		DeleteBlocklistItemPrompt,
		BlocklistClearAllItemsPrompt,
	}
	HistoryBlocks = Set{
		History,
		HistorySortPrompt,
		SearchHistory,
		SearchHistoryError,
		FilterHistory,
		FilterHistoryError,
		HistoryItemDetails,
	}
	RootFolderBlocks = Set{
		RootFolders,
		AddRootFolderPrompt,
		DeleteRootFolderPrompt,
	}
	IndexersBlocks = Set{
		Indexers,
		DeleteIndexerPrompt,
		TestIndexer,
	}
	EditIndexerBlocks = Set{
		EditIndexerPrompt,
		EditIndexerNameInput,
		EditIndexerURLInput,
		EditIndexerAPIKeyInput,
		EditIndexerSeedRatioInput,
		EditIndexerPriorityInput,
		EditIndexerTagsInput,
		EditIndexerToggleEnableRss,
		EditIndexerToggleEnableAutomaticSearch,
		EditIndexerToggleEnableInteractiveSearch,
		EditIndexerConfirmPrompt,
	}
	IndexerSettingsBlocks = Set{
		IndexerSettingsPrompt,
		IndexerSettingsMinimumAgeInput,
		IndexerSettingsRetentionInput,
		IndexerSettingsMaximumSizeInput,
		IndexerSettingsRssSyncIntervalInput,
		IndexerSettingsConfirmPrompt,
	}
	TestAllIndexersBlocks = Set{
		TestAllIndexers,
	}
	SystemBlocks = Set{
		System,
	}
	SystemDetailsBlocks = Set{
		SystemLogs,
		SystemTasks,
		SystemTaskStartConfirmPrompt,
		SystemQueuedEvents,
		SystemUpdates,
	}
)

// Field layouts for the multi-field modals, row by row.
var (
	DeleteMediaSelectionBlocks = [][]Block{
		{DeleteMediaToggleDeleteFiles},
		{DeleteMediaToggleAddListExclusion},
		{DeleteMediaConfirmPrompt},
	}
	DeleteAlbumSelectionBlocks = [][]Block{
		{DeleteAlbumToggleDeleteFiles},
		{DeleteAlbumToggleAddListExclusion},
		{DeleteAlbumConfirmPrompt},
	}
	EditMediaSelectionBlocks = [][]Block{
		{EditMediaToggleMonitored},
		{EditMediaSelectQualityProfile},
		{EditMediaPathInput},
		{EditMediaTagsInput},
		{EditMediaConfirmPrompt},
	}
	AddMediaSelectionBlocks = [][]Block{
		{AddMediaSelectRootFolder},
		{AddMediaSelectQualityProfile},
		{AddMediaTagsInput},
		{AddMediaConfirmPrompt},
	}
	EditIndexerTorrentSelectionBlocks = [][]Block{
		{EditIndexerNameInput, EditIndexerURLInput},
		{EditIndexerToggleEnableRss, EditIndexerAPIKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerSeedRatioInput},
		{EditIndexerToggleEnableInteractiveSearch, EditIndexerPriorityInput},
		{EditIndexerTagsInput},
		{EditIndexerConfirmPrompt},
	}
	EditIndexerNzbSelectionBlocks = [][]Block{
		{EditIndexerNameInput, EditIndexerURLInput},
		{EditIndexerToggleEnableRss, EditIndexerAPIKeyInput},
		{EditIndexerToggleEnableAutomaticSearch, EditIndexerPriorityInput},
		{EditIndexerToggleEnableInteractiveSearch},
		{EditIndexerTagsInput},
		{EditIndexerConfirmPrompt},
	}
	IndexerSettingsSelectionBlocks = [][]Block{
		{IndexerSettingsMinimumAgeInput, IndexerSettingsRetentionInput},
		{IndexerSettingsMaximumSizeInput, IndexerSettingsRssSyncIntervalInput},
		{IndexerSettingsConfirmPrompt},
	}
)
