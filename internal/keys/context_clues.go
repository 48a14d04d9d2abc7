package keys

// ContextClue is a key hint shown in the footer for the current screen.
type ContextClue struct {
	Binding Binding
	Desc    string
}

var (
	ServarrContextClues = []ContextClue{
		{Default.NextServarr, Default.NextServarr.Help().Desc},
		{Default.PreviousServarr, Default.PreviousServarr.Help().Desc},
		{Default.Quit, Default.Quit.Help().Desc},
		{Default.Help, Default.Help.Help().Desc},
	}

	LibraryContextClues = []ContextClue{
		{Default.Add, Default.Add.Help().Desc},
		{Default.ToggleMonitoring, Default.ToggleMonitoring.Help().Desc},
		{Default.Edit, Default.Edit.Help().Desc},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Search, Default.Search.Help().Desc},
		{Default.Filter, Default.Filter.Help().Desc},
		{Default.Sort, Default.Sort.Help().Desc},
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Update, "update all"},
		{Default.Submit, "details"},
		{Default.Esc, "cancel filter"},
	}

	MediaDetailsContextClues = []ContextClue{
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Update, "update and scan"},
		{Default.Edit, Default.Edit.Help().Desc},
		{Default.AutoSearch, Default.AutoSearch.Help().Desc},
		{Default.Esc, Default.Esc.Help().Desc},
	}

	SeasonsContextClues = []ContextClue{
		{Default.Submit, "details"},
		{Default.ToggleMonitoring, Default.ToggleMonitoring.Help().Desc},
		{Default.AutoSearch, Default.AutoSearch.Help().Desc},
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Esc, Default.Esc.Help().Desc},
	}

	AlbumsContextClues = []ContextClue{
		{Default.Submit, "details"},
		{Default.ToggleMonitoring, Default.ToggleMonitoring.Help().Desc},
		{Default.AutoSearch, Default.AutoSearch.Help().Desc},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Esc, Default.Esc.Help().Desc},
	}

	EpisodeDetailsContextClues = []ContextClue{
		{Default.ToggleMonitoring, Default.ToggleMonitoring.Help().Desc},
		{Default.AutoSearch, Default.AutoSearch.Help().Desc},
		{Default.Esc, Default.Esc.Help().Desc},
	}

	DownloadsContextClues = []ContextClue{
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Update, "update downloads"},
	}

	BlocklistContextClues = []ContextClue{
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Sort, Default.Sort.Help().Desc},
		{Default.Submit, "details"},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Clear, "clear blocklist"},
	}

	HistoryContextClues = []ContextClue{
		{Default.Refresh, Default.Refresh.Help().Desc},
		{Default.Search, Default.Search.Help().Desc},
		{Default.Filter, Default.Filter.Help().Desc},
		{Default.Sort, Default.Sort.Help().Desc},
		{Default.Submit, "details"},
		{Default.Esc, "cancel filter"},
	}

	RootFolderContextClues = []ContextClue{
		{Default.Add, Default.Add.Help().Desc},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Refresh, Default.Refresh.Help().Desc},
	}

	IndexersContextClues = []ContextClue{
		{Default.Submit, "edit indexer"},
		{Default.Settings, "indexer settings"},
		{Default.Delete, Default.Delete.Help().Desc},
		{Default.Test, "test indexer"},
		{Default.TestAll, "test all indexers"},
		{Default.Refresh, Default.Refresh.Help().Desc},
	}

	SystemContextClues = []ContextClue{
		{Default.Tasks, "open tasks"},
		{Default.Events, "open events"},
		{Default.Logs, "open logs"},
		{Default.Update, "open updates"},
		{Default.Refresh, Default.Refresh.Help().Desc},
	}

	SystemTasksContextClues = []ContextClue{
		{Default.Submit, "start task"},
		{Default.Esc, Default.Esc.Help().Desc},
	}

	ConfirmationPromptContextClues = []ContextClue{
		{Default.Confirm, "submit"},
		{Default.Esc, "cancel"},
	}
)
