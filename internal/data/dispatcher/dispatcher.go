// Package dispatcher applies request outcomes to the application state.
package dispatcher

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/backend"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	"github.com/atomicstack/servarr-dash/internal/state"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

// Result reports what Handle changed.
type Result struct {
	Updated bool
	Failed  bool
}

type Dispatcher struct {
	app *state.App
}

func New(app *state.App) *Dispatcher {
	return &Dispatcher{app: app}
}

// Handle applies evt under the app lock. Failures land in the error buffer;
// a success clears it.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	d.app.Lock()
	defer d.app.Unlock()

	d.app.FinishRequest()
	if evt.Err != nil {
		d.app.HandleError(evt.Err)
		return Result{Failed: true}
	}
	data := d.app.DataFor(evt.Request.Backend)
	updated := d.apply(evt.Request, data, evt.Data)
	if updated || evt.Request.Op.IsMutation() {
		d.app.ClearError()
	}
	return Result{Updated: updated}
}

func (d *Dispatcher) apply(req network.Request, data *state.ServarrData, result any) bool {
	switch v := result.(type) {
	case models.Metadata:
		data.ApplyMetadata(v)
	case models.SystemStatus:
		data.Metadata.Status = v
	case models.IndexerSettings:
		data.IndexerSettings = &v
	case string:
		if req.Op != network.OpTestIndexer {
			return false
		}
		data.IndexerTestErrors = &v
	case []models.MediaItem:
		if req.Op == network.OpSearchNewMedia {
			d.applySearchResults(req.Backend, data, v)
			return true
		}
		data.Library.SetItems(v)
		data.Library.ApplySortingToggle(false)
		if req.Backend == route.Sonarr {
			data.SyncSeasons()
		}
	case []models.MediaHistoryItem:
		data.MediaHistory.SetItems(v)
	case []models.Episode:
		data.Episodes.SetItems(v)
	case []models.Album:
		data.Albums.SetItems(v)
	case []models.Track:
		data.Tracks.SetItems(v)
	case []models.QueueItem:
		data.Downloads.SetItems(v)
	case []models.BlocklistItem:
		data.Blocklist.SetItems(v)
		data.Blocklist.ApplySortingToggle(false)
	case []models.HistoryItem:
		data.History.SetItems(v)
		data.History.ApplySortingToggle(false)
	case []models.RootFolder:
		data.RootFolders.SetItems(v)
		data.Metadata.RootFolders = v
	case []models.Indexer:
		data.Indexers.SetItems(v)
	case []models.IndexerTestResult:
		data.IndexerTestAll = uistate.NewStatefulTable(TestSummaries(data.Indexers.Items, v))
	case []models.Task:
		data.Tasks.SetItems(v)
	case []models.QueuedEvent:
		data.QueuedEvents.SetItems(v)
	case []models.LogEntry:
		data.Logs.SetItems(LogLines(v))
	case []models.Update:
		data.Updates = uistate.NewScrollableText(UpdatesText(req.Backend, v))
	default:
		return false
	}
	return true
}

// applySearchResults stores add-media search results. An empty result set
// replaces the results view with the empty-results notice.
func (d *Dispatcher) applySearchResults(b route.Backend, data *state.ServarrData, items []models.MediaItem) {
	data.AddSearchResults.SetItems(items)
	current := d.app.CurrentRoute()
	if len(items) == 0 && current.Backend == b && current.Block == route.AddMediaSearchResults {
		d.app.PopAndPushNavigationStack(route.New(b, route.AddMediaEmptySearchResults).WithContext(current.Context))
	}
}

// TestSummaries pairs each test result with the indexer it belongs to.
func TestSummaries(indexers []models.Indexer, results []models.IndexerTestResult) []models.IndexerTestSummary {
	names := make(map[int64]string, len(indexers))
	for _, idx := range indexers {
		names[idx.ID] = idx.Name
	}
	out := make([]models.IndexerTestSummary, 0, len(results))
	for _, r := range results {
		name, ok := names[r.ID]
		if !ok {
			name = fmt.Sprintf("indexer %d", r.ID)
		}
		failures := make([]string, 0, len(r.ValidationFailures))
		for _, f := range r.ValidationFailures {
			failures = append(failures, f.ErrorMessage)
		}
		out = append(out, models.IndexerTestSummary{
			Name:              name,
			IsValid:           r.IsValid,
			ValidationFailure: strings.Join(failures, ", "),
		})
	}
	return out
}

// LogLines renders newest-first log records oldest first, one line each.
func LogLines(entries []models.LogEntry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range slices.Backward(entries) {
		lines = append(lines, e.String())
	}
	return lines
}

// UpdatesText renders the update list shown in the system updates popup.
func UpdatesText(b route.Backend, updates []models.Update) string {
	var sb strings.Builder
	latestInstalled := len(updates) > 0 && updates[0].Installed
	if latestInstalled {
		fmt.Fprintf(&sb, "The latest version of %s is already installed\n", b.Title())
	} else {
		fmt.Fprintf(&sb, "Install the latest version of %s\n", b.Title())
	}
	for _, u := range updates {
		sb.WriteString("\n")
		header := u.Version + " - " + dateOnly(u.ReleaseDate)
		switch {
		case u.Installed:
			header += " (Installed)"
		case u.InstalledOn != "":
			header += " (Previously Installed)"
		}
		sb.WriteString(header + "\n")
		sb.WriteString(strings.Repeat("-", len(header)) + "\n")
		writeChanges(&sb, "New", u.Changes.New)
		writeChanges(&sb, "Fixed", u.Changes.Fixed)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func writeChanges(sb *strings.Builder, title string, changes []string) {
	if len(changes) == 0 {
		return
	}
	sb.WriteString(title + ":\n")
	for _, c := range changes {
		sb.WriteString("  * " + c + "\n")
	}
}

func dateOnly(ts string) string {
	if i := strings.IndexByte(ts, 'T'); i > 0 {
		return ts[:i]
	}
	return ts
}
