package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Quality struct {
	Name string `json:"name"`
}

type QualityWrapper struct {
	Quality Quality `json:"quality"`
}

type QualityProfile struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Tag struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type DiskSpace struct {
	Path       string `json:"path"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

type SystemStatus struct {
	Version   string `json:"version"`
	StartTime string `json:"startTime"`
}

// Page is the envelope of paged endpoints such as history and logs.
type Page[T any] struct {
	Page         int `json:"page"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Records      []T `json:"records"`
}

// QueueItem is one entry of the download queue.
type QueueItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Status         string `json:"status"`
	Size           int64  `json:"size"`
	SizeLeft       int64  `json:"sizeleft"`
	OutputPath     string `json:"outputPath"`
	Indexer        string `json:"indexer"`
	DownloadClient string `json:"downloadClient"`
}

// Progress returns the downloaded fraction in [0, 1].
func (q QueueItem) Progress() float64 {
	if q.Size <= 0 {
		return 0
	}
	return float64(q.Size-q.SizeLeft) / float64(q.Size)
}

type BlocklistItem struct {
	ID          int64          `json:"id"`
	SourceTitle string         `json:"sourceTitle"`
	Protocol    string         `json:"protocol"`
	Indexer     string         `json:"indexer"`
	Message     string         `json:"message"`
	Date        string         `json:"date"`
	Quality     QualityWrapper `json:"quality"`
	Languages   []Language     `json:"languages"`
}

type HistoryItem struct {
	ID          int64             `json:"id"`
	SourceTitle string            `json:"sourceTitle"`
	EventType   string            `json:"eventType"`
	Date        string            `json:"date"`
	Quality     QualityWrapper    `json:"quality"`
	Languages   []Language        `json:"languages"`
	Data        map[string]string `json:"data"`
}

type UnmappedFolder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

type RootFolder struct {
	ID              int64            `json:"id"`
	Path            string           `json:"path"`
	Accessible      bool             `json:"accessible"`
	FreeSpace       int64            `json:"freeSpace"`
	UnmappedFolders []UnmappedFolder `json:"unmappedFolders"`
}

type IndexerField struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

// Indexer is one configured indexer. Raw keeps the server's object so an
// edit can be sent back without losing fields this client does not model.
type Indexer struct {
	ID                      int64           `json:"id"`
	Name                    string          `json:"name"`
	Implementation          string          `json:"implementation"`
	ImplementationName      string          `json:"implementationName"`
	ConfigContract          string          `json:"configContract"`
	Protocol                string          `json:"protocol"`
	SupportsRss             bool            `json:"supportsRss"`
	SupportsSearch          bool            `json:"supportsSearch"`
	EnableRss               bool            `json:"enableRss"`
	EnableAutomaticSearch   bool            `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool            `json:"enableInteractiveSearch"`
	Priority                int64           `json:"priority"`
	DownloadClientID        int64           `json:"downloadClientId"`
	Tags                    []int64         `json:"tags"`
	Fields                  []IndexerField  `json:"fields"`
	Raw                     json.RawMessage `json:"-"`
}

func (i *Indexer) UnmarshalJSON(data []byte) error {
	type plain Indexer
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Indexer(p)
	i.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// Field returns the string form of the named field, or "" when absent.
func (i Indexer) Field(name string) string {
	for _, f := range i.Fields {
		if f.Name != name || f.Value == nil {
			continue
		}
		switch v := f.Value.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			b, _ := json.Marshal(v)
			return string(b)
		}
	}
	return ""
}

// IsTorrent reports whether the indexer uses the torrent protocol, which
// carries an extra seed ratio field.
func (i Indexer) IsTorrent() bool {
	return i.Protocol == "torrent"
}

type IndexerSettings struct {
	ID                 int64 `json:"id"`
	MinimumAge         int64 `json:"minimumAge"`
	Retention          int64 `json:"retention"`
	MaximumSize        int64 `json:"maximumSize"`
	RssSyncInterval    int64 `json:"rssSyncInterval"`
	PreferIndexerFlags bool  `json:"preferIndexerFlags,omitempty"`
}

type ValidationFailure struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
	Severity     string `json:"severity"`
}

type IndexerTestResult struct {
	ID                 int64               `json:"id"`
	IsValid            bool                `json:"isValid"`
	ValidationFailures []ValidationFailure `json:"validationFailures"`
}

// IndexerTestSummary pairs a test result with the indexer name for display.
type IndexerTestSummary struct {
	Name              string
	IsValid           bool
	ValidationFailure string
}

type Task struct {
	Name          string `json:"name"`
	TaskName      string `json:"taskName"`
	Interval      int64  `json:"interval"`
	LastExecution string `json:"lastExecution"`
	NextExecution string `json:"nextExecution"`
	LastDuration  string `json:"lastDuration"`
}

type QueuedEvent struct {
	Name        string `json:"name"`
	CommandName string `json:"commandName"`
	Trigger     string `json:"trigger"`
	Status      string `json:"status"`
	Queued      string `json:"queued"`
	Started     string `json:"started"`
	Ended       string `json:"ended"`
	Duration    string `json:"duration"`
}

type LogEntry struct {
	Time          string `json:"time"`
	Level         string `json:"level"`
	Logger        string `json:"logger"`
	Message       string `json:"message"`
	Exception     string `json:"exception"`
	ExceptionType string `json:"exceptionType"`
}

// String renders the entry as a single log line.
func (l LogEntry) String() string {
	var b strings.Builder
	b.WriteString(l.Time)
	b.WriteString("|")
	b.WriteString(strings.ToUpper(l.Level))
	b.WriteString("|")
	b.WriteString(l.Logger)
	b.WriteString("|")
	if l.Message != "" {
		b.WriteString(l.Message)
	} else {
		b.WriteString(l.ExceptionType)
		b.WriteString(": ")
		b.WriteString(l.Exception)
	}
	return b.String()
}

type UpdateChanges struct {
	New   []string `json:"new"`
	Fixed []string `json:"fixed"`
}

type Update struct {
	Version     string        `json:"version"`
	ReleaseDate string        `json:"releaseDate"`
	Installed   bool          `json:"installed"`
	Latest      bool          `json:"latest"`
	InstalledOn string        `json:"installedOn"`
	Changes     UpdateChanges `json:"changes"`
}

// Metadata is the reference data fetched once per backend and on refresh.
type Metadata struct {
	QualityProfiles []QualityProfile
	Tags            []Tag
	DiskSpace       []DiskSpace
	RootFolders     []RootFolder
	Status          SystemStatus
}

// QualityProfileName resolves a profile id, returning "" when unknown.
func (m Metadata) QualityProfileName(id int64) string {
	for _, p := range m.QualityProfiles {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// TagLabels resolves tag ids to their labels, skipping unknown ids.
func (m Metadata) TagLabels(ids []int64) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		for _, t := range m.Tags {
			if t.ID == id {
				labels = append(labels, t.Label)
				break
			}
		}
	}
	return labels
}

// ErrorBody is the JSON error returned by the servers.
type ErrorBody struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"errorMessage"`
}

// ParseTags splits a comma separated tag input into trimmed, non-empty
// labels.
func ParseTags(input string) []string {
	var labels []string
	for _, part := range strings.Split(input, ",") {
		if label := strings.TrimSpace(part); label != "" {
			labels = append(labels, label)
		}
	}
	return labels
}
