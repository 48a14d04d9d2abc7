package handlers

import (
	"fmt"
	"strings"

	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/models"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

var albumDetailsFactory = Factory{
	Name:    "album_details",
	Accepts: blockSet(route.AlbumDetailsBlocks, trackDetailsFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, trackDetailsFactory); h != nil {
			return h
		}
		return &albumDetailsHandler{base{c}}
	},
}

// albumDetailsHandler drives the track list of the selected album and the
// album search prompt.
type albumDetailsHandler struct {
	base
}

func (h *albumDetailsHandler) selectedID() int64 {
	album, _ := h.data().Albums.CurrentSelection()
	return album.ID
}

func (h *albumDetailsHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.Track]{
		Table:      h.data().Tracks,
		TableBlock: route.AlbumDetails,
	})
}

func (h *albumDetailsHandler) HandleLeftRight() {
	if h.Block == route.AlbumSearchPrompt {
		h.togglePrompt()
	}
}

func (h *albumDetailsHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.AlbumDetails:
		track, ok := d.Tracks.CurrentSelection()
		if !ok {
			return
		}
		d.TrackDetails = uistate.NewScrollableText(TrackDetailsText(track))
		h.push(route.TrackDetails)
	case route.AlbumSearchPrompt:
		h.submitPrompt(network.OpTriggerAlbumSearch, network.IDParams{ID: h.selectedID()})
	}
}

func (h *albumDetailsHandler) HandleEsc() {
	switch h.Block {
	case route.AlbumSearchPrompt:
		h.escPrompt()
	default:
		h.pop()
		h.data().Tracks.SetItems(nil)
		h.clearErrors()
	}
}

func (h *albumDetailsHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.AlbumDetails:
		switch {
		case h.matches(km.AutoSearch):
			h.push(route.AlbumSearchPrompt)
		case h.matches(km.ToggleMonitoring):
			if album, ok := d.Albums.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleAlbumMonitoring, network.MonitorParams{IDs: []int64{album.ID}, Monitored: !album.Monitored})
			}
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.AlbumSearchPrompt:
		h.confirmPrompt(network.OpTriggerAlbumSearch, network.IDParams{ID: h.selectedID()})
	}
}

// TrackDetailsText renders the description pane of a track.
func TrackDetailsText(t models.Track) string {
	status := "Missing"
	if t.HasFile {
		status = "Downloaded"
	}
	return strings.Join([]string{
		fmt.Sprintf("Title: %s", t.Title),
		fmt.Sprintf("Track Number: %s", t.TrackNumber),
		fmt.Sprintf("Duration: %s", TrackDuration(t.Duration)),
		fmt.Sprintf("Explicit: %t", t.Explicit),
		fmt.Sprintf("Status: %s", status),
	}, "\n")
}

// TrackDuration formats a length in milliseconds as minutes and seconds.
func TrackDuration(ms int64) string {
	secs := max(ms, 0) / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
