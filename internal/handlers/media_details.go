package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var mediaDetailsFactory = Factory{
	Name:    "media_details",
	Accepts: blockSet(route.MediaDetailsBlocks, seasonDetailsFactory, albumDetailsFactory, deleteAlbumFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, seasonDetailsFactory, albumDetailsFactory, deleteAlbumFactory); h != nil {
			return h
		}
		return &mediaDetailsHandler{base{c}}
	},
}

type mediaDetailsHandler struct {
	base
}

func (h *mediaDetailsHandler) selectedID() int64 {
	item, _ := h.data().Library.CurrentSelection()
	return item.ID
}

func (h *mediaDetailsHandler) HandleScrollUp() {
	d := h.data()
	switch h.Block {
	case route.MediaDetails:
		d.MediaDetails.ScrollUp()
	case route.MediaHistory:
		d.MediaHistory.ScrollUp()
	case route.MediaSeasons:
		d.Seasons.ScrollUp()
	case route.MediaAlbums:
		d.Albums.ScrollUp()
	}
}

func (h *mediaDetailsHandler) HandleScrollDown() {
	d := h.data()
	switch h.Block {
	case route.MediaDetails:
		d.MediaDetails.ScrollDown()
	case route.MediaHistory:
		d.MediaHistory.ScrollDown()
	case route.MediaSeasons:
		d.Seasons.ScrollDown()
	case route.MediaAlbums:
		d.Albums.ScrollDown()
	}
}

func (h *mediaDetailsHandler) HandleHome() {
	d := h.data()
	switch h.Block {
	case route.MediaDetails:
		d.MediaDetails.ScrollHome()
	case route.MediaHistory:
		d.MediaHistory.ScrollToTop()
	case route.MediaSeasons:
		d.Seasons.ScrollToTop()
	case route.MediaAlbums:
		d.Albums.ScrollToTop()
	}
}

func (h *mediaDetailsHandler) HandleEnd() {
	d := h.data()
	switch h.Block {
	case route.MediaDetails:
		d.MediaDetails.ScrollToBottom()
	case route.MediaHistory:
		d.MediaHistory.ScrollToBottom()
	case route.MediaSeasons:
		d.Seasons.ScrollToBottom()
	case route.MediaAlbums:
		d.Albums.ScrollToBottom()
	}
}

func (h *mediaDetailsHandler) HandleLeftRight() {
	switch h.Block {
	case route.MediaDetails, route.MediaHistory, route.MediaSeasons, route.MediaAlbums:
		d := h.data()
		if h.isLeft() {
			d.MediaInfoTabs.Previous()
		} else {
			d.MediaInfoTabs.Next()
		}
		h.App.PopAndPushNavigationStack(d.MediaInfoTabs.ActiveRoute())
	case route.AutomaticSearchPrompt, route.UpdateAndScanPrompt:
		h.togglePrompt()
	}
}

func (h *mediaDetailsHandler) HandleDelete() {
	if h.Block != route.MediaAlbums || h.data().Albums.IsEmpty() {
		return
	}
	d := h.data()
	d.ResetDeleteToggles()
	d.SelectBlocks(route.DeleteAlbumSelectionBlocks)
	h.pushWithContext(route.DeleteAlbumPrompt, route.MediaAlbums)
}

func (h *mediaDetailsHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.MediaSeasons:
		if !d.Seasons.IsEmpty() {
			d.Episodes.SetItems(nil)
			h.push(route.SeasonDetails)
		}
	case route.MediaAlbums:
		if !d.Albums.IsEmpty() {
			d.Tracks.SetItems(nil)
			h.push(route.AlbumDetails)
		}
	case route.AutomaticSearchPrompt:
		h.submitPrompt(network.OpTriggerAutomaticSearch, network.IDParams{ID: h.selectedID()})
	case route.UpdateAndScanPrompt:
		h.submitPrompt(network.OpUpdateAndScan, network.IDParams{ID: h.selectedID()})
	}
}

func (h *mediaDetailsHandler) HandleEsc() {
	switch h.Block {
	case route.AutomaticSearchPrompt, route.UpdateAndScanPrompt:
		h.escPrompt()
	default:
		d := h.data()
		h.pop()
		d.MediaHistory.SetItems(nil)
		d.Albums.SetItems(nil)
		d.MediaInfoTabs.SetIndex(0)
		h.clearErrors()
	}
}

func (h *mediaDetailsHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.MediaDetails, route.MediaHistory:
		switch {
		case h.matches(km.AutoSearch):
			h.push(route.AutomaticSearchPrompt)
		case h.matches(km.Update):
			h.push(route.UpdateAndScanPrompt)
		case h.matches(km.Edit):
			openEditMedia(&h.base, h.Block)
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.MediaSeasons:
		switch {
		case h.matches(km.AutoSearch) && !d.Seasons.IsEmpty():
			h.push(route.SeasonSearchPrompt)
		case h.matches(km.ToggleMonitoring):
			item, _ := d.Library.CurrentSelection()
			if season, ok := d.Seasons.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleSeasonMonitoring, network.ToggleSeasonMonitoringParams{Series: item, SeasonNumber: season.SeasonNumber})
			}
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.MediaAlbums:
		switch {
		case h.matches(km.AutoSearch) && !d.Albums.IsEmpty():
			h.push(route.AlbumSearchPrompt)
		case h.matches(km.ToggleMonitoring):
			if album, ok := d.Albums.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleAlbumMonitoring, network.MonitorParams{IDs: []int64{album.ID}, Monitored: !album.Monitored})
			}
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.AutomaticSearchPrompt:
		h.confirmPrompt(network.OpTriggerAutomaticSearch, network.IDParams{ID: h.selectedID()})
	case route.UpdateAndScanPrompt:
		h.confirmPrompt(network.OpUpdateAndScan, network.IDParams{ID: h.selectedID()})
	}
}
