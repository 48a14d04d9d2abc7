package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/network"
	"github.com/atomicstack/servarr-dash/internal/route"
)

var episodeDetailsFactory = Factory{
	Name:    "episode_details",
	Accepts: blockSet(route.EpisodeDetailsBlocks),
	With: func(c Context) KeyEventHandler {
		return &episodeDetailsHandler{base{c}}
	},
}

type episodeDetailsHandler struct {
	base
}

func (h *episodeDetailsHandler) selectedID() int64 {
	episode, _ := h.data().Episodes.CurrentSelection()
	return episode.ID
}

func (h *episodeDetailsHandler) HandleScrollUp() {
	if h.Block == route.EpisodeDetails {
		h.data().EpisodeDetails.ScrollUp()
	}
}

func (h *episodeDetailsHandler) HandleScrollDown() {
	if h.Block == route.EpisodeDetails {
		h.data().EpisodeDetails.ScrollDown()
	}
}

func (h *episodeDetailsHandler) HandleHome() {
	if h.Block == route.EpisodeDetails {
		h.data().EpisodeDetails.ScrollHome()
	}
}

func (h *episodeDetailsHandler) HandleEnd() {
	if h.Block == route.EpisodeDetails {
		h.data().EpisodeDetails.ScrollToBottom()
	}
}

func (h *episodeDetailsHandler) HandleLeftRight() {
	if h.Block == route.EpisodeSearchPrompt {
		h.togglePrompt()
	}
}

func (h *episodeDetailsHandler) HandleSubmit() {
	if h.Block == route.EpisodeSearchPrompt {
		h.submitPrompt(network.OpTriggerEpisodeSearch, network.IDParams{ID: h.selectedID()})
	}
}

func (h *episodeDetailsHandler) HandleEsc() {
	switch h.Block {
	case route.EpisodeSearchPrompt:
		h.escPrompt()
	default:
		h.pop()
		h.clearErrors()
	}
}

func (h *episodeDetailsHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.EpisodeDetails:
		switch {
		case h.matches(km.AutoSearch):
			h.push(route.EpisodeSearchPrompt)
		case h.matches(km.ToggleMonitoring):
			if episode, ok := d.Episodes.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleEpisodeMonitoring, network.MonitorParams{IDs: []int64{episode.ID}, Monitored: !episode.Monitored})
			}
		}
	case route.EpisodeSearchPrompt:
		h.confirmPrompt(network.OpTriggerEpisodeSearch, network.IDParams{ID: h.selectedID()})
	}
}
