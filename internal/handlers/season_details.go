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

var seasonDetailsFactory = Factory{
	Name:    "season_details",
	Accepts: blockSet(route.SeasonDetailsBlocks, episodeDetailsFactory),
	With: func(c Context) KeyEventHandler {
		if h := delegate(c, episodeDetailsFactory); h != nil {
			return h
		}
		return &seasonDetailsHandler{base{c}}
	},
}

// seasonDetailsHandler drives the episode list of the selected season and
// the season search prompt.
type seasonDetailsHandler struct {
	base
}

func (h *seasonDetailsHandler) params() network.SeasonParams {
	d := h.data()
	item, _ := d.Library.CurrentSelection()
	season, _ := d.Seasons.CurrentSelection()
	return network.SeasonParams{SeriesID: item.ID, SeasonNumber: season.SeasonNumber}
}

func (h *seasonDetailsHandler) HandleTableEvents() bool {
	return handleTable(&h.base, h.IsReady(), tableConfig[models.Episode]{
		Table:      h.data().Episodes,
		TableBlock: route.SeasonDetails,
	})
}

func (h *seasonDetailsHandler) HandleLeftRight() {
	if h.Block == route.SeasonSearchPrompt {
		h.togglePrompt()
	}
}

func (h *seasonDetailsHandler) HandleSubmit() {
	d := h.data()
	switch h.Block {
	case route.SeasonDetails:
		episode, ok := d.Episodes.CurrentSelection()
		if !ok {
			return
		}
		d.EpisodeDetails = uistate.NewScrollableText(EpisodeDetailsText(episode))
		h.push(route.EpisodeDetails)
	case route.SeasonSearchPrompt:
		h.submitPrompt(network.OpTriggerSeasonSearch, h.params())
	}
}

func (h *seasonDetailsHandler) HandleEsc() {
	switch h.Block {
	case route.SeasonSearchPrompt:
		h.escPrompt()
	default:
		h.pop()
		h.data().Episodes.SetItems(nil)
		h.clearErrors()
	}
}

func (h *seasonDetailsHandler) HandleChar() {
	km := keys.Default
	d := h.data()
	switch h.Block {
	case route.SeasonDetails:
		switch {
		case h.matches(km.AutoSearch):
			h.push(route.SeasonSearchPrompt)
		case h.matches(km.ToggleMonitoring):
			if episode, ok := d.Episodes.CurrentSelection(); ok {
				d.PromptConfirm = true
				h.stage(network.OpToggleEpisodeMonitoring, network.MonitorParams{IDs: []int64{episode.ID}, Monitored: !episode.Monitored})
			}
		case h.matches(km.Refresh):
			h.App.ShouldRefresh = true
		}
	case route.SeasonSearchPrompt:
		h.confirmPrompt(network.OpTriggerSeasonSearch, h.params())
	}
}

// EpisodeDetailsText renders the description pane of an episode.
func EpisodeDetailsText(e models.Episode) string {
	status := "Missing"
	if e.HasFile {
		status = "Downloaded"
	}
	lines := []string{
		fmt.Sprintf("Title: %s", e.Title),
		fmt.Sprintf("Season: %d", e.SeasonNumber),
		fmt.Sprintf("Episode Number: %d", e.EpisodeNumber),
		fmt.Sprintf("Air Date: %s", airDate(e.AirDateUtc)),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Monitored: %t", e.Monitored),
	}
	if e.Overview != "" {
		lines = append(lines, "", e.Overview)
	}
	return strings.Join(lines, "\n")
}

func airDate(ts string) string {
	if ts == "" {
		return "TBA"
	}
	if date, _, ok := strings.Cut(ts, "T"); ok {
		return date
	}
	return ts
}
