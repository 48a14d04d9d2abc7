package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/route"
)

var trackDetailsFactory = Factory{
	Name:    "track_details",
	Accepts: blockSet(route.TrackDetailsBlocks),
	With: func(c Context) KeyEventHandler {
		return &trackDetailsHandler{base{c}}
	},
}

type trackDetailsHandler struct {
	base
}

func (h *trackDetailsHandler) HandleScrollUp()   { h.data().TrackDetails.ScrollUp() }
func (h *trackDetailsHandler) HandleScrollDown() { h.data().TrackDetails.ScrollDown() }
func (h *trackDetailsHandler) HandleHome()       { h.data().TrackDetails.ScrollHome() }
func (h *trackDetailsHandler) HandleEnd()        { h.data().TrackDetails.ScrollToBottom() }

func (h *trackDetailsHandler) HandleEsc() {
	h.pop()
	h.clearErrors()
}
