package handlers

import "github.com/atomicstack/servarr-dash/internal/route"

var testAllIndexersFactory = Factory{
	Name:    "test_all_indexers",
	Accepts: blockSet(route.TestAllIndexersBlocks),
	With: func(c Context) KeyEventHandler {
		return &testAllIndexersHandler{base{c}}
	},
}

type testAllIndexersHandler struct {
	base
}

func (h *testAllIndexersHandler) IsReady() bool {
	return !h.App.IsLoading && h.data().IndexerTestAll != nil
}

func (h *testAllIndexersHandler) HandleScrollUp()   { h.data().IndexerTestAll.ScrollUp() }
func (h *testAllIndexersHandler) HandleScrollDown() { h.data().IndexerTestAll.ScrollDown() }
func (h *testAllIndexersHandler) HandleHome()       { h.data().IndexerTestAll.ScrollToTop() }
func (h *testAllIndexersHandler) HandleEnd()        { h.data().IndexerTestAll.ScrollToBottom() }

func (h *testAllIndexersHandler) HandleEsc() {
	h.pop()
	h.data().IndexerTestAll = nil
}
