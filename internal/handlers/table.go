package handlers

import (
	"github.com/atomicstack/servarr-dash/internal/keys"
	"github.com/atomicstack/servarr-dash/internal/logging/events"
	"github.com/atomicstack/servarr-dash/internal/route"
	uistate "github.com/atomicstack/servarr-dash/internal/ui/state"
)

// tableConfig wires a table into the shared scroll, sort, search and filter
// behaviour. Blocks left as route.None disable the matching feature.
type tableConfig[T any] struct {
	Table            *uistate.StatefulTable[T]
	TableBlock       route.Block
	SortBlock        route.Block
	SortOptions      func() []uistate.SortOption[T]
	SearchBlock      route.Block
	SearchErrorBlock route.Block
	FilterBlock      route.Block
	FilterErrorBlock route.Block
	Field            func(T) string
}

// handleTable applies the shared table behaviour for the handler's route and
// reports whether the key was consumed. Nothing happens until the handler is
// ready.
func handleTable[T any](b *base, ready bool, cfg tableConfig[T]) bool {
	if !ready || cfg.Table == nil {
		return false
	}
	km := keys.Default
	ignore := b.IgnoreSpecialKeys()
	t := cfg.Table
	block := b.Block

	on := func(want route.Block) bool {
		return want != route.None && block == want
	}
	inSearch := on(cfg.SearchBlock)
	inFilter := on(cfg.FilterBlock)

	switch {
	case km.Up.Matches(b.Key, ignore):
		switch {
		case on(cfg.TableBlock):
			t.ScrollUp()
		case on(cfg.SortBlock):
			t.Sort.ScrollUp()
		default:
			return false
		}
		return true

	case km.Down.Matches(b.Key, ignore):
		switch {
		case on(cfg.TableBlock):
			t.ScrollDown()
		case on(cfg.SortBlock):
			t.Sort.ScrollDown()
		default:
			return false
		}
		return true

	case km.PgUp.Matches(b.Key, ignore) && on(cfg.TableBlock):
		t.PageUp()
		return true

	case km.PgDown.Matches(b.Key, ignore) && on(cfg.TableBlock):
		t.PageDown()
		return true

	case km.Home.Matches(b.Key, ignore):
		switch {
		case on(cfg.TableBlock):
			t.ScrollToTop()
		case on(cfg.SortBlock):
			t.Sort.ScrollToTop()
		case inSearch:
			textBoxHome(t.SearchText)
		case inFilter:
			textBoxHome(t.FilterText)
		default:
			return false
		}
		return true

	case km.End.Matches(b.Key, ignore):
		switch {
		case on(cfg.TableBlock):
			t.ScrollToBottom()
		case on(cfg.SortBlock):
			t.Sort.ScrollToBottom()
		case inSearch:
			textBoxEnd(t.SearchText)
		case inFilter:
			textBoxEnd(t.FilterText)
		default:
			return false
		}
		return true

	case (km.Left.Matches(b.Key, ignore) || km.Right.Matches(b.Key, ignore)) && (inSearch || inFilter):
		text := t.SearchText
		if inFilter {
			text = t.FilterText
		}
		b.handleTextBoxLeftRight(text)
		return true

	case km.Submit.Matches(b.Key, ignore):
		switch {
		case on(cfg.SortBlock):
			t.ApplySorting()
			b.pop()
		case inSearch:
			b.pop()
			b.leaveTextInput()
			query := ""
			if t.SearchText != nil {
				query = t.SearchText.Text()
			}
			matched := t.ApplySearch(cfg.Field)
			events.Search.Apply(b.routeTo(block).String(), query, matched)
			if !matched && cfg.SearchErrorBlock != route.None {
				b.push(cfg.SearchErrorBlock)
			}
		case inFilter:
			b.pop()
			b.leaveTextInput()
			query := ""
			if t.FilterText != nil {
				query = t.FilterText.Text()
			}
			matched := t.ApplyFilter(cfg.Field)
			events.Filter.Apply(b.routeTo(block).String(), query, matched)
			if !matched && cfg.FilterErrorBlock != route.None {
				b.push(cfg.FilterErrorBlock)
			}
		default:
			return false
		}
		return true

	case km.Esc.Matches(b.Key, ignore):
		switch {
		case on(cfg.SortBlock):
			b.pop()
		case inSearch || on(cfg.SearchErrorBlock):
			b.pop()
			t.ResetSearch()
			b.leaveTextInput()
		case inFilter || on(cfg.FilterErrorBlock):
			b.pop()
			t.ResetFilter()
			b.leaveTextInput()
			events.Filter.Cleared(b.routeTo(block).String())
		case on(cfg.TableBlock) && t.IsFiltered():
			t.ResetFilter()
			events.Filter.Cleared(b.routeTo(block).String())
		default:
			return false
		}
		return true

	case inSearch:
		b.handleTextBoxKeys(t.SearchText)
		return true

	case inFilter:
		b.handleTextBoxKeys(t.FilterText)
		return true

	case on(cfg.TableBlock) && cfg.FilterBlock != route.None && km.Filter.Matches(b.Key, ignore):
		t.FilterText = uistate.NewHorizontallyScrollableText("")
		b.push(cfg.FilterBlock)
		b.enterTextInput()
		return true

	case on(cfg.TableBlock) && cfg.SearchBlock != route.None && km.Search.Matches(b.Key, ignore):
		t.SearchText = uistate.NewHorizontallyScrollableText("")
		b.push(cfg.SearchBlock)
		b.enterTextInput()
		return true

	case on(cfg.TableBlock) && cfg.SortBlock != route.None && cfg.SortOptions != nil && km.Sort.Matches(b.Key, ignore):
		t.Sorting(cfg.SortOptions())
		b.push(cfg.SortBlock)
		return true
	}
	return false
}
