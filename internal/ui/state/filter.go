package state

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var nonSearchCharacters = regexp.MustCompile(`[^a-z0-9.,/'\-:\s]`)

// StripNonSearchCharacters lowercases text and drops everything outside
// letters, digits, whitespace and the punctuation titles commonly carry.
func StripNonSearchCharacters(text string) string {
	return nonSearchCharacters.ReplaceAllString(strings.ToLower(text), "")
}

// ApplyFilter builds the filtered view from rows whose key contains the
// staged filter text. The staged text is always consumed. It reports false
// and leaves the current view untouched when nothing matches.
func (t *StatefulTable[T]) ApplyFilter(key func(T) string) bool {
	var query string
	if t.FilterText != nil {
		query = t.FilterText.Text()
	}
	t.FilterText = nil
	if query == "" {
		return false
	}
	scrubbed := StripNonSearchCharacters(query)
	matches := make([]T, 0, len(t.Items))
	for _, item := range t.Items {
		if strings.Contains(StripNonSearchCharacters(key(item)), scrubbed) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		return false
	}
	t.SetFilteredItems(matches)
	return true
}

// ApplySearch selects the first row of the active view whose key contains
// the staged search text. The staged text is always consumed.
func (t *StatefulTable[T]) ApplySearch(key func(T) string) bool {
	var query string
	if t.SearchText != nil {
		query = t.SearchText.Text()
	}
	t.SearchText = nil
	if query == "" {
		return false
	}
	scrubbed := StripNonSearchCharacters(query)
	for i, item := range t.ActiveItems() {
		if strings.Contains(StripNonSearchCharacters(key(item)), scrubbed) {
			t.SelectIndex(i)
			return true
		}
	}
	return false
}

// BestMatchIndex returns the index of the label that best matches query, or
// -1 when nothing matches. Exact and prefix matches win over fuzzy ranking.
func BestMatchIndex(labels []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(labels) == 0 {
		return -1
	}
	lower := strings.ToLower(trimmed)
	for i, label := range labels {
		if strings.EqualFold(label, trimmed) {
			return i
		}
	}
	for i, label := range labels {
		if strings.HasPrefix(strings.ToLower(label), lower) {
			return i
		}
	}
	for i, label := range labels {
		if strings.Contains(strings.ToLower(label), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(labels) {
		return -1
	}
	return best.OriginalIndex
}
