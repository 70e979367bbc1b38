package tabs

import (
	"errors"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrEmpty is returned when a tab set is built without any tabs.
var ErrEmpty = errors.New("tab set requires at least one tab")

// Tab represents a selectable dashboard page.
type Tab struct {
	ID      string
	Label   string
	Content string
}

// Set is an ordered, fixed collection of tabs. The zero value is not usable;
// construct one with New or Default.
type Set struct {
	tabs []Tab
}

// New builds a tab set from the supplied tabs. The slice is copied so later
// changes by the caller do not leak into the set.
func New(tabs ...Tab) (Set, error) {
	if len(tabs) == 0 {
		return Set{}, ErrEmpty
	}
	dup := make([]Tab, len(tabs))
	copy(dup, tabs)
	for i := range dup {
		if strings.TrimSpace(dup[i].ID) == "" {
			dup[i].ID = strings.ToLower(strings.TrimSpace(dup[i].Label))
		}
	}
	return Set{tabs: dup}, nil
}

// Default returns the stock dashboard tabs.
func Default() Set {
	set, _ := New(
		Tab{ID: "home", Label: "Home", Content: "Welcome to the Home tab."},
		Tab{ID: "stats", Label: "Stats", Content: "📊 Stats: Everything is running great!"},
		Tab{ID: "about", Label: "About", Content: "About: tabdeck is built with Go and Bubble Tea."},
	)
	return set
}

// Len reports the number of tabs.
func (s Set) Len() int {
	return len(s.tabs)
}

// At returns the tab at index i.
func (s Set) At(i int) (Tab, bool) {
	if i < 0 || i >= len(s.tabs) {
		return Tab{}, false
	}
	return s.tabs[i], true
}

// Label returns the label at index i, or "" when out of range.
func (s Set) Label(i int) string {
	tab, _ := s.At(i)
	return tab.Label
}

// Content returns the static content at index i. Missing content is reported
// as an empty string.
func (s Set) Content(i int) string {
	tab, _ := s.At(i)
	return tab.Content
}

// Labels returns a copy of all labels in display order.
func (s Set) Labels() []string {
	labels := make([]string, len(s.tabs))
	for i, tab := range s.tabs {
		labels[i] = tab.Label
	}
	return labels
}

// IndexOf returns the index for a tab identifier, compared without regard to
// case, or -1.
func (s Set) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, tab := range s.tabs {
		if strings.EqualFold(tab.ID, id) {
			return i
		}
	}
	return -1
}

// Find resolves a user query to a tab index. Exact ID or label matches win;
// otherwise the closest fuzzy label match is used.
func (s Set) Find(query string) (int, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return -1, false
	}
	if i := s.IndexOf(trimmed); i >= 0 {
		return i, true
	}
	for i, tab := range s.tabs {
		if strings.EqualFold(tab.Label, trimmed) {
			return i, true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, s.Labels())
	if len(ranks) == 0 {
		return -1, false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance || (rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex, true
}
